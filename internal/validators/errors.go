package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFileSelected = errors.New("no file selected")
	ErrBlankQuestion  = errors.New("question is blank")
)
