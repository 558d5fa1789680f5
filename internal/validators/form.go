package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/cheddup/models"
)

// Field names accepted by FormValidator.Validate.
const (
	// FieldFile targets the presence of the upload file itself.
	FieldFile = "file"

	// FieldFileName targets the name of the selected file.
	FieldFileName = "file_name"

	// FieldQuestion targets the chat question text.
	FieldQuestion = "question"
)

// FormValidator checks the inputs of the upload and chat forms.
//
// Only presence is checked. The declared upload size limit is enforced by
// the backend, so file contents are never inspected here.
type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj:
//   - *models.UploadFile / models.UploadFile
//   - models.ChatRequest / *models.ChatRequest
//
// A nil *models.UploadFile is treated as "nothing selected".
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.UploadFile:
		return v.validateUploadFile(ctx, value, fields...)
	case models.UploadFile:
		return v.validateUploadFile(ctx, &value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		if value == nil {
			return ErrBlankQuestion
		}
		return v.validateChatRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateUploadFile(_ context.Context, file *models.UploadFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if file == nil {
				return ErrNoFileSelected
			}
		case FieldFileName:
			if file == nil || file.Name == "" {
				return ErrNoFileSelected
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateChatRequest(_ context.Context, req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			// whitespace-only counts as blank, the question itself is sent untrimmed
			if strings.TrimSpace(req.Question) == "" {
				return ErrBlankQuestion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
