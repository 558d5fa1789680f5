package models

// MaxUploadSizeBytes is the upload limit advertised to users. The backend
// enforces it; the client only checks that a file is present.
const MaxUploadSizeBytes = int64(20 << 20)

// UploadFile is the single file submitted by the upload form.
type UploadFile struct {
	// Name is the base file name sent as the multipart file name.
	Name string

	// Data holds the raw file contents.
	Data []byte
}

// UploadResponse is the optional JSON body returned by POST /upload.
type UploadResponse struct {
	// ChunksAdded is the number of text chunks the backend indexed.
	ChunksAdded int `json:"chunks_added"`
}

// UploadResult is the outcome of one upload attempt as shown to the user.
type UploadResult struct {
	// Success is true only when the backend answered with a 2xx status.
	Success bool

	// Message is the human-readable status line.
	Message string

	// ChunksAdded mirrors [UploadResponse.ChunksAdded]; zero when unknown.
	ChunksAdded int
}
