package models

// ChatRequest is the JSON body sent to POST /chat.
type ChatRequest struct {
	// Question is sent exactly as the user typed it.
	Question string `json:"question"`
}

// ChatDocument is one retrieved excerpt the backend used to build an answer.
type ChatDocument struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// ChatResponse is the JSON body returned by POST /chat. Every field is
// optional.
type ChatResponse struct {
	Answer    *string        `json:"answer,omitempty"`
	Documents []ChatDocument `json:"documents,omitempty"`
}

// ChatResult is the outcome of one chat attempt as shown to the user.
type ChatResult struct {
	// Success is true only when the backend answered with a 2xx status.
	Success bool

	// Answer is the generated answer or a mapped status message.
	Answer string

	// Sources lists distinct file names of the retrieved documents in the
	// order the backend returned them.
	Sources []string
}

// SourceNames returns the distinct, non-empty file names of the documents,
// preserving first-seen order.
func (r ChatResponse) SourceNames() []string {
	if len(r.Documents) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(r.Documents))
	names := make([]string, 0, len(r.Documents))
	for _, doc := range r.Documents {
		if doc.Filename == "" {
			continue
		}
		if _, ok := seen[doc.Filename]; ok {
			continue
		}
		seen[doc.Filename] = struct{}{}
		names = append(names, doc.Filename)
	}

	return names
}
