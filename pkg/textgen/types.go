package textgen

// GenerateRequest is the generation request body.
type GenerateRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// GenerateResponse is the generation response body.
type GenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}
