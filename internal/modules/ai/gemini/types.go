package gemini

import "github.com/reusedev/draw-proxy/internal/consts"

// Envelope is one generateContent call. Field names follow the Gemini REST
// API so the value can be sent on the wire as is (Model travels in the URL).
type Envelope struct {
	Model            string           `json:"-"`
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds either Text or InlineData.
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inlineData,omitempty"`
}

// Blob is inline media, Data is base64 encoded.
type Blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type Result struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// NewEnvelope builds the single-turn, image-only request for prompt applied to
// an inline image.
func NewEnvelope(model, prompt, mimeType, imageData string) *Envelope {
	return &Envelope{
		Model: model,
		Contents: []Content{
			{
				Role: consts.RoleUser,
				Parts: []Part{
					{Text: prompt},
					{InlineData: &Blob{MimeType: mimeType, Data: imageData}},
				},
			},
		},
		GenerationConfig: GenerationConfig{
			ResponseModalities: []string{consts.ModalityImage},
		},
	}
}
