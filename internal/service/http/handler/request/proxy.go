package request

import "fmt"

type Proxy struct {
	Prompt    string `json:"prompt"`
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
}

// Valid only checks presence. imageData and mimeType are passed upstream
// without inspection.
func (p *Proxy) Valid() error {
	if p.Prompt == "" || p.ImageData == "" || p.MimeType == "" {
		return fmt.Errorf("prompt, imageData and mimeType are required")
	}
	return nil
}
