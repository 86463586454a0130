package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/reusedev/draw-proxy/config"
	"google.golang.org/genai"
)

// SDKClient calls the Gemini API through the official genai client.
type SDKClient struct {
	client *genai.Client
}

func NewSDKClient(ctx context.Context, cfg config.Gemini) (*SDKClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &SDKClient{client: client}, nil
}

func (s *SDKClient) Generate(ctx context.Context, envelope *Envelope) (*Result, error) {
	contents, err := toSDKContents(envelope.Contents)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Models.GenerateContent(ctx, envelope.Model, contents, &genai.GenerateContentConfig{
		ResponseModalities: envelope.GenerationConfig.ResponseModalities,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	return fromSDKResponse(resp), nil
}

// toSDKContents decodes inline base64 data, the SDK carries raw bytes.
func toSDKContents(contents []Content) ([]*genai.Content, error) {
	ret := make([]*genai.Content, 0, len(contents))
	for _, content := range contents {
		parts := make([]*genai.Part, 0, len(content.Parts))
		for _, part := range content.Parts {
			if part.InlineData != nil {
				data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("decode inline data: %w", err)
				}
				parts = append(parts, &genai.Part{
					InlineData: &genai.Blob{MIMEType: part.InlineData.MimeType, Data: data},
				})
				continue
			}
			parts = append(parts, genai.NewPartFromText(part.Text))
		}
		ret = append(ret, &genai.Content{Role: content.Role, Parts: parts})
	}
	return ret, nil
}

func fromSDKResponse(resp *genai.GenerateContentResponse) *Result {
	ret := &Result{}
	if resp == nil {
		return ret
	}
	for _, c := range resp.Candidates {
		if c == nil {
			ret.Candidates = append(ret.Candidates, Candidate{})
			continue
		}
		candidate := Candidate{FinishReason: string(c.FinishReason)}
		if c.Content != nil {
			content := &Content{Role: c.Content.Role}
			for _, p := range c.Content.Parts {
				if p == nil {
					continue
				}
				part := Part{Text: p.Text}
				if p.InlineData != nil {
					part.InlineData = &Blob{
						MimeType: p.InlineData.MIMEType,
						Data:     base64.StdEncoding.EncodeToString(p.InlineData.Data),
					}
				}
				content.Parts = append(content.Parts, part)
			}
			candidate.Content = content
		}
		ret.Candidates = append(ret.Candidates, candidate)
	}
	return ret
}
