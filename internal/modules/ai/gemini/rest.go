package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/draw-proxy/config"
	"github.com/reusedev/draw-proxy/internal/modules/http_client"
	"github.com/reusedev/draw-proxy/tools"
)

// APIError is a non-200 reply from the generateContent endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini api error, status code: %d, body: %s", e.StatusCode, e.Body)
}

// RESTClient calls generateContent over plain HTTP.
type RESTClient struct {
	apiKey     string
	baseURL    string
	apiVersion string
	client     *http_client.HttpClient
}

// NewRESTClient uses http.DefaultClient when httpClient is nil.
func NewRESTClient(cfg config.Gemini, httpClient *http.Client) *RESTClient {
	return &RESTClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		client:     http_client.NewWithClient(httpClient),
	}
}

func (r *RESTClient) Path(model string) string {
	return fmt.Sprintf("%s/models/%s:generateContent", r.apiVersion, model)
}

func (r *RESTClient) Generate(ctx context.Context, envelope *Envelope) (*Result, error) {
	req, err := r.client.NewRequest(
		http.MethodPost,
		tools.FullURL(r.baseURL, r.Path(envelope.Model)),
		http_client.WithHeader("x-goog-api-key", r.apiKey),
		http_client.WithHeader("Content-Type", "application/json"),
		http_client.WithBody(envelope),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	var result Result
	if err = jsoniter.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode generateContent response: %w", err)
	}
	return &result, nil
}
