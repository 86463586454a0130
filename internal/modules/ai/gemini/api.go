package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusedev/draw-proxy/config"
	"github.com/reusedev/draw-proxy/internal/consts"
)

var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// Generator performs one generateContent call. Implementations must be safe
// for concurrent use.
type Generator interface {
	Generate(ctx context.Context, envelope *Envelope) (*Result, error)
}

// NewGenerator builds the backend selected by cfg.Backend. It returns
// ErrMissingAPIKey and a nil Generator when no key is configured.
func NewGenerator(ctx context.Context, cfg config.Gemini) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	switch cfg.Backend {
	case consts.BackendREST:
		return NewRESTClient(cfg, nil), nil
	case consts.BackendSDK, "":
		client, err := NewSDKClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown gemini backend: %s", cfg.Backend)
	}
}
