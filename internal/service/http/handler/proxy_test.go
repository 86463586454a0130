package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/draw-proxy/internal/consts"
	"github.com/reusedev/draw-proxy/internal/modules/ai/gemini"
	"github.com/reusedev/draw-proxy/internal/modules/logs"
	"github.com/reusedev/draw-proxy/internal/service/http/handler/response"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	mu        sync.Mutex
	calls     int
	envelopes []*gemini.Envelope
	result    *gemini.Result
	err       error
}

func (s *stubGenerator) Generate(_ context.Context, envelope *gemini.Envelope) (*gemini.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.envelopes = append(s.envelopes, envelope)
	return s.result, s.err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := logs.Logger
	logs.Logger = zerolog.New(buf)
	t.Cleanup(func() { logs.Logger = old })
	return buf
}

func serve(p *Proxy, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.POST(consts.ProxyPath, p.Handle)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, consts.ProxyPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var ret map[string]string
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &ret))
	return ret
}

const validBody = `{"prompt":"make it gold","imageData":"aGVsbG8=","mimeType":"image/png"}`

func imageResult(data string) *gemini.Result {
	return &gemini.Result{Candidates: []gemini.Candidate{{
		Content: &gemini.Content{Parts: []gemini.Part{
			{Text: "here you go"},
			{InlineData: &gemini.Blob{MimeType: "image/png", Data: data}},
		}},
		FinishReason: "STOP",
	}}}
}

func TestProxy_NotConfigured(t *testing.T) {
	buf := captureLogs(t)
	p := NewProxy(nil, consts.DefaultModel)
	for _, body := range []string{validBody, `{}`, `not json`} {
		w := serve(p, body)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, response.NotConfigured["error"], decodeBody(t, w)["error"])
	}
	require.Equal(t, 3, strings.Count(buf.String(), "API key missing"))
}

func TestProxy_MissingFields(t *testing.T) {
	cases := map[string]string{
		"empty object":      `{}`,
		"null":              `null`,
		"missing prompt":    `{"imageData":"aGVsbG8=","mimeType":"image/png"}`,
		"empty prompt":      `{"prompt":"","imageData":"aGVsbG8=","mimeType":"image/png"}`,
		"missing imageData": `{"prompt":"p","mimeType":"image/png"}`,
		"missing mimeType":  `{"prompt":"p","imageData":"aGVsbG8="}`,
		"only prompt":       `{"prompt":"p"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubGenerator{result: imageResult("XYZ")}
			w := serve(NewProxy(stub, consts.DefaultModel), body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, response.MissingFields["error"], decodeBody(t, w)["error"])
			require.Zero(t, stub.calls)
		})
	}
}

func TestProxy_MalformedBody(t *testing.T) {
	stub := &stubGenerator{result: imageResult("XYZ")}
	for _, body := range []string{`not json`, `[1,2]`, `{"prompt":1}`} {
		w := serve(NewProxy(stub, consts.DefaultModel), body)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	require.Zero(t, stub.calls)
}

func TestProxy_NonJSONContentType(t *testing.T) {
	for _, contentType := range []string{"text/plain", "", "application/x-www-form-urlencoded"} {
		stub := &stubGenerator{result: imageResult("XYZ")}
		gin.SetMode(gin.TestMode)
		e := gin.New()
		e.POST(consts.ProxyPath, NewProxy(stub, consts.DefaultModel).Handle)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, consts.ProxyPath, strings.NewReader(validBody))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		e.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, contentType)
		require.Equal(t, response.MissingFields["error"], decodeBody(t, w)["error"])
		require.Zero(t, stub.calls)
	}
}

func TestProxy_JSONContentTypeWithCharset(t *testing.T) {
	stub := &stubGenerator{result: imageResult("XYZ")}
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.POST(consts.ProxyPath, NewProxy(stub, consts.DefaultModel).Handle)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, consts.ProxyPath, strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProxy_Success(t *testing.T) {
	stub := &stubGenerator{result: imageResult("XYZ")}
	w := serve(NewProxy(stub, "test-model"), validBody)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"base64Data":"XYZ"}`, w.Body.String())

	require.Len(t, stub.envelopes, 1)
	require.Equal(t, &gemini.Envelope{
		Model: "test-model",
		Contents: []gemini.Content{{
			Role: "user",
			Parts: []gemini.Part{
				{Text: "make it gold"},
				{InlineData: &gemini.Blob{MimeType: "image/png", Data: "aGVsbG8="}},
			},
		}},
		GenerationConfig: gemini.GenerationConfig{ResponseModalities: []string{"IMAGE"}},
	}, stub.envelopes[0])
}

func TestProxy_SafetyBlocked(t *testing.T) {
	stub := &stubGenerator{result: &gemini.Result{Candidates: []gemini.Candidate{{
		Content:      &gemini.Content{Parts: []gemini.Part{{Text: "no"}}},
		FinishReason: "SAFETY",
	}}}}
	w := serve(NewProxy(stub, consts.DefaultModel), validBody)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, response.SafetyBlocked["error"], decodeBody(t, w)["error"])
}

func TestProxy_NoImage(t *testing.T) {
	results := map[string]*gemini.Result{
		"other reason":   {Candidates: []gemini.Candidate{{FinishReason: "OTHER"}}},
		"absent reason":  {Candidates: []gemini.Candidate{{Content: &gemini.Content{}}}},
		"no candidates":  {},
		"nil result":     nil,
		"text only stop": {Candidates: []gemini.Candidate{{Content: &gemini.Content{Parts: []gemini.Part{{Text: "x"}}}, FinishReason: "STOP"}}},
	}
	for name, result := range results {
		t.Run(name, func(t *testing.T) {
			stub := &stubGenerator{result: result}
			w := serve(NewProxy(stub, consts.DefaultModel), validBody)
			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Equal(t, response.GenerationFailed["error"], decodeBody(t, w)["error"])
		})
	}
}

func TestProxy_UpstreamError(t *testing.T) {
	buf := captureLogs(t)
	stub := &stubGenerator{err: errors.New("connection reset by peer")}
	w := serve(NewProxy(stub, consts.DefaultModel), validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, response.InternalError["error"], decodeBody(t, w)["error"])
	require.NotContains(t, w.Body.String(), "connection reset")

	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
	require.Contains(t, buf.String(), "connection reset by peer")
}

func TestProxy_BodyTooLarge(t *testing.T) {
	stub := &stubGenerator{result: imageResult("XYZ")}
	p := NewProxy(stub, consts.DefaultModel)
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.POST(consts.ProxyPath, func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 16)
		c.Next()
	}, p.Handle)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodPost, consts.ProxyPath, strings.NewReader(validBody)))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	require.Zero(t, stub.calls)
}
