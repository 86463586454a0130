package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/draw-proxy/internal/consts"
	"github.com/reusedev/draw-proxy/internal/modules/ai/gemini"
	"github.com/reusedev/draw-proxy/internal/modules/logs"
	"github.com/reusedev/draw-proxy/internal/service/http/handler/request"
	"github.com/reusedev/draw-proxy/internal/service/http/handler/response"
)

type Proxy struct {
	generator gemini.Generator
	model     string
}

// NewProxy accepts a nil generator; every request is then answered with a
// configuration error.
func NewProxy(generator gemini.Generator, model string) *Proxy {
	return &Proxy{generator: generator, model: model}
}

func (p *Proxy) Handle(c *gin.Context) {
	requestID := c.GetString(consts.CtxRequestID)
	if p.generator == nil {
		logs.Logger.Error().Str("request_id", requestID).Msg("Gemini client is not initialized. API key missing.")
		c.JSON(http.StatusInternalServerError, response.NotConfigured)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, response.BodyTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, response.MalformedBody)
		return
	}
	// bodies of any other content type are ignored and fail validation below
	form := request.Proxy{}
	if c.ContentType() == binding.MIMEJSON {
		if err = jsoniter.Unmarshal(body, &form); err != nil {
			c.JSON(http.StatusBadRequest, response.MalformedBody)
			return
		}
	}
	if err = form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.MissingFields)
		return
	}

	envelope := gemini.NewEnvelope(p.model, form.Prompt, form.MimeType, form.ImageData)
	result, err := p.generator.Generate(c.Request.Context(), envelope)
	if err != nil {
		logs.Logger.Error().Err(err).Str("request_id", requestID).Str("model", p.model).Msg("Gemini API call error")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}

	outcome := gemini.Parse(result)
	if !outcome.Succeed() {
		if outcome.Blocked() {
			c.JSON(http.StatusForbidden, response.SafetyBlocked)
			return
		}
		c.JSON(http.StatusInternalServerError, response.GenerationFailed)
		return
	}
	c.JSON(http.StatusOK, response.Image{Base64Data: outcome.Base64Data})
}
