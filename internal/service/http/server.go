package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-proxy/config"
	"github.com/reusedev/draw-proxy/internal/consts"
	"github.com/reusedev/draw-proxy/internal/modules/ai/gemini"
	"github.com/reusedev/draw-proxy/internal/modules/logs"
	"github.com/reusedev/draw-proxy/internal/service/http/handler"
	"github.com/reusedev/draw-proxy/internal/service/http/middleware"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	engine *gin.Engine
	addr   string
}

// NewServer wires the routes. generator may be nil when no API key was
// configured; static files are still served.
func NewServer(cfg *config.Config, generator gemini.Generator) *Server {
	e := gin.New()
	initRouter(e, cfg, generator)
	return &Server{engine: e, addr: cfg.Addr()}
}

func initRouter(e *gin.Engine, cfg *config.Config, generator gemini.Generator) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.BodyLimit(consts.BodyLimit))

	proxy := handler.NewProxy(generator, cfg.Gemini.Model)
	e.POST(consts.ProxyPath, proxy.Handle)

	static := handler.NewStatic(cfg.StaticDir)
	e.NoRoute(static.Handle)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve blocks until ctx is cancelled or the listener fails.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}
	errCh := make(chan error, 1)
	go func() {
		logs.Logger.Info().Str("addr", s.addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logs.Logger.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
