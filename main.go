package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-proxy/config"
	"github.com/reusedev/draw-proxy/internal/modules/ai/gemini"
	"github.com/reusedev/draw-proxy/internal/modules/logs"
	"github.com/reusedev/draw-proxy/internal/service/http"
)

var (
	configPath string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(configPath)
	logs.InitLogger()
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// a missing key is not fatal, the proxy endpoint reports it per request
	generator, err := gemini.NewGenerator(ctx, config.GConfig.Gemini)
	if err != nil {
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			logs.Logger.Error().Err(err).Msg("Gemini client is not initialized")
		} else {
			logs.Logger.Error().Err(err).Str("backend", config.GConfig.Gemini.Backend).Msg("failed to create Gemini client")
		}
	}

	server := http.NewServer(config.GConfig, generator)
	if err = server.Serve(ctx); err != nil {
		logs.Logger.Fatal().Err(err).Msg("http server error")
	}
}
