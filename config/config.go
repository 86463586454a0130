package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/reusedev/draw-proxy/internal/consts"
	"github.com/reusedev/draw-proxy/tools"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

// Init loads the yaml file at filePath, applies environment overrides and
// verifies the result. A missing file is not an error, defaults apply.
func Init(filePath string) {
	GConfig = tools.Must(Load(filePath))
}

func Load(filePath string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(filePath)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", filePath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}
	c.applyEnv()
	if err = c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func Default() *Config {
	return &Config{
		Port:      consts.DefaultPort,
		StaticDir: consts.DefaultStaticDir,
		Gemini: Gemini{
			Model:      consts.DefaultModel,
			Backend:    consts.BackendSDK,
			BaseURL:    consts.GeminiBaseURL,
			APIVersion: consts.GeminiAPIVersion,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
	}
}

type Config struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
	Gemini    `yaml:"gemini"`
	Log       `yaml:"log"`
}

func (c *Config) applyEnv() {
	if v := os.Getenv(consts.EnvAPIKey); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(consts.EnvPort); v != "" {
		c.Port = v
	}
}

func (c *Config) Verify() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini.model must not be empty")
	}
	if c.Gemini.Backend != consts.BackendSDK && c.Gemini.Backend != consts.BackendREST {
		return fmt.Errorf("gemini.backend must be %s or %s", consts.BackendSDK, consts.BackendREST)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log.level: %s", c.Log.Level)
	}
	return nil
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

type Gemini struct {
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	Backend    string `yaml:"backend"`
	BaseURL    string `yaml:"base_url"`
	APIVersion string `yaml:"api_version"`
}

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}
