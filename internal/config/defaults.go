package config

import (
	"os"
	"strconv"
)

const (
	DefaultLogLevel    = "info"
	DefaultModelType   = "gemma3"
	DefaultOutputDir   = "models"
	DefaultEndpoint    = "https://huggingface.co"
	DefaultRevision    = "main"
	DefaultHost        = "localhost"
	DefaultPort        = 8000
	DefaultRoot        = "."
	DefaultModelsDir   = "models"
	DefaultLandingPage = "test.html"
	DefaultCORSMaxAge  = 300
)

// WithDefaults returns a copy of c with unset fields taken from the
// environment (MODELKIT_*, HF_ENDPOINT) and then the package defaults.
func (c Config) WithDefaults() Config {
	c.LogLevel = firstNonEmpty(c.LogLevel, os.Getenv("MODELKIT_LOG_LEVEL"), DefaultLogLevel)

	c.Bundle.ModelType = firstNonEmpty(c.Bundle.ModelType, DefaultModelType)

	c.Fetch.OutputDir = firstNonEmpty(c.Fetch.OutputDir, os.Getenv("MODELKIT_OUTPUT_DIR"), DefaultOutputDir)
	c.Fetch.Endpoint = firstNonEmpty(c.Fetch.Endpoint, os.Getenv("HF_ENDPOINT"), DefaultEndpoint)
	c.Fetch.Revision = firstNonEmpty(c.Fetch.Revision, DefaultRevision)
	if c.Fetch.TimeoutSeconds < 0 {
		c.Fetch.TimeoutSeconds = 0
	}

	c.Serve.Host = firstNonEmpty(c.Serve.Host, os.Getenv("MODELKIT_HOST"), DefaultHost)
	if c.Serve.Port == 0 {
		c.Serve.Port = envInt("MODELKIT_PORT", DefaultPort)
	}
	c.Serve.Root = firstNonEmpty(c.Serve.Root, DefaultRoot)
	c.Serve.ModelsDir = firstNonEmpty(c.Serve.ModelsDir, os.Getenv("MODELKIT_MODELS_DIR"), DefaultModelsDir)
	c.Serve.LandingPage = firstNonEmpty(c.Serve.LandingPage, DefaultLandingPage)
	if c.Serve.CORSMaxAge == 0 {
		c.Serve.CORSMaxAge = DefaultCORSMaxAge
	}
	return c
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
