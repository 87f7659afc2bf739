package httpapi

import (
	"net"
	"strconv"

	"github.com/rs/zerolog"
)

// Options configures the static model server.
type Options struct {
	Host string
	// Port 0 picks an ephemeral port.
	Port int
	// Root is the directory served at "/". Relative paths resolve against the
	// working directory.
	Root string
	// ModelsDir must exist under Root before the server starts.
	ModelsDir string
	// LandingPage is served for "/" and "/index.html".
	LandingPage string
	// MetricsPath mounts the Prometheus handler when non-empty.
	MetricsPath string
	// CORSMaxAge is the preflight cache lifetime in seconds.
	CORSMaxAge int
	Logger     zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Host == "" {
		o.Host = "localhost"
	}
	if o.Root == "" {
		o.Root = "."
	}
	if o.ModelsDir == "" {
		o.ModelsDir = "models"
	}
	if o.LandingPage == "" {
		o.LandingPage = "test.html"
	}
	return o
}

// Addr returns host:port.
func (o Options) Addr() string { return net.JoinHostPort(o.Host, strconv.Itoa(o.Port)) }
