// Package httpapi serves a directory of model files and a landing page with
// permissive CORS headers for browser-based testing.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	units "github.com/docker/go-units"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"modelkit/internal/common/fsutil"
	"modelkit/internal/registry"
	"modelkit/pkg/types"
)

const shutdownTimeout = 5 * time.Second

// NewMux builds the router serving root. Requests for "/" and "/index.html"
// are answered with landingPage.
func NewMux(root, landingPage string, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(requestLogger(opts.Logger))
	r.Use(corsNegotiation(opts.CORSMaxAge))
	r.Use(PermissiveCORS)

	if opts.MetricsPath != "" {
		r.Get("/"+strings.TrimPrefix(opts.MetricsPath, "/"), promhttp.Handler().ServeHTTP)
	}

	static := landingRewrite(landingPage, http.FileServer(http.Dir(root)))
	for _, pattern := range []string{"/", "/*"} {
		r.Options(pattern, preflight)
		r.Get(pattern, static.ServeHTTP)
		r.Head(pattern, static.ServeHTTP)
	}
	return r
}

// landingRewrite maps "/" and "/index.html" to the landing page before
// falling through to next. Only the root is rewritten: http.FileServer still
// answers any deeper ".../index.html" with a 301 to "./".
func landingRewrite(page string, next http.Handler) http.Handler {
	target := "/" + strings.TrimPrefix(page, "/")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			next.ServeHTTP(w, r)
			return
		}
		r2 := new(http.Request)
		*r2 = *r
		u := *r.URL
		u.Path = target
		u.RawPath = ""
		r2.URL = &u
		next.ServeHTTP(w, r2)
	})
}

// Server is the static model server.
type Server struct {
	opts      Options
	root      string
	modelsDir string
	models    []types.LocalModel
	handler   http.Handler
	log       zerolog.Logger
}

// NewServer resolves the served directories and fails with
// ErrModelsDirMissing when the models directory does not exist.
func NewServer(opts Options) (*Server, error) {
	opts = opts.withDefaults()
	root, err := fsutil.ResolveDir("", opts.Root)
	if err != nil {
		return nil, err
	}
	models, err := fsutil.ResolveDir(root, opts.ModelsDir)
	if err != nil {
		return nil, err
	}
	if !fsutil.IsDir(models) {
		return nil, fmt.Errorf("%w: %s", ErrModelsDirMissing, models)
	}
	found, err := registry.LoadDir(models)
	if err != nil {
		return nil, err
	}
	return &Server{
		opts:      opts,
		root:      root,
		modelsDir: models,
		models:    found,
		handler:   NewMux(root, opts.LandingPage, opts),
		log:       opts.Logger,
	}, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Models returns the archives found in the models directory at startup.
func (s *Server) Models() []types.LocalModel {
	return append([]types.LocalModel(nil), s.models...)
}

// ListenAndServe listens on the configured host:port and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln, one goroutine per connection, until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	base := "http://" + displayAddr(s.opts.Host, ln.Addr())
	s.log.Info().Str("root", s.root).Msgf("serving test page at %s/%s", base, strings.TrimPrefix(s.opts.LandingPage, "/"))
	s.log.Info().Str("dir", s.modelsDir).Msgf("serving models at %s/%s/", base, strings.Trim(s.opts.ModelsDir, "/"))
	for _, m := range s.models {
		s.log.Info().Str("format", string(m.Format)).Str("size", units.BytesSize(float64(m.Size))).Msgf("model %s/%s/%s", base, strings.Trim(s.opts.ModelsDir, "/"), m.ID)
	}
	if len(s.models) == 0 {
		s.log.Warn().Str("dir", s.modelsDir).Msg("no model archives found; run fetchmodels first")
	}
	s.log.Info().Msg("press Ctrl+C to stop")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			s.log.Error().Err(err).Msg("graceful shutdown error")
			return err
		}
		return nil
	})
	err := g.Wait()
	s.log.Info().Msg("server stopped")
	return err
}

// displayAddr prefers the configured host name over the resolved listener IP.
func displayAddr(host string, addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok && host != "" {
		return net.JoinHostPort(host, fmt.Sprint(tcp.Port))
	}
	return addr.String()
}
