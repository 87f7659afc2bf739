package hub

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	units "github.com/docker/go-units"
	"github.com/rs/zerolog"

	"modelkit/internal/common/fsutil"
	"modelkit/pkg/types"
)

// Options configures a Fetcher. Zero values select defaults.
type Options struct {
	OutputDir string
	Revision  string
	Tokens    TokenSource
	// Out receives the catalog listing printed for unknown keys.
	Out    io.Writer
	Logger zerolog.Logger
}

// Fetcher resolves catalog keys to files downloaded into OutputDir.
type Fetcher struct {
	client    Client
	outputDir string
	revision  string
	tokens    TokenSource
	out       io.Writer
	log       zerolog.Logger
}

// NewFetcher returns a Fetcher that delegates transfers to client.
func NewFetcher(client Client, opts Options) *Fetcher {
	if opts.OutputDir == "" {
		opts.OutputDir = "models"
	}
	if opts.Tokens == nil {
		opts.Tokens = NoToken
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Fetcher{
		client:    client,
		outputDir: opts.OutputDir,
		revision:  opts.Revision,
		tokens:    opts.Tokens,
		out:       opts.Out,
		log:       opts.Logger,
	}
}

// List prints the catalog.
func (f *Fetcher) List() { WriteCatalog(f.out, catalog) }

// Fetch downloads the entry for key and returns its local path.
func (f *Fetcher) Fetch(ctx context.Context, key string) (string, error) {
	entry, ok := Lookup(key)
	if !ok {
		f.log.Error().Str("model", key).Msg("unknown model")
		f.List()
		return "", unknownModelError{key: key}
	}
	dir, err := fsutil.ExpandHome(f.outputDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.log.Error().Err(err).Str("dir", dir).Msg("cannot create output directory")
		return "", fmt.Errorf("create output dir: %w", err)
	}

	f.log.Info().
		Str("model", entry.Key).
		Str("repository", entry.RepoID).
		Str("file", entry.Filename).
		Str("format", string(entry.Format)).
		Msg("downloading")

	// The credential is forwarded only when one is stored locally so public
	// repositories keep working without login.
	tok, _ := f.tokens()
	path, err := f.client.Download(ctx, types.DownloadRequest{
		RepoID:   entry.RepoID,
		Filename: entry.Filename,
		Revision: f.revision,
		LocalDir: dir,
		Token:    tok,
	})
	if err != nil {
		f.log.Error().Err(err).Str("model", entry.Key).Msg("download failed")
		f.log.Warn().Msg("make sure you have internet access")
		f.log.Warn().Msg("some models require hub authentication: run `huggingface-cli login` or set HF_TOKEN")
		return "", fmt.Errorf("download %s: %w", entry.Key, err)
	}
	ev := f.log.Info().Str("path", path)
	if n, err := fsutil.FileSize(path); err == nil {
		ev = ev.Str("size", units.BytesSize(float64(n)))
	}
	ev.Msg("downloaded")
	return path, nil
}

// FetchAll downloads every catalog entry whose format is in formats, or every
// entry when formats is empty. Entries are attempted in catalog order; a
// failure is logged and does not stop the remaining entries. Only successful
// paths are returned.
func (f *Fetcher) FetchAll(ctx context.Context, formats ...types.Format) []string {
	var downloaded []string
	for _, e := range catalog {
		if len(formats) > 0 && !slices.Contains(formats, e.Format) {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		if p, err := f.Fetch(ctx, e.Key); err == nil {
			downloaded = append(downloaded, p)
		}
	}
	f.log.Info().Int("count", len(downloaded)).Msgf("downloaded %d model(s)", len(downloaded))
	return downloaded
}

// FetchRecommended downloads the getting-started pair.
func (f *Fetcher) FetchRecommended(ctx context.Context) []string {
	f.log.Info().Msg("downloading recommended models (task + litertlm formats)")
	var downloaded []string
	for _, key := range Recommended {
		if p, err := f.Fetch(ctx, key); err == nil {
			downloaded = append(downloaded, p)
		}
	}
	return downloaded
}
