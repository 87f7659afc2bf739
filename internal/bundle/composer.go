package bundle

import (
	"context"
	"fmt"

	units "github.com/docker/go-units"
	"github.com/rs/zerolog"

	"modelkit/internal/common/fsutil"
	"modelkit/pkg/types"
)

// Spec is the fully resolved input handed to a Bundler.
type Spec struct {
	WeightsPath   string
	TokenizerPath string
	OutputPath    string
	Tokens        types.TokenConfig
}

// Bundler produces an archive at spec.OutputPath. It must not leave a file
// at OutputPath when it returns an error.
type Bundler interface {
	Bundle(ctx context.Context, spec Spec) error
}

// BundlerFunc adapts a function to the Bundler interface.
type BundlerFunc func(ctx context.Context, spec Spec) error

func (f BundlerFunc) Bundle(ctx context.Context, spec Spec) error { return f(ctx, spec) }

// Result describes a successfully written bundle.
type Result struct {
	OutputPath string
	SizeBytes  int64
	Tokens     types.TokenConfig
}

// Composer validates bundle requests and hands them to a Bundler.
type Composer struct {
	bundler Bundler
	log     zerolog.Logger
}

// NewComposer returns a Composer. A nil bundler selects ZipBundler.
func NewComposer(b Bundler, log zerolog.Logger) *Composer {
	if b == nil {
		b = ZipBundler{}
	}
	return &Composer{bundler: b, log: log}
}

// Compose checks that both inputs exist, resolves the token configuration and
// writes the bundle. Missing inputs abort before the bundler is invoked.
func (c *Composer) Compose(ctx context.Context, req types.BundleRequest) (Result, error) {
	if !fsutil.PathExists(req.WeightsPath) {
		err := inputNotFoundError{what: "TFLite model", path: req.WeightsPath}
		c.log.Error().Str("path", req.WeightsPath).Msg(err.Error())
		return Result{}, err
	}
	if !fsutil.PathExists(req.TokenizerPath) {
		err := inputNotFoundError{what: "tokenizer", path: req.TokenizerPath}
		c.log.Error().Str("path", req.TokenizerPath).Msg(err.Error())
		return Result{}, err
	}
	if req.OutputPath == "" {
		return Result{}, fmt.Errorf("output path is required")
	}

	family := req.Family
	if family == "" {
		family = DefaultFamily
	}
	tokens := Resolve(req)
	c.log.Info().
		Str("tflite", req.WeightsPath).
		Str("tokenizer", req.TokenizerPath).
		Str("output", req.OutputPath).
		Str("model_type", string(family)).
		Str("start_token", tokens.StartToken).
		Strs("stop_tokens", tokens.StopTokens).
		Msg("creating .task bundle")

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	spec := Spec{
		WeightsPath:   req.WeightsPath,
		TokenizerPath: req.TokenizerPath,
		OutputPath:    req.OutputPath,
		Tokens:        tokens,
	}
	if err := c.bundler.Bundle(ctx, spec); err != nil {
		berr := bundleFailedError{err: err}
		c.log.Error().Err(err).Msg("bundle creation failed")
		return Result{}, berr
	}

	size, err := fsutil.FileSize(req.OutputPath)
	if err != nil {
		berr := bundleFailedError{err: fmt.Errorf("stat output: %w", err)}
		c.log.Error().Err(berr).Msg("bundle creation failed")
		return Result{}, berr
	}
	c.log.Info().
		Str("output", req.OutputPath).
		Str("size", units.BytesSize(float64(size))).
		Msg("bundle created successfully")
	return Result{OutputPath: req.OutputPath, SizeBytes: size, Tokens: tokens}, nil
}
