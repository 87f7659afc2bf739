package bundle

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Entry names inside a .task archive.
const (
	EntryWeights   = "TF_LITE_PREFILL_DECODE"
	EntryTokenizer = "TOKENIZER_MODEL"
	EntryMetadata  = "METADATA"
)

// outputMode replaces the owner-only mode os.CreateTemp uses.
const outputMode = 0o644

// ZipBundler writes the .task layout: an uncompressed zip holding the
// weights, the tokenizer and the encoded token metadata.
type ZipBundler struct{}

// Bundle writes spec.OutputPath via a temp file in the same directory so a
// failed run never leaves a partial archive behind.
func (ZipBundler) Bundle(ctx context.Context, spec Spec) (err error) {
	dir := filepath.Dir(spec.OutputPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(spec.OutputPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	zw := zip.NewWriter(tmp)
	if err = addFile(ctx, zw, EntryWeights, spec.WeightsPath); err != nil {
		return err
	}
	if err = addFile(ctx, zw, EntryTokenizer, spec.TokenizerPath); err != nil {
		return err
	}
	w, err := zw.CreateHeader(&zip.FileHeader{Name: EntryMetadata, Method: zip.Store})
	if err != nil {
		return fmt.Errorf("metadata entry: %w", err)
	}
	if _, err = w.Write(EncodeMetadata(spec.Tokens)); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	if err = tmp.Chmod(outputMode); err != nil {
		return fmt.Errorf("chmod archive: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	if err = os.Rename(tmp.Name(), spec.OutputPath); err != nil {
		return fmt.Errorf("rename archive: %w", err)
	}
	return nil
}

func addFile(ctx context.Context, zw *zip.Writer, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	if err != nil {
		return fmt.Errorf("%s entry: %w", name, err)
	}
	if _, err := io.Copy(w, ctxReader{ctx: ctx, r: f}); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}

// ctxReader stops a long copy once ctx is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
