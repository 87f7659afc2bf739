package hub

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"modelkit/pkg/types"
)

// fakeClient writes a placeholder file unless the filename is listed in fail.
type fakeClient struct {
	fail  map[string]bool
	calls []types.DownloadRequest
}

func (f *fakeClient) Download(ctx context.Context, req types.DownloadRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.fail[req.Filename] {
		return "", errors.New("connection reset by peer")
	}
	p := filepath.Join(req.LocalDir, req.Filename)
	return p, os.WriteFile(p, []byte("x"), 0o644)
}

func newTestFetcher(t *testing.T, c Client, tokens TokenSource) (*Fetcher, string, *bytes.Buffer) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "nested", "models")
	var out bytes.Buffer
	f := NewFetcher(c, Options{OutputDir: dir, Tokens: tokens, Out: &out, Logger: zerolog.Nop()})
	return f, dir, &out
}

func TestFetch_UnknownKeyListsCatalog(t *testing.T) {
	fc := &fakeClient{}
	f, dir, out := newTestFetcher(t, fc, nil)
	p, err := f.Fetch(context.Background(), "llama-70b")
	if p != "" || !IsUnknownModel(err) {
		t.Fatalf("p=%q err=%v", p, err)
	}
	if !strings.Contains(out.String(), "gemma3-1b-task") {
		t.Fatalf("catalog not printed: %q", out.String())
	}
	if len(fc.calls) != 0 {
		t.Fatalf("client must not be called")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("output dir should not be created for unknown key")
	}
}

func TestFetch_CreatesDirAndPassesToken(t *testing.T) {
	fc := &fakeClient{}
	f, dir, _ := newTestFetcher(t, fc, StaticToken("hf_tok"))
	p, err := f.Fetch(context.Background(), "gemma3n-e2b-web")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p != filepath.Join(dir, "gemma-3n-E2B-it-int4-Web.litertlm") {
		t.Fatalf("path=%s", p)
	}
	if len(fc.calls) != 1 {
		t.Fatalf("calls=%d", len(fc.calls))
	}
	got := fc.calls[0]
	if got.RepoID != "google/gemma-3n-E2B-it-litert-lm" || got.LocalDir != dir || got.Token != "hf_tok" {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestFetch_NoTokenWhenAbsent(t *testing.T) {
	fc := &fakeClient{}
	f, _, _ := newTestFetcher(t, fc, NoToken)
	if _, err := f.Fetch(context.Background(), "gemma2-2b-bin"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fc.calls[0].Token != "" {
		t.Fatalf("token forwarded when none stored: %q", fc.calls[0].Token)
	}
}

func TestFetch_TransferFailure(t *testing.T) {
	fc := &fakeClient{fail: map[string]bool{"Gemma3-1B-IT-int4.task": true}}
	f, _, _ := newTestFetcher(t, fc, nil)
	p, err := f.Fetch(context.Background(), "gemma3-1b-task")
	if err == nil || p != "" {
		t.Fatalf("expected failure, p=%q", p)
	}
	if !strings.Contains(err.Error(), "connection reset by peer") {
		t.Fatalf("underlying message not surfaced: %v", err)
	}
}

func TestFetchAll_FormatFilterAndPartialFailure(t *testing.T) {
	fc := &fakeClient{fail: map[string]bool{"gemma-3n-E2B-it-int4-Web.litertlm": true}}
	f, _, _ := newTestFetcher(t, fc, nil)
	paths := f.FetchAll(context.Background(), types.FormatLiteRTLM)

	var want int
	for _, e := range Catalog() {
		if e.Format == types.FormatLiteRTLM {
			want++
		}
	}
	if len(fc.calls) != want {
		t.Fatalf("attempted %d entries, want %d", len(fc.calls), want)
	}
	for _, c := range fc.calls {
		if !strings.HasSuffix(c.Filename, ".litertlm") {
			t.Fatalf("non-matching entry attempted: %s", c.Filename)
		}
	}
	if len(paths) != want-1 {
		t.Fatalf("paths=%d want %d", len(paths), want-1)
	}
}

func TestFetchAll_NoFilterAttemptsEverythingInOrder(t *testing.T) {
	fc := &fakeClient{fail: map[string]bool{"Gemma3-1B-IT-int4.task": true}}
	f, _, _ := newTestFetcher(t, fc, nil)
	paths := f.FetchAll(context.Background())
	cat := Catalog()
	if len(fc.calls) != len(cat) {
		t.Fatalf("calls=%d want %d", len(fc.calls), len(cat))
	}
	for i, c := range fc.calls {
		if c.Filename != cat[i].Filename {
			t.Fatalf("call %d: %s want %s", i, c.Filename, cat[i].Filename)
		}
	}
	if len(paths) != len(cat)-1 {
		t.Fatalf("paths=%d", len(paths))
	}
}

func TestFetchAll_StopsOnCancelledContext(t *testing.T) {
	fc := &fakeClient{}
	f, _, _ := newTestFetcher(t, fc, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if paths := f.FetchAll(ctx); len(paths) != 0 || len(fc.calls) != 0 {
		t.Fatalf("paths=%v calls=%d", paths, len(fc.calls))
	}
}

func TestFetchRecommended(t *testing.T) {
	fc := &fakeClient{}
	f, _, _ := newTestFetcher(t, fc, nil)
	paths := f.FetchRecommended(context.Background())
	if len(paths) != 2 || len(fc.calls) != 2 {
		t.Fatalf("paths=%v", paths)
	}
	if fc.calls[0].Filename != "Gemma3-1B-IT-int4.task" || fc.calls[1].Filename != "gemma-3n-E2B-it-int4.litertlm" {
		t.Fatalf("unexpected order: %+v", fc.calls)
	}
}
