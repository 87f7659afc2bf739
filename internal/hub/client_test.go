package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"modelkit/pkg/types"
)

func TestHTTPClient_DownloadWritesVerbatimName(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("model-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewHTTPClient(srv.URL+"/", 0)
	p, err := c.Download(context.Background(), types.DownloadRequest{
		RepoID: "litert-community/Gemma3-1B-IT", Filename: "Gemma3-1B-IT-int4.task", LocalDir: dir,
	})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if p != filepath.Join(dir, "Gemma3-1B-IT-int4.task") {
		t.Fatalf("path=%s", p)
	}
	if b, _ := os.ReadFile(p); string(b) != "model-bytes" {
		t.Fatalf("content=%q", b)
	}
	if runtime.GOOS != "windows" {
		if fi, err := os.Stat(p); err != nil || fi.Mode().Perm() != 0o644 {
			t.Fatalf("downloaded file mode: %v %v", fi, err)
		}
	}
	if gotPath != "/litert-community/Gemma3-1B-IT/resolve/main/Gemma3-1B-IT-int4.task" {
		t.Fatalf("request path=%s", gotPath)
	}
	if gotAuth != "" {
		t.Fatalf("authorization sent without token: %q", gotAuth)
	}
}

func TestHTTPClient_SendsTokenWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()
	_, err := NewHTTPClient(srv.URL, 0).Download(context.Background(), types.DownloadRequest{
		RepoID: "org/repo", Filename: "m.bin", Revision: "v2", LocalDir: t.TempDir(), Token: "hf_secret",
	})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if gotAuth != "Bearer hf_secret" {
		t.Fatalf("auth=%q", gotAuth)
	}
}

func TestHTTPClient_StatusErrors(t *testing.T) {
	cases := []struct {
		code     int
		auth     bool
		notFound bool
	}{
		{http.StatusUnauthorized, true, false},
		{http.StatusForbidden, true, false},
		{http.StatusNotFound, false, true},
		{http.StatusInternalServerError, false, false},
	}
	for _, c := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", c.code)
		}))
		dir := t.TempDir()
		_, err := NewHTTPClient(srv.URL, 0).Download(context.Background(), types.DownloadRequest{
			RepoID: "org/repo", Filename: "m.task", LocalDir: dir,
		})
		srv.Close()
		if err == nil {
			t.Fatalf("%d: expected error", c.code)
		}
		if IsAuthRequired(err) != c.auth || IsRemoteNotFound(err) != c.notFound {
			t.Fatalf("%d: classification mismatch: %v", c.code, err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Fatalf("%d: files left behind: %v", c.code, entries)
		}
	}
}

func TestHTTPClient_ResolveURLEscapes(t *testing.T) {
	c := NewHTTPClient("https://hub.example", 0)
	got := c.ResolveURL("org/repo", "", "dir/my file.task")
	if got != "https://hub.example/org/repo/resolve/main/dir/my%20file.task" {
		t.Fatalf("url=%s", got)
	}
}
