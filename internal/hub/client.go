package hub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modelkit/pkg/types"
)

// Client transfers one remote file into a local directory and returns the
// local path.
type Client interface {
	Download(ctx context.Context, req types.DownloadRequest) (string, error)
}

// HTTPClient downloads files through the hub's resolve endpoint.
type HTTPClient struct {
	endpoint  string
	http      *http.Client
	userAgent string
}

// NewHTTPClient returns a client for endpoint (e.g. https://huggingface.co).
// A zero timeout leaves transfers unbounded.
func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint:  strings.TrimRight(endpoint, "/"),
		http:      &http.Client{Timeout: timeout},
		userAgent: "modelkit-fetchmodels/1.0",
	}
}

// ResolveURL builds the download URL for a file at revision.
func (c *HTTPClient) ResolveURL(repoID, revision, filename string) string {
	if revision == "" {
		revision = "main"
	}
	segs := strings.Split(filename, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/%s/resolve/%s/%s", c.endpoint, repoID, url.PathEscape(revision), strings.Join(segs, "/"))
}

// Download writes the file to <LocalDir>/<Filename>, keeping the remote name
// verbatim. The body is streamed into a temp file that is renamed on success.
func (c *HTTPClient) Download(ctx context.Context, req types.DownloadRequest) (string, error) {
	u := c.ResolveURL(req.RepoID, req.Revision, req.Filename)
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	hreq.Header.Set("User-Agent", c.userAgent)
	if req.Token != "" {
		hreq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.http.Do(hreq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", statusError{code: resp.StatusCode, url: u}
	}

	dest := filepath.Join(req.LocalDir, filepath.FromSlash(req.Filename))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("transfer %s: %w", req.Filename, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("chmod %s: %w", req.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename: %w", err)
	}
	return dest, nil
}
