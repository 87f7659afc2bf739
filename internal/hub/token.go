package hub

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenSource returns a locally available hub credential, if any.
type TokenSource func() (string, bool)

// NoToken never yields a credential.
func NoToken() (string, bool) { return "", false }

// StaticToken always yields tok when it is non-empty.
func StaticToken(tok string) TokenSource {
	return func() (string, bool) { return tok, tok != "" }
}

// NewTokenSource looks for a credential the way the hub CLI stores it:
// HF_TOKEN or HUGGING_FACE_HUB_TOKEN, then the file at HF_TOKEN_PATH,
// $HF_HOME/token or ~/.cache/huggingface/token.
func NewTokenSource(getenv func(string) string, homeDir func() (string, error)) TokenSource {
	return func() (string, bool) {
		for _, k := range []string{"HF_TOKEN", "HUGGING_FACE_HUB_TOKEN"} {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				return v, true
			}
		}
		for _, p := range tokenPaths(getenv, homeDir) {
			b, err := os.ReadFile(p)
			if err != nil {
				continue
			}
			if v := strings.TrimSpace(string(b)); v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// DefaultTokenSource reads the process environment and home directory.
func DefaultTokenSource() TokenSource { return NewTokenSource(os.Getenv, os.UserHomeDir) }

func tokenPaths(getenv func(string) string, homeDir func() (string, error)) []string {
	var paths []string
	if p := getenv("HF_TOKEN_PATH"); p != "" {
		paths = append(paths, p)
	}
	if h := getenv("HF_HOME"); h != "" {
		paths = append(paths, filepath.Join(h, "token"))
	} else if home, err := homeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".cache", "huggingface", "token"))
	}
	return paths
}
