package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandHome(t *testing.T) {
	// Set a deterministic HOME for the duration of this test so we never skip.
	origHome, hadHome := os.LookupEnv("HOME")
	origUserProfile, hadUserProfile := os.LookupEnv("USERPROFILE")
	t.Cleanup(func() {
		if hadHome {
			_ = os.Setenv("HOME", origHome)
		} else {
			_ = os.Unsetenv("HOME")
		}
		if hadUserProfile {
			_ = os.Setenv("USERPROFILE", origUserProfile)
		} else {
			_ = os.Unsetenv("USERPROFILE")
		}
	})

	home := t.TempDir()
	// Configure both env vars for cross-platform behavior of os.UserHomeDir.
	_ = os.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		_ = os.Setenv("USERPROFILE", home)
	}
	// raw path unaffected
	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	// empty path
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	// ~ expansion
	p, err := ExpandHome("~")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p != home {
		t.Fatalf("expected %q, got %q", home, p)
	}
	// ~/subdir
	sub := "test-sub"
	exp, err := ExpandHome("~/" + sub)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if runtime.GOOS == "windows" {
		if filepath.Base(exp) != sub {
			t.Fatalf("unexpected expanded path: %q", exp)
		}
	} else {
		expected := filepath.Join(home, sub)
		if exp != expected {
			t.Fatalf("expected %q, got %q", expected, exp)
		}
	}
}

func TestPathExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "weights.tflite")
	if err := os.WriteFile(f, []byte("abc"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !PathExists(f) || !PathExists(dir) {
		t.Fatalf("expected existing paths to be reported")
	}
	if PathExists(filepath.Join(dir, "missing")) {
		t.Fatalf("missing path reported as existing")
	}
	if !IsDir(dir) || IsDir(f) {
		t.Fatalf("IsDir mismatch")
	}
	n, err := FileSize(f)
	if err != nil || n != 3 {
		t.Fatalf("FileSize=%d err=%v", n, err)
	}
	if _, err := FileSize(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestResolveDir(t *testing.T) {
	base := t.TempDir()
	got, err := ResolveDir(base, "models")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != filepath.Join(base, "models") {
		t.Fatalf("got %q", got)
	}
	abs := filepath.Join(base, "elsewhere")
	if got, err := ResolveDir("/ignored", abs); err != nil || got != abs {
		t.Fatalf("absolute path changed: %q err=%v", got, err)
	}
}
