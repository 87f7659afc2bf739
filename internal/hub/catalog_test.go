package hub

import (
	"bytes"
	"strings"
	"testing"

	"modelkit/pkg/types"
)

func TestCatalog_KeysUniqueAndFormatsKnown(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Catalog() {
		if seen[e.Key] {
			t.Fatalf("duplicate key %s", e.Key)
		}
		seen[e.Key] = true
		if _, err := ParseFormat(string(e.Format)); err != nil {
			t.Fatalf("%s: %v", e.Key, err)
		}
		if e.RepoID == "" || e.Filename == "" || e.Description == "" {
			t.Fatalf("incomplete entry: %+v", e)
		}
	}
	if len(seen) != 7 {
		t.Fatalf("catalog size=%d", len(seen))
	}
	for _, k := range Recommended {
		if !seen[k] {
			t.Fatalf("recommended key %s missing from catalog", k)
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Key = "mutated"
	if _, ok := Lookup("gemma3-1b-task"); !ok {
		t.Fatalf("catalog mutated through Catalog()")
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("gemma2-2b-bin")
	if !ok || e.RepoID != "litert-community/Gemma2-2B-IT" || e.Filename != "gemma2-2b-it-gpu-int4.bin" || e.Format != types.FormatBin {
		t.Fatalf("unexpected entry: %+v ok=%v", e, ok)
	}
	if _, ok := Lookup("gpt-5"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []string{"task", "litertlm", "bin"} {
		if got, err := ParseFormat(f); err != nil || string(got) != f {
			t.Fatalf("%s: %v %v", f, got, err)
		}
	}
	if _, err := ParseFormat("gguf"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	WriteCatalog(&buf, Catalog())
	out := buf.String()
	for _, e := range Catalog() {
		if !strings.Contains(out, e.Key) {
			t.Fatalf("listing missing %s:\n%s", e.Key, out)
		}
	}
	if !strings.Contains(strings.ToUpper(out), "MODEL KEY") {
		t.Fatalf("listing missing header:\n%s", out)
	}
}
