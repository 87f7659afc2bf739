// Package hub downloads pre-bundled model archives listed in a static catalog.
package hub

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"modelkit/pkg/types"
)

// catalog is ordered: listing and bulk downloads follow this order.
var catalog = []types.CatalogEntry{
	{
		Key:         "gemma3-1b-task",
		RepoID:      "litert-community/Gemma3-1B-IT",
		Filename:    "Gemma3-1B-IT-int4.task",
		Format:      types.FormatTask,
		Description: "Gemma 3 1B - Lightweight text model in .task format",
	},
	{
		Key:         "gemma3n-e2b-litertlm",
		RepoID:      "google/gemma-3n-E2B-it-litert-lm",
		Filename:    "gemma-3n-E2B-it-int4.litertlm",
		Format:      types.FormatLiteRTLM,
		Description: "Gemma 3n E2B - Multimodal (text+image+audio) in .litertlm format",
	},
	{
		Key:         "gemma3n-e2b-web",
		RepoID:      "google/gemma-3n-E2B-it-litert-lm",
		Filename:    "gemma-3n-E2B-it-int4-Web.litertlm",
		Format:      types.FormatLiteRTLM,
		Description: "Gemma 3n E2B WebGPU - Optimized .litertlm for web",
	},
	{
		Key:         "gemma3n-e4b-litertlm",
		RepoID:      "google/gemma-3n-E4B-it-litert-lm",
		Filename:    "gemma-3n-E4B-it-int4.litertlm",
		Format:      types.FormatLiteRTLM,
		Description: "Gemma 3n E4B - Larger multimodal model in .litertlm format",
	},
	{
		Key:         "gemma2-2b-bin",
		RepoID:      "litert-community/Gemma2-2B-IT",
		Filename:    "gemma2-2b-it-gpu-int4.bin",
		Format:      types.FormatBin,
		Description: "Gemma 2 2B - Legacy .bin format for broader compatibility",
	},
	{
		Key:         "functiongemma-270m-litertlm",
		RepoID:      "sasha-denisov/function-gemma-270M-it",
		Filename:    "functiongemma-270M-it.litertlm",
		Format:      types.FormatLiteRTLM,
		Description: "FunctionGemma 270M - Instruction-tuned model in .litertlm format",
	},
	{
		Key:         "functiongemma-270m-task",
		RepoID:      "sasha-denisov/function-gemma-270M-it",
		Filename:    "functiongemma-270M-it.task",
		Format:      types.FormatTask,
		Description: "FunctionGemma 270M - Instruction-tuned model in .task format",
	},
}

// Recommended is the getting-started pair fetched when no mode is selected:
// one task-format and one litertlm-format model.
var Recommended = []string{"gemma3-1b-task", "gemma3n-e2b-litertlm"}

// Catalog returns a copy of the built-in catalog in display order.
func Catalog() []types.CatalogEntry {
	return append([]types.CatalogEntry(nil), catalog...)
}

// Lookup returns the catalog entry for key.
func Lookup(key string) (types.CatalogEntry, bool) {
	for _, e := range catalog {
		if e.Key == key {
			return e, true
		}
	}
	return types.CatalogEntry{}, false
}

// ParseFormat validates a format tag.
func ParseFormat(s string) (types.Format, error) {
	for _, f := range types.Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", s, types.Formats)
}

// WriteCatalog renders entries as a table.
func WriteCatalog(w io.Writer, entries []types.CatalogEntry) {
	fmt.Fprintln(w, "\nAvailable models:")
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Model Key", "Format", "Description"})
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	for _, e := range entries {
		tw.Append([]string{e.Key, string(e.Format), e.Description})
	}
	tw.Render()
	fmt.Fprintln(w)
}
