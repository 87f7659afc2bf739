package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"modelkit/internal/common/fsutil"
	"modelkit/pkg/types"
)

var formatByExt = map[string]types.Format{
	".task":     types.FormatTask,
	".litertlm": types.FormatLiteRTLM,
	".bin":      types.FormatBin,
}

// FormatOf returns the archive format implied by name's extension.
func FormatOf(name string) (types.Format, bool) {
	f, ok := formatByExt[strings.ToLower(filepath.Ext(name))]
	return f, ok
}

// LoadDir scans dir (non-recursively) for model archives. ID is the file
// name; Path is absolute. Results are sorted by ID.
func LoadDir(dir string) ([]types.LocalModel, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.LocalModel
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		format, ok := FormatOf(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		models = append(models, types.LocalModel{
			ID:     e.Name(),
			Path:   filepath.Join(abs, e.Name()),
			Format: format,
			Size:   info.Size(),
		})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
	return models, nil
}
