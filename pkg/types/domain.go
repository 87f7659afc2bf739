package types

// Family selects the default start/stop token conventions for a model lineage.
type Family string

const (
	FamilyGemma  Family = "gemma"
	FamilyGemma2 Family = "gemma2"
	FamilyGemma3 Family = "gemma3"
)

// Families lists the supported family labels, oldest first.
var Families = []Family{FamilyGemma, FamilyGemma2, FamilyGemma3}

// TokenConfig is the runtime token metadata packed into a bundle.
type TokenConfig struct {
	// Token prepended to every prompt.
	// example: <bos>
	StartToken string `json:"start_token" yaml:"start_token" toml:"start_token"`
	// Tokens that end generation, in priority order.
	// example: ["<eos>","<end_of_turn>"]
	StopTokens []string `json:"stop_tokens" yaml:"stop_tokens" toml:"stop_tokens"`
	// Whether the tokenizer output needs byte-to-unicode normalization.
	BytesToUnicode bool `json:"bytes_to_unicode" yaml:"bytes_to_unicode" toml:"bytes_to_unicode"`
}

// Clone returns a deep copy so callers never share the stop token slice.
func (c TokenConfig) Clone() TokenConfig {
	c.StopTokens = append([]string(nil), c.StopTokens...)
	return c
}

// Format is the archive format of a pre-bundled model.
type Format string

const (
	FormatTask     Format = "task"
	FormatLiteRTLM Format = "litertlm"
	FormatBin      Format = "bin"
)

// Formats lists the known archive formats.
var Formats = []Format{FormatTask, FormatLiteRTLM, FormatBin}

// CatalogEntry describes where to fetch a named pre-bundled model.
type CatalogEntry struct {
	// Catalog key used on the command line.
	// example: gemma3-1b-task
	Key string `json:"key"`
	// Hub repository identifier.
	// example: litert-community/Gemma3-1B-IT
	RepoID string `json:"repo_id"`
	// File name inside the repository, kept verbatim on disk.
	// example: Gemma3-1B-IT-int4.task
	Filename string `json:"filename"`
	Format   Format `json:"format"`
	// Human-readable description.
	Description string `json:"description"`
}

// LocalModel is a model archive found on disk.
type LocalModel struct {
	// File name, used as the identifier.
	// example: Gemma3-1B-IT-int4.task
	ID     string `json:"id"`
	Path   string `json:"path"`
	Format Format `json:"format"`
	Size   int64  `json:"size"`
}
