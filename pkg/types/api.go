package types

// BundleRequest describes one bundling invocation.
type BundleRequest struct {
	// Path to the raw weights file.
	// example: gemma3-1b.tflite
	WeightsPath string `json:"weights_path"`
	// Path to the SentencePiece tokenizer file.
	// example: tokenizer.model
	TokenizerPath string `json:"tokenizer_path"`
	// Destination path of the bundle archive.
	// example: gemma3-1b.task
	OutputPath string `json:"output_path"`
	// Family used for default token configuration. Empty means the latest family.
	Family Family `json:"family,omitempty"`
	// Optional start token override. Empty keeps the family default.
	StartToken string `json:"start_token,omitempty"`
	// Optional stop token override. Replaces the family default wholesale when non-empty.
	StopTokens []string `json:"stop_tokens,omitempty"`
}

// DownloadRequest asks a hub client to fetch one file into a local directory.
type DownloadRequest struct {
	RepoID   string
	Filename string
	// Revision is the branch, tag or commit to resolve. Empty means "main".
	Revision string
	LocalDir string
	// Token is sent as a bearer credential only when non-empty.
	Token string
}
