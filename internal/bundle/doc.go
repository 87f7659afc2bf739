// Package bundle packs a raw weights file and a tokenizer into a single .task
// archive consumed by on-device LLM runtimes.
//
//   - families.go: per-family token defaults and override resolution.
//   - composer.go: Composer validates inputs and drives a Bundler.
//   - zip.go: ZipBundler, the default Bundler writing the .task zip layout.
//   - metadata.go: protobuf wire encoding of the METADATA entry.
//   - errors.go: error types and helpers (IsInputNotFound, IsBundleFailed).
package bundle
