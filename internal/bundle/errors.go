package bundle

import "errors"

// inputNotFoundError reports a missing input file before any bundling work.
type inputNotFoundError struct {
	what string
	path string
}

func (e inputNotFoundError) Error() string { return e.what + " not found: " + e.path }

// IsInputNotFound reports whether err indicates a missing weights or tokenizer file.
func IsInputNotFound(err error) bool {
	var e inputNotFoundError
	return errors.As(err, &e)
}

// bundleFailedError wraps a failure returned by the Bundler.
type bundleFailedError struct{ err error }

func (e bundleFailedError) Error() string { return "bundle creation failed: " + e.err.Error() }
func (e bundleFailedError) Unwrap() error { return e.err }

// IsBundleFailed reports whether err came from the bundling step itself.
func IsBundleFailed(err error) bool {
	var e bundleFailedError
	return errors.As(err, &e)
}
