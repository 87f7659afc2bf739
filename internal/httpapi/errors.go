package httpapi

import "errors"

// ErrModelsDirMissing is returned at startup when the models directory does not exist.
var ErrModelsDirMissing = errors.New("models directory not found")
