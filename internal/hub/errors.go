package hub

import (
	"errors"
	"fmt"
	"net/http"
)

// unknownModelError is returned for keys missing from the catalog.
type unknownModelError struct{ key string }

func (e unknownModelError) Error() string { return "unknown model: " + e.key }

// IsUnknownModel reports whether err indicates a key missing from the catalog.
func IsUnknownModel(err error) bool {
	var e unknownModelError
	return errors.As(err, &e)
}

// statusError carries a non-2xx hub response.
type statusError struct {
	code int
	url  string
}

func (e statusError) Error() string {
	switch e.code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Sprintf("authentication required (%d) for %s", e.code, e.url)
	case http.StatusNotFound:
		return "remote file not found: " + e.url
	}
	return fmt.Sprintf("hub returned status %d for %s", e.code, e.url)
}

// StatusCode returns the HTTP status of the failed transfer.
func (e statusError) StatusCode() int { return e.code }

// IsAuthRequired reports whether the hub rejected the request for lack of credentials.
func IsAuthRequired(err error) bool {
	var e statusError
	return errors.As(err, &e) && (e.code == http.StatusUnauthorized || e.code == http.StatusForbidden)
}

// IsRemoteNotFound reports whether the requested file does not exist on the hub.
func IsRemoteNotFound(err error) bool {
	var e statusError
	return errors.As(err, &e) && e.code == http.StatusNotFound
}
