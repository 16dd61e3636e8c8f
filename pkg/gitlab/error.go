// Package gitlab provides GitLab API client functionality.
package gitlab

import "errors"

var (
	// ErrMissingField is returned when an API record lacks a field required downstream.
	ErrMissingField = errors.New("missing required field in API response")
)
