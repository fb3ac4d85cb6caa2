package diigo

import "fmt"

// APIError is a non-2xx response from the Diigo API. It aborts the
// whole export; there is no retry and no partial output.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("diigo API error: HTTP %d: %s", e.StatusCode, e.Body)
}

// ValidationError is a fetched record that violates an expected
// invariant (unrecognized enum value, malformed timestamp, unsupported
// bookmark-level comments). Fatal for the whole export.
type ValidationError struct {
	Field       string
	BookmarkURL string
	Reason      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid bookmark %q: field %s: %s", e.BookmarkURL, e.Field, e.Reason)
}
