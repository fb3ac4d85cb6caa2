package entities

import "time"

// Credentials authenticate a single export run against the Diigo API.
// The API key identifies the application, the username/password pair
// identifies the user (HTTP Basic).
type Credentials struct {
	Username string
	Password string
	APIKey   string
}

// Annotation is a highlighted excerpt from a bookmarked page, threaded
// with zero or more comments.
type Annotation struct {
	Content  string
	Comments []string
}

// Bookmark is the canonical in-memory record, decoupled from the Diigo
// wire format. Annotations preserve first-seen order and hold a unique
// Content per entry; comments for a repeated annotation text are merged
// onto the first entry.
type Bookmark struct {
	URL         string
	Title       string
	Description string
	Tags        []string
	CreatedAt   time.Time
	ReadLater   bool
	Private     bool
	Annotations []Annotation
}
