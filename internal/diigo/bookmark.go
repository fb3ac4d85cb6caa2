package diigo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/JesseEmond/diigo-export-to-csv/internal/entities"
)

// createdAtLayout matches Diigo timestamps, e.g. "2024/11/14 05:48:28 +0000".
const createdAtLayout = "2006/01/02 15:04:05 -0700"

// wireBookmark mirrors one entry of the JSON array returned by the
// bookmarks endpoint.
type wireBookmark struct {
	URL         string            `json:"url"`
	Title       string            `json:"title"`
	Desc        string            `json:"desc"`
	Tags        string            `json:"tags"`
	CreatedAt   string            `json:"created_at"`
	ReadLater   string            `json:"readlater"`
	Shared      string            `json:"shared"`
	Comments    []json.RawMessage `json:"comments"`
	Annotations []wireAnnotation  `json:"annotations"`
}

type wireAnnotation struct {
	Content  string        `json:"content"`
	Comments []wireComment `json:"comments"`
}

type wireComment struct {
	Content string `json:"content"`
}

// decodeBookmark normalizes one wire entry into the canonical record.
// Any violated invariant yields a *ValidationError and fails the whole
// export.
func (w wireBookmark) decodeBookmark() (entities.Bookmark, error) {
	// Bookmark-level comments are a separate feature from annotation
	// comments and have no representation in the target schema.
	if len(w.Comments) > 0 {
		return entities.Bookmark{}, &ValidationError{
			Field:       "comments",
			BookmarkURL: w.URL,
			Reason:      fmt.Sprintf("bookmark-level comments are not supported (%d present)", len(w.Comments)),
		}
	}

	shared, err := parseYesNo(w.Shared, "shared", w.URL)
	if err != nil {
		return entities.Bookmark{}, err
	}
	readLater, err := parseYesNo(w.ReadLater, "readlater", w.URL)
	if err != nil {
		return entities.Bookmark{}, err
	}

	createdAt, err := time.Parse(createdAtLayout, w.CreatedAt)
	if err != nil {
		return entities.Bookmark{}, &ValidationError{
			Field:       "created_at",
			BookmarkURL: w.URL,
			Reason:      fmt.Sprintf("timestamp %q does not match %q", w.CreatedAt, createdAtLayout),
		}
	}

	return entities.Bookmark{
		URL:         w.URL,
		Title:       w.Title,
		Description: w.Desc,
		Tags:        strings.Split(w.Tags, ","),
		CreatedAt:   createdAt,
		ReadLater:   readLater,
		Private:     !shared,
		Annotations: mergeAnnotations(w.Annotations),
	}, nil
}

func parseYesNo(value, field, bookmarkURL string) (bool, error) {
	switch value {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, &ValidationError{
		Field:       field,
		BookmarkURL: bookmarkURL,
		Reason:      fmt.Sprintf("expected \"yes\" or \"no\", got %q", value),
	}
}

// mergeAnnotations keeps annotations in first-seen order and, when the
// same annotation text appears more than once, appends the later
// comments onto the first entry.
func mergeAnnotations(wire []wireAnnotation) []entities.Annotation {
	var annotations []entities.Annotation
	index := make(map[string]int, len(wire))

	for _, a := range wire {
		comments := make([]string, 0, len(a.Comments))
		for _, c := range a.Comments {
			comments = append(comments, c.Content)
		}

		if i, seen := index[a.Content]; seen {
			annotations[i].Comments = append(annotations[i].Comments, comments...)
			continue
		}
		index[a.Content] = len(annotations)
		annotations = append(annotations, entities.Annotation{
			Content:  a.Content,
			Comments: comments,
		})
	}

	return annotations
}
