package diigo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWire() wireBookmark {
	return wireBookmark{
		URL:       "https://example.com",
		Title:     "Example",
		Desc:      "A description",
		Tags:      "go,testing",
		CreatedAt: "2024/11/14 05:48:28 +0000",
		ReadLater: "no",
		Shared:    "yes",
	}
}

func TestDecodeBookmark(t *testing.T) {
	bookmark, err := validWire().decodeBookmark()

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", bookmark.URL)
	assert.Equal(t, "Example", bookmark.Title)
	assert.Equal(t, "A description", bookmark.Description)
	assert.Equal(t, []string{"go", "testing"}, bookmark.Tags)
	assert.False(t, bookmark.ReadLater)
	assert.False(t, bookmark.Private)
	assert.Empty(t, bookmark.Annotations)

	want := time.Date(2024, 11, 14, 5, 48, 28, 0, time.UTC)
	assert.True(t, bookmark.CreatedAt.Equal(want))
}

func TestDecodeBookmark_Flags(t *testing.T) {
	tests := []struct {
		name          string
		shared        string
		readLater     string
		wantPrivate   bool
		wantReadLater bool
	}{
		{"shared, not read later", "yes", "no", false, false},
		{"private", "no", "no", true, false},
		{"read later", "yes", "yes", false, true},
		{"private and read later", "no", "yes", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWire()
			w.Shared = tt.shared
			w.ReadLater = tt.readLater

			bookmark, err := w.decodeBookmark()

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrivate, bookmark.Private)
			assert.Equal(t, tt.wantReadLater, bookmark.ReadLater)
		})
	}
}

func TestDecodeBookmark_UnrecognizedSentinel(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*wireBookmark)
		wantField string
	}{
		{"bad shared", func(w *wireBookmark) { w.Shared = "maybe" }, "shared"},
		{"empty shared", func(w *wireBookmark) { w.Shared = "" }, "shared"},
		{"bad readlater", func(w *wireBookmark) { w.ReadLater = "1" }, "readlater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWire()
			tt.mutate(&w)

			_, err := w.decodeBookmark()

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantField, valErr.Field)
			assert.Equal(t, "https://example.com", valErr.BookmarkURL)
		})
	}
}

func TestDecodeBookmark_MalformedTimestamp(t *testing.T) {
	w := validWire()
	w.CreatedAt = "2024-11-14T05:48:28Z"

	_, err := w.decodeBookmark()

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "created_at", valErr.Field)
}

func TestDecodeBookmark_TagsSplitVerbatim(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"no tags field", "", []string{""}},
		{"single tag", "golang", []string{"golang"}},
		{"untrimmed whitespace kept", "a, b", []string{"a", " b"}},
		{"embedded quote kept", `say "hi",other`, []string{`say "hi"`, "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWire()
			w.Tags = tt.raw

			bookmark, err := w.decodeBookmark()

			require.NoError(t, err)
			assert.Equal(t, tt.want, bookmark.Tags)
		})
	}
}

func TestDecodeBookmark_RejectsBookmarkLevelComments(t *testing.T) {
	w := validWire()
	w.Comments = []json.RawMessage{json.RawMessage(`{"content":"a comment"}`)}

	_, err := w.decodeBookmark()

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "comments", valErr.Field)
}

func TestDecodeBookmark_Annotations(t *testing.T) {
	w := validWire()
	w.Annotations = []wireAnnotation{
		{Content: "first", Comments: []wireComment{{Content: "c1"}}},
		{Content: "second"},
		{Content: "first", Comments: []wireComment{{Content: "c2"}, {Content: "c3"}}},
	}

	bookmark, err := w.decodeBookmark()

	require.NoError(t, err)
	require.Len(t, bookmark.Annotations, 2)

	// First-seen order, duplicate content merged onto the first entry.
	assert.Equal(t, "first", bookmark.Annotations[0].Content)
	assert.Equal(t, []string{"c1", "c2", "c3"}, bookmark.Annotations[0].Comments)
	assert.Equal(t, "second", bookmark.Annotations[1].Content)
	assert.Empty(t, bookmark.Annotations[1].Comments)
}
