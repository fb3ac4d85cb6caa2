// Package raindrop turns canonical bookmarks into rows for the
// Raindrop.io CSV import format.
package raindrop

import (
	"strings"

	"github.com/JesseEmond/diigo-export-to-csv/internal/entities"
)

const (
	baseFolder      = "Diigo Import"
	readLaterFolder = "/Read Later"
	privateFolder   = "/Private"

	// createdLayout renders the numeric UTC offset form ("+00:00"),
	// never "Z", which is what the importer expects.
	createdLayout = "2006-01-02T15:04:05-07:00"
)

// Fieldnames is the CSV header, in column order.
var Fieldnames = []string{"url", "folder", "title", "note", "tags", "created"}

// Row is one line of the Raindrop.io import CSV.
type Row struct {
	URL     string
	Folder  string
	Title   string
	Note    string
	Tags    string
	Created string
}

// ToRow derives the import row for one bookmark. Pure, no I/O.
func ToRow(b entities.Bookmark) Row {
	return Row{
		URL:     b.URL,
		Folder:  folderFor(b),
		Title:   b.Title,
		Note:    noteFor(b),
		Tags:    tagsFor(b.Tags),
		Created: b.CreatedAt.Format(createdLayout),
	}
}

// folderFor synthesizes the destination folder path. Suffix order is
// fixed: read-later before private, both may apply.
func folderFor(b entities.Bookmark) string {
	folder := baseFolder
	if b.ReadLater {
		folder += readLaterFolder
	}
	if b.Private {
		folder += privateFolder
	}
	return folder
}

// tagsFor renders the tags column. A multi-tag value is joined with
// ", " and wrapped in literal double quotes so the importer reads it as
// one field; embedded quotes are doubled so they survive that quoting.
func tagsFor(tags []string) string {
	switch len(tags) {
	case 0:
		return ""
	case 1:
		return tags[0]
	}
	joined := strings.Join(tags, ", ")
	return `"` + strings.ReplaceAll(joined, `"`, `""`) + `"`
}

// noteFor is the description followed by the flattened annotation
// threads. Each comment re-emits its full quoted annotation, so a
// thread stays readable even after the importer strips structure.
func noteFor(b entities.Bookmark) string {
	var note strings.Builder
	note.WriteString(b.Description)

	if len(b.Annotations) == 0 {
		return note.String()
	}

	note.WriteString("\n\nAnnotations:")
	for _, a := range b.Annotations {
		// Continue the quote marker across blank lines.
		quoted := ">" + strings.ReplaceAll(a.Content, "\n\n", "\n> \n")
		for _, comment := range a.Comments {
			note.WriteString("\n " + quoted + "\n\n" + comment + "\n")
		}
	}
	return note.String()
}
