package raindrop

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the header and one record per row. encoding/csv
// applies standard quoting on top of the manual multi-tag quoting, so
// notes with newlines and pre-quoted tag lists both round-trip.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Fieldnames); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.URL, row.Folder, row.Title, row.Note, row.Tags, row.Created}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.URL, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
