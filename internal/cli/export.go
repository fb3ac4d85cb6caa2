package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/JesseEmond/diigo-export-to-csv/internal/config"
	"github.com/JesseEmond/diigo-export-to-csv/internal/database"
	"github.com/JesseEmond/diigo-export-to-csv/internal/diigo"
	"github.com/JesseEmond/diigo-export-to-csv/internal/entities"
	"github.com/JesseEmond/diigo-export-to-csv/internal/raindrop"
)

// ExportCommand fetches every bookmark of a Diigo user and writes the
// Raindrop.io import CSV.
type ExportCommand struct {
	OutputPath   string
	DatabasePath string
	PageSize     int
	Verbose      bool
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "o", cfg.Export.Filename, "Output CSV file path")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Export.DatabasePath, "Also archive fetched bookmarks to this sqlite file")
	fs.IntVar(&cmd.PageSize, "count", cfg.Diigo.PageSize, fmt.Sprintf("Bookmarks per API request (max %d)", config.MaxPageSize))
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all Diigo bookmarks of a user to a Raindrop.io import CSV.\n\n")
		fmt.Fprintf(os.Stderr, "Requires the DIIGO_API_KEY environment variable; get a key from\n")
		fmt.Fprintf(os.Stderr, "%s. Username and password are read from\n", config.APIKeyURL)
		fmt.Fprintf(os.Stderr, "DIIGO_USERNAME/DIIGO_PASSWORD or prompted interactively.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Export to the default %s:\n", config.DefaultExportFilename)
		fmt.Fprintf(os.Stderr, "  %s export\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Export to a custom file and keep a local archive:\n")
		fmt.Fprintf(os.Stderr, "  %s export -o bookmarks.csv -db archive.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Flag overrides feed back into the config so validation covers them.
	cfg.Diigo.PageSize = cmd.PageSize
	cfg.Export.Filename = cmd.OutputPath
	cfg.Export.DatabasePath = cmd.DatabasePath

	return nil
}

func (cmd *ExportCommand) Run(cfg *config.Config) error {
	log := logrus.New()
	if cmd.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	creds, err := resolveCredentials(cfg)
	if err != nil {
		return err
	}

	client := diigo.NewClient(cfg.Diigo.BaseURL, cfg.Diigo.PageSize, log)
	bookmarks, err := client.FetchAll(context.Background(), creds)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d bookmarks from Diigo.\n", len(bookmarks))

	rows := make([]raindrop.Row, 0, len(bookmarks))
	for _, b := range bookmarks {
		rows = append(rows, raindrop.ToRow(b))
	}

	if cfg.Export.DatabasePath != "" {
		fmt.Printf("Archiving to %s...\n", cfg.Export.DatabasePath)
		if err := cmd.archive(cfg.Export.DatabasePath, bookmarks); err != nil {
			return err
		}
	}

	fmt.Printf("Saving to %s...\n", cfg.Export.Filename)
	file, err := os.Create(cfg.Export.Filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := raindrop.WriteCSV(file, rows); err != nil {
		return err
	}

	fmt.Println("Done!")
	return nil
}

func (cmd *ExportCommand) archive(path string, bookmarks []entities.Bookmark) error {
	db, err := database.NewDatabase(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.SaveBookmarks(bookmarks)
}
