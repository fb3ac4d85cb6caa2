package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Diigo
		Export
		Logging
	}

	Diigo struct {
		APIKey   string
		BaseURL  string
		PageSize int
		Username string // Optional; prompted interactively when empty
		Password string // Optional; prompted interactively when empty
	}
	Export struct {
		Filename     string
		DatabasePath string // Optional sqlite archive of fetched bookmarks
	}
	Logging struct {
		Level string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("diigo_base_url", DefaultBaseURL)
	v.SetDefault("diigo_page_size", MaxPageSize)
	v.SetDefault("export_filename", DefaultExportFilename)
	v.SetDefault("export_database_path", "")
	v.SetDefault("log_level", "info")

	return &Config{
		Diigo: Diigo{
			APIKey:   v.GetString("DIIGO_API_KEY"),
			BaseURL:  v.GetString("DIIGO_BASE_URL"),
			PageSize: v.GetInt("DIIGO_PAGE_SIZE"),
			Username: v.GetString("DIIGO_USERNAME"),
			Password: v.GetString("DIIGO_PASSWORD"),
		},
		Export: Export{
			Filename:     v.GetString("EXPORT_FILENAME"),
			DatabasePath: v.GetString("EXPORT_DATABASE_PATH"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}

// Validate checks everything that must hold before the first network
// call: the presence of the API key and the page size against the
// documented API ceiling.
func (c *Config) Validate() error {
	if c.Diigo.APIKey == "" {
		return &Error{
			Field:  "DIIGO_API_KEY",
			Reason: fmt.Sprintf("API key is not set, get one from %s", APIKeyURL),
		}
	}
	if c.Diigo.PageSize < 1 || c.Diigo.PageSize > MaxPageSize {
		return &Error{
			Field:  "DIIGO_PAGE_SIZE",
			Reason: fmt.Sprintf("page size %d is out of range [1, %d]", c.Diigo.PageSize, MaxPageSize),
		}
	}
	if c.Diigo.BaseURL == "" {
		return &Error{Field: "DIIGO_BASE_URL", Reason: "base URL is empty"}
	}
	return nil
}

// Error reports a configuration problem. It aborts the export before
// any network call is made.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}
