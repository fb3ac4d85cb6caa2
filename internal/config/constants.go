package config

const (
	// DefaultBaseURL is the root of the Diigo API v2.
	DefaultBaseURL = "https://www.diigo.com/api/v2/"

	// MaxPageSize is the largest count the bookmarks endpoint accepts,
	// per https://www.diigo.com/api_dev/docs#section-methods.
	MaxPageSize = 100

	// DefaultExportFilename is where the CSV ends up unless overridden.
	DefaultExportFilename = "diigo_export.csv"

	// APIKeyURL is where users obtain an application key.
	APIKeyURL = "https://www.diigo.com/api_keys"
)
