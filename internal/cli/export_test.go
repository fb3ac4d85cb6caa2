package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseEmond/diigo-export-to-csv/internal/config"
)

func TestExportCommand_ParseFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	cmd := NewExportCommand()

	require.NoError(t, cmd.ParseFlags(nil, cfg))

	assert.Equal(t, config.DefaultExportFilename, cmd.OutputPath)
	assert.Equal(t, config.MaxPageSize, cmd.PageSize)
	assert.Empty(t, cmd.DatabasePath)
	assert.False(t, cmd.Verbose)
}

func TestExportCommand_ParseFlags_Overrides(t *testing.T) {
	cfg := config.NewConfig()
	cmd := NewExportCommand()

	args := []string{"-o", "out.csv", "-db", "archive.db", "-count", "10", "-verbose"}
	require.NoError(t, cmd.ParseFlags(args, cfg))

	assert.Equal(t, "out.csv", cmd.OutputPath)
	assert.Equal(t, "archive.db", cmd.DatabasePath)
	assert.Equal(t, 10, cmd.PageSize)
	assert.True(t, cmd.Verbose)

	// Overrides flow back into the config for validation.
	assert.Equal(t, 10, cfg.Diigo.PageSize)
	assert.Equal(t, "out.csv", cfg.Export.Filename)
	assert.Equal(t, "archive.db", cfg.Export.DatabasePath)
}

func TestExportCommand_Run_InvalidPageSize(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Diigo.APIKey = "key"
	cmd := NewExportCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-count", "1024"}, cfg))

	err := cmd.Run(cfg)

	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "DIIGO_PAGE_SIZE", cfgErr.Field)
}
