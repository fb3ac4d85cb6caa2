package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/JesseEmond/diigo-export-to-csv/internal/config"
	"github.com/JesseEmond/diigo-export-to-csv/internal/entities"
)

// resolveCredentials builds the run's credentials from the environment,
// prompting interactively for whatever is missing. The password prompt
// never echoes.
func resolveCredentials(cfg *config.Config) (entities.Credentials, error) {
	creds := entities.Credentials{
		Username: cfg.Diigo.Username,
		Password: cfg.Diigo.Password,
		APIKey:   cfg.Diigo.APIKey,
	}

	if creds.Username == "" {
		fmt.Print("username? ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return entities.Credentials{}, fmt.Errorf("failed to read username: %w", err)
		}
		creds.Username = strings.TrimSpace(line)
	}
	if creds.Username == "" {
		return entities.Credentials{}, fmt.Errorf("username is required")
	}

	if creds.Password == "" {
		fmt.Print("password? ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return entities.Credentials{}, fmt.Errorf("failed to read password: %w", err)
		}
		creds.Password = string(password)
	}
	if creds.Password == "" {
		return entities.Credentials{}, fmt.Errorf("password is required")
	}

	return creds, nil
}
