package main

import (
	"fmt"
	"os"

	"github.com/JesseEmond/diigo-export-to-csv/internal/cli"
	"github.com/JesseEmond/diigo-export-to-csv/internal/config"
)

func main() {
	command := "export"
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "export":
		cfg := config.NewConfig()
		cmd := cli.NewExportCommand()
		if err := cmd.ParseFlags(args, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  export  Export all Diigo bookmarks to a Raindrop.io import CSV (default)\n")
	fmt.Fprintf(os.Stderr, "  help    Show this help\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s export -h' for export options.\n", os.Args[0])
}
