package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mrlokans/wordseed/internal/cli"
	"github.com/mrlokans/wordseed/internal/config"
	"github.com/mrlokans/wordseed/internal/entrypoint"
	"github.com/mrlokans/wordseed/internal/logger"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if err := logger.Init(cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := "seed"
	var args []string
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "seed":
		cmd := cli.NewSeedCommand(cfg)
		if err := cmd.ParseFlags(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return
			}
			exit(err)
		}
		if err := cmd.Run(); err != nil {
			exit(err)
		}

	case "serve":
		if err := entrypoint.Run(cfg, Version); err != nil {
			exit(err)
		}

	case "version":
		fmt.Printf("wordseed %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func exit(err error) {
	logger.Logger.Error("Command failed", zap.Error(err))
	logger.Sync()
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  seed     Create the schema and insert sample data if empty (default)\n")
	fmt.Fprintf(os.Stderr, "  serve    Seed, then serve /health until interrupted\n")
	fmt.Fprintf(os.Stderr, "  version  Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
