// Toolbox — Developer Utility CLI Suite
//
// Usage:
//
//	toolbox diff a.txt b.txt   # line diff with unified or split output
//	toolbox json fmt doc.json  # format / convert / query JSON
//	toolbox uuid -n 5          # generate UUIDs
//	toolbox version            # show version
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	toolboxcfg "github.com/RobinCoderZhao/toolbox-suite/internal/toolbox/config"
	"github.com/RobinCoderZhao/toolbox-suite/internal/toolbox/history"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "toolbox",
		Short: "Developer utility tool suite",
		Long:  "Toolbox bundles everyday developer utilities: diffing, format conversion, generators and inspectors, all local and offline.",
	}

	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(jsonCmd())
	rootCmd.AddCommand(yamlCmd())
	rootCmd.AddCommand(xmlCmd())
	rootCmd.AddCommand(sqlCmd())
	rootCmd.AddCommand(uuidCmd())
	rootCmd.AddCommand(passwordCmd())
	rootCmd.AddCommand(qrCmd())
	rootCmd.AddCommand(curlCmd())
	rootCmd.AddCommand(cronCmd())
	rootCmd.AddCommand(jwtCmd())
	rootCmd.AddCommand(colorCmd())
	rootCmd.AddCommand(htmlCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("toolbox %s\n", version)
		},
	}
}

// loadConfig returns the effective configuration, falling back to
// defaults when the config file is unreadable.
func loadConfig() toolboxcfg.Config {
	cfg, err := toolboxcfg.Load()
	if err != nil {
		slog.Warn("config load failed, using defaults", "error", err)
		return toolboxcfg.Default()
	}
	return cfg
}

// record appends a one-line summary to the history store. History is
// best-effort: failures are logged, never fatal.
func record(cfg toolboxcfg.Config, tool, summary string) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Debug("history unavailable", "error", err)
		return
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := store.Record(ctx, tool, summary); err != nil {
		slog.Debug("history record failed", "error", err)
	}
}

// readInput reads the named file, or stdin when path is "-" or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// argOrStdin treats the sole positional argument as input, reading stdin
// when no argument is given.
func argOrStdin(args []string) ([]byte, error) {
	if len(args) == 0 {
		return readInput("")
	}
	return readInput(args[0])
}
