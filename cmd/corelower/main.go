package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/config"
	"corelower/internal/pkg/processors"
	"corelower/pkg/lowering"
)

// Config holds the driver's own flags, following the vito-dang pattern of
// a small struct bound to cobra flags rather than package-level globals.
type Config struct {
	Debug bool
	Out   string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "corelower [flags] <program.json>",
		Short: "Lower a Source program to Core",
		Long: `corelower runs the Source→Core lowering pass over a single JSON-encoded
source.Program and prints the resulting Core program as an S-expression.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args[0])
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&cfg.Out, "out", "o", "", "output file path (stdout if unset)")
	rootCmd.Version = processors.Version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config, inPath string) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	runID := uuid.New()
	logger.Debug("starting lowering run", "run_id", runID, "input", inPath)

	file, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer file.Close()

	_, projectConfig, err := config.Find(".")
	if err != nil {
		return fmt.Errorf("loading corelower.toml: %w", err)
	}

	prog, log, err := lowering.LowerFileTraced(file, projectConfig)
	if cfg.Debug {
		log.Flush(os.Stderr)
	}
	if err != nil {
		logger.Error("lowering failed", "run_id", runID, "error", err)
		return err
	}

	logger.Debug("lowering succeeded", "run_id", runID)
	return writeResult(cfg.Out, prog)
}

func writeResult(outPath string, prog *core.Program) error {
	rendered := core.Print(prog)
	if outPath == "" {
		fmt.Println(rendered)
		return nil
	}
	return os.WriteFile(outPath, []byte(rendered+"\n"), 0o644)
}
