package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/muhammadolammi/resumeformatter/internal/agents"
	"github.com/muhammadolammi/resumeformatter/internal/config"
	"github.com/muhammadolammi/resumeformatter/internal/formatter"
	"github.com/muhammadolammi/resumeformatter/internal/orchestrator"
)

var (
	outputPath string
	formatName string
	quiet      bool
	configPath string
	sequential bool
	noSearch   bool
	debug      bool
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (prints to the terminal when empty)")
	rootCmd.Flags().StringVarP(&formatName, "format", "f", string(formatter.Plain), "Output format: "+formatter.Names())
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress messages (only show final output)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log full step outputs")
	rootCmd.Flags().BoolVar(&sequential, "sequential", false, "Analyse the résumé and job description one after another")
	rootCmd.Flags().BoolVar(&noSearch, "no-search", false, "Run without the Google Search tool")
}

const separator = "================================================================================"

func runFormat(cmd *cobra.Command, args []string) error {
	resumePath, jobPath := args[0], args[1]
	out := cmd.OutOrStdout()

	format, err := formatter.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(out, "CV Formatter - Multi-Agent CV Optimization System")
		fmt.Fprintf(out, "Using API Key: %s\n", keyStatus(cfg))
		fmt.Fprintf(out, "Model: %s\n\n", cfg.Model)
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			return fmt.Errorf("%w (create a .env file with GOOGLE_API_KEY=your_key_here)", err)
		}
		return err
	}

	if err := checkInput("CV", resumePath); err != nil {
		return err
	}
	if err := checkInput("JD", jobPath); err != nil {
		return err
	}

	if !quiet {
		printSummary(out, resumePath, jobPath, format)
	}

	logger := setupLogger(cmd.ErrOrStderr(), quiet, debug)
	ctx := cmd.Context()

	agentCfg, err := agents.NewGeminiConfig(ctx, cfg.APIKey, cfg.Model, cfg.Models, cfg.Search)
	if err != nil {
		return err
	}

	opts := orchestrator.Options{
		AppName:  cfg.AppName,
		UserID:   cfg.UserID,
		Parallel: cfg.Parallel,
		Logger:   logger,
	}
	if !quiet {
		opts.Observe = orchestrator.LogProgress(logger)
	}
	orch, err := orchestrator.New(agentCfg, opts)
	if err != nil {
		return err
	}

	result, err := orch.FormatResume(ctx, resumePath, jobPath)
	if err != nil {
		return fmt.Errorf("error during CV formatting: %w", err)
	}

	rendered, err := formatter.Render(result, format)
	if err != nil {
		return err
	}

	if err := emit(out, outputPath, rendered, quiet); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(out, "\n%s\nCV formatting completed successfully!\n%s\n", separator, separator)
	}
	return nil
}

// loadConfig applies the command-line flags on top of the file and
// environment settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if sequential {
		cfg.Parallel = false
	}
	if noSearch {
		cfg.Search = false
	}
	return cfg, nil
}

func keyStatus(cfg *config.Config) string {
	if cfg.IsConfigured() {
		return "Configured"
	}
	return "Missing"
}

func checkInput(what, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s file not found: %s", what, path)
		}
		return fmt.Errorf("cannot read %s file %s: %w", what, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path is a directory: %s", what, path)
	}
	return nil
}

func printSummary(w io.Writer, resumePath, jobPath string, format formatter.Format) {
	dest := "Terminal"
	if outputPath != "" {
		dest = outputPath
	}
	fmt.Fprintln(w, "Processing:")
	fmt.Fprintf(w, "  CV: %s\n", absPath(resumePath))
	fmt.Fprintf(w, "  JD: %s\n", absPath(jobPath))
	fmt.Fprintf(w, "  Output: %s\n", dest)
	fmt.Fprintf(w, "  Format: %s\n", format)
	fmt.Fprintln(w, "\nStarting multi-agent workflow...")
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// emit writes the rendered résumé to path, creating parent directories, or
// prints it to w between separators when path is empty.
func emit(w io.Writer, path, rendered string, quiet bool) error {
	if path == "" {
		fmt.Fprintf(w, "\n%s\nREFORMATTED CV\n%s\n\n%s\n", separator, separator, rendered)
		return nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if !quiet {
		fmt.Fprintf(w, "\nReformatted CV saved to: %s\n", absPath(path))
	}
	return nil
}

// setupLogger returns a text logger on w: Warn and above when quiet, Debug
// and above with debug.
func setupLogger(w io.Writer, quiet, debug bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case debug:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
