// Package main provides the CLI entrypoint for passgen.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/config"
	"github.com/verte-zerg/passgen/internal/generator"
	applog "github.com/verte-zerg/passgen/internal/log"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/preset"
	"github.com/verte-zerg/passgen/internal/store"
	"github.com/verte-zerg/passgen/internal/strength"
	"github.com/verte-zerg/passgen/internal/tui"
	"github.com/verte-zerg/passgen/internal/wordlist"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	verbose    bool
}

// settings is the file config with PASSGEN_* overrides applied.
type settings struct {
	file    config.FileConfig
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Password and passphrase generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/passgen/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func (o *rootOptions) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultConfigPath()
}

func (o *rootOptions) load() (settings, error) {
	fileCfg, err := config.LoadConfig(o.path())
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return settings{}, err
	}
	return settings{
		file:    envCfg.Overlay(fileCfg),
		verbose: o.verbose || envCfg.Verbose,
	}, nil
}

func runTUI(_ *cobra.Command, opts *rootOptions) error {
	s, err := opts.load()
	if err != nil {
		return err
	}
	cfg, err := s.file.Generate.Resolve()
	if err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger(s.verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	gen, err := newGenerator(s.file.Generate, logger)
	if err != nil {
		return err
	}
	st, err := openHistory(s.file.History)
	if err != nil {
		return err
	}
	defer closeStore(st)

	var copier tui.Copier
	if !clipboard.Unsupported {
		copier = clipboard.WriteAll
	}

	m := tui.NewModel(cfg, activePreset(s.file.Generate, cfg), gen, st, copier, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// tuiLogger keeps log output off the alternate screen. Verbose sessions log
// to a file under the XDG state directory.
func tuiLogger(verbose bool) (*slog.Logger, func(), error) {
	if !verbose {
		return applog.New(io.Discard, false), func() {}, nil
	}
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	closeFn := func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}
	return applog.New(f, true), closeFn, nil
}

// activePreset returns the preset name when cfg is exactly that preset.
func activePreset(g config.GenerateConfig, cfg model.GenerationConfig) string {
	name := g.PresetName()
	p, err := preset.Lookup(name)
	if err != nil || p != cfg {
		return ""
	}
	return name
}

func newGenerator(g config.GenerateConfig, logger *slog.Logger) (*generator.Generator, error) {
	scorer, err := strength.New(g.ScorerName())
	if err != nil {
		return nil, err
	}
	opts := []generator.Option{
		generator.WithScorer(scorer),
		generator.WithLogger(logger),
	}
	if g.WordList != nil && *g.WordList != "" {
		path := resolveWordListPath(*g.WordList)
		words, err := wordlist.LoadPassphraseWords(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
		}
		logger.Debug("word list loaded", "path", path, "words", len(words))
		opts = append(opts, generator.WithWords(words))
	}
	return generator.New(opts...), nil
}

// resolveWordListPath treats a bare name as a file in the word list directory.
func resolveWordListPath(value string) string {
	if strings.ContainsRune(value, filepath.Separator) || filepath.Ext(value) != "" {
		return value
	}
	return filepath.Join(config.DefaultWordListDir(), value+".txt")
}

// openHistory returns a nil store when history is disabled.
func openHistory(h config.HistoryConfig) (*store.Store, error) {
	if !h.HistoryOn() {
		return nil, nil
	}
	st, err := store.Open(h.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if st == nil {
		return
	}
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
