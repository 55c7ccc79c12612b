package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/preset"
	"github.com/verte-zerg/passgen/internal/report"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List generation presets",
		Args:  cobra.NoArgs,
		RunE:  runPresetsCmd,
	}
}

func runPresetsCmd(cmd *cobra.Command, _ []string) error {
	headers := []string{"Preset", "Mode", "Length", "Characters", "Ambiguous"}
	names := preset.Names()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		cfg, err := preset.Lookup(name)
		if err != nil {
			return err
		}
		var sets []string
		for _, cat := range model.Categories() {
			if cfg.Enabled(cat) {
				sets = append(sets, cat.String())
			}
		}
		ambiguous := "allowed"
		if cfg.ExcludeAmbiguous {
			ambiguous = "excluded"
		}
		rows = append(rows, []string{name, cfg.Mode.String(), strconv.Itoa(cfg.Length), strings.Join(sets, ","), ambiguous})
	}
	for _, line := range report.FormatTable(headers, rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newHistoryCmd(root *rootOptions) *cobra.Command {
	var (
		format   string
		clearAll bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently generated secrets (masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryCmd(cmd, root, format, clearAll)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, markdown, yaml)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete the stored history")
	return cmd
}

type historyWriter func(io.Writer, []model.HistoryEntry) error

func historyWriterFor(format string) (historyWriter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return report.WriteTable, nil
	case "markdown", "md":
		return report.WriteMarkdown, nil
	case "yaml", "yml":
		return report.WriteYAML, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected table, markdown or yaml)", format)
	}
}

func runHistoryCmd(cmd *cobra.Command, root *rootOptions, format string, clearAll bool) error {
	write, err := historyWriterFor(format)
	if err != nil {
		return err
	}
	s, err := root.load()
	if err != nil {
		return err
	}
	st, err := openHistory(s.file.History)
	if err != nil {
		return err
	}
	if st == nil {
		return write(cmd.OutOrStdout(), nil)
	}
	defer closeStore(st)

	if clearAll {
		if err := st.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return err
	}

	entries, err := st.ListEntries(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if err := write(cmd.OutOrStdout(), entries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
