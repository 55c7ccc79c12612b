package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/passgen/internal/config"
	applog "github.com/verte-zerg/passgen/internal/log"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/preset"
	"github.com/verte-zerg/passgen/internal/strength"
)

var (
	stderrIsTerminal = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
	writeClipboard   = clipboard.WriteAll
)

type generateOptions struct {
	preset           string
	length           int
	lower            bool
	upper            bool
	numbers          bool
	symbols          bool
	excludeAmbiguous bool
	mode             string
	count            int
	copy             bool
	scorer           string
	wordList         string
	noHistory        bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Print generated secrets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", preset.Basic, "preset ("+strings.Join(preset.Names(), ", ")+")")
	f.IntVarP(&opts.length, "length", "l", 0, fmt.Sprintf("secret length (%d-%d)", model.MinLength, model.MaxLength))
	f.BoolVar(&opts.lower, "lower", true, "include lowercase letters")
	f.BoolVar(&opts.upper, "upper", true, "include uppercase letters")
	f.BoolVar(&opts.numbers, "numbers", true, "include digits")
	f.BoolVar(&opts.symbols, "symbols", false, "include symbols")
	f.BoolVar(&opts.excludeAmbiguous, "exclude-ambiguous", false, "drop look-alike characters (l, I, O, 0, 1)")
	f.StringVar(&opts.mode, "mode", model.ModeStandard.String(), "standard or passphrase")
	f.IntVarP(&opts.count, "count", "n", 1, "number of secrets")
	f.BoolVarP(&opts.copy, "copy", "c", false, "copy the output to the clipboard")
	f.StringVar(&opts.scorer, "scorer", strength.NameAuto, "strength scorer (auto, zxcvbn, heuristic)")
	f.StringVar(&opts.wordList, "wordlist", "", "passphrase word list name or path")
	f.BoolVar(&opts.noHistory, "no-history", false, "do not record masked secrets")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, o *generateOptions) error {
	if o.count < 1 {
		return fmt.Errorf("--count must be >= 1")
	}
	s, err := root.load()
	if err != nil {
		return err
	}
	logger := applog.New(cmd.ErrOrStderr(), s.verbose)

	applyGenerateFlags(cmd, &s.file.Generate, o)
	cfg, err := s.file.Generate.Resolve()
	if err != nil {
		return err
	}
	gen, err := newGenerator(s.file.Generate, logger)
	if err != nil {
		return err
	}

	results, err := gen.GenerateBatch(cmd.Context(), cfg, o.count)
	if err != nil {
		return fmt.Errorf("failed to generate: %w", err)
	}

	out := cmd.OutOrStdout()
	showStrength := stderrIsTerminal()
	secrets := make([]string, 0, len(results))
	for _, res := range results {
		secrets = append(secrets, res.Secret)
		if _, err := fmt.Fprintln(out, res.Secret); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if showStrength {
			if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", describeResult(res)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}

	if o.copy {
		if err := writeClipboard(strings.Join(secrets, "\n")); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		logger.Info("copied to clipboard", "count", len(secrets))
	}

	if o.noHistory {
		return nil
	}
	st, err := openHistory(s.file.History)
	if err != nil || st == nil {
		return err
	}
	defer closeStore(st)
	for _, res := range results {
		if _, err := st.AddEntry(cmd.Context(), model.NewHistoryEntry(res)); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
	}
	return nil
}

// applyGenerateFlags layers explicitly set flags over the merged config. An
// explicit --preset drops field overrides from the file and environment.
func applyGenerateFlags(cmd *cobra.Command, g *config.GenerateConfig, o *generateOptions) {
	if cmd.Flags().Changed("preset") {
		*g = config.GenerateConfig{Scorer: g.Scorer, WordList: g.WordList}
	}
	applyFlag(cmd, "preset", &g.Preset, o.preset)
	applyFlag(cmd, "length", &g.Length, o.length)
	applyFlag(cmd, "lower", &g.Lowercase, o.lower)
	applyFlag(cmd, "upper", &g.Uppercase, o.upper)
	applyFlag(cmd, "numbers", &g.Numbers, o.numbers)
	applyFlag(cmd, "symbols", &g.Symbols, o.symbols)
	applyFlag(cmd, "exclude-ambiguous", &g.ExcludeAmbiguous, o.excludeAmbiguous)
	applyFlag(cmd, "mode", &g.Mode, o.mode)
	applyFlag(cmd, "scorer", &g.Scorer, o.scorer)
	applyFlag(cmd, "wordlist", &g.WordList, o.wordList)
}

func applyFlag[T any](cmd *cobra.Command, name string, target **T, value T) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = &value
}

func describeResult(res model.GenerationResult) string {
	st := res.Strength
	line := fmt.Sprintf("%s (%d%%) · %d bits", st.Label, st.Score, res.EntropyBits)
	if st.CrackTime != "" {
		line += " · cracked in " + st.CrackTime
	}
	return line
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	var scorer string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score a secret read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, root, scorer)
		},
	}
	cmd.Flags().StringVar(&scorer, "scorer", strength.NameAuto, "strength scorer (auto, zxcvbn, heuristic)")
	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, scorerFlag string) error {
	s, err := root.load()
	if err != nil {
		return err
	}
	name := s.file.Generate.ScorerName()
	if cmd.Flags().Changed("scorer") {
		name = scorerFlag
	}
	scorer, err := strength.New(name)
	if err != nil {
		return err
	}
	secret, err := readSecret(cmd)
	if err != nil {
		return err
	}
	return writeStrength(cmd.OutOrStdout(), scorer.ScoreSecret(secret))
}

var errNoSecret = errors.New("no secret provided on stdin")

// readSecret prompts without echo on a terminal and reads one line otherwise.
func readSecret(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Secret: "); err != nil {
			return "", err
		}
		raw, err := term.ReadPassword(int(f.Fd()))
		if _, perr := fmt.Fprintln(cmd.ErrOrStderr()); perr != nil {
			_ = perr
		}
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		if len(raw) == 0 {
			return "", errNoSecret
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errNoSecret
	}
	return line, nil
}

func writeStrength(w io.Writer, st model.Strength) error {
	lines := []string{fmt.Sprintf("Strength:    %s (%d%%)", st.Label, st.Score)}
	if st.CrackTime != "" {
		lines = append(lines, "Crack time:  "+st.CrackTime)
	}
	if st.Warning != "" {
		lines = append(lines, "Warning:     "+st.Warning)
	}
	if len(st.Suggestions) > 0 {
		lines = append(lines, "Suggestions:")
		for _, s := range st.Suggestions {
			lines = append(lines, "  - "+s)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
