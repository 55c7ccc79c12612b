// Package tui provides the Bubble Tea generator interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/preset"
	"github.com/verte-zerg/passgen/internal/store"
)

const noCategoryNotice = "Select at least one character set"

// Copier writes text to the system clipboard.
type Copier func(text string) error

// Model implements the Bubble Tea generator UI.
type Model struct {
	cfg        model.GenerationConfig
	presetName string
	gen        *generator.Generator
	store      *store.Store
	copier     Copier
	logger     *slog.Logger

	result  *model.GenerationResult
	history []model.HistoryEntry
	status  string

	width  int
	height int

	keys     keyMap
	help     help.Model
	histView table.Model
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0")).Underline(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	secretBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	lowerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	upperStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB3FF"))
	digitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	symbolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D17FFF"))

	strengthStyles = map[model.StrengthLabel]lipgloss.Style{
		model.VeryWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		model.Weak:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C3A")),
		model.Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E8C547")),
		model.Strong:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7BC96F")),
		model.VeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("#2EA043")),
	}
)

type historyMsg struct {
	entries []model.HistoryEntry
	err     error
}

type copiedMsg struct {
	err error
}

// NewModel constructs a generator TUI model. st may be nil to keep history
// in memory only; copier may be nil to disable copying.
func NewModel(cfg model.GenerationConfig, presetName string, gen *generator.Generator, st *store.Store, copier Copier, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Model{
		cfg:        cfg,
		presetName: presetName,
		gen:        gen,
		store:      st,
		copier:     copier,
		logger:     logger,
		keys:       defaultKeyMap(),
		help:       help.New(),
		histView: table.New(
			table.WithColumns([]table.Column{
				{Title: "Secret", Width: 18},
				{Title: "Strength", Width: 12},
				{Title: "Entropy", Width: 9},
				{Title: "Time", Width: 6},
			}),
			table.WithHeight(store.HistoryLimit+1),
			table.WithFocused(false),
		),
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	st := m.store
	return func() tea.Msg {
		entries, err := st.ListEntries(context.Background())
		return historyMsg{entries: entries, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case historyMsg:
		if msg.err != nil {
			m.logger.Warn("history unavailable", "err", msg.err)
			return m, nil
		}
		m.setHistory(msg.entries)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", "err", msg.err)
			m.status = "Could not copy to clipboard"
		} else {
			m.status = "Copied to clipboard"
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Generate):
		return m.generate()
	case key.Matches(msg, m.keys.Copy):
		return m.copyCmd()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Presets):
		idx := int(msg.String()[0] - '1')
		names := preset.Names()
		if idx < 0 || idx >= len(names) {
			return nil
		}
		return m.applyPreset(names[idx])
	case key.Matches(msg, m.keys.Lower):
		m.cfg.Lowercase = !m.cfg.Lowercase
	case key.Matches(msg, m.keys.Upper):
		m.cfg.Uppercase = !m.cfg.Uppercase
	case key.Matches(msg, m.keys.Digits):
		m.cfg.Numbers = !m.cfg.Numbers
	case key.Matches(msg, m.keys.Symbols):
		m.cfg.Symbols = !m.cfg.Symbols
	case key.Matches(msg, m.keys.Ambiguous):
		m.cfg.ExcludeAmbiguous = !m.cfg.ExcludeAmbiguous
	case key.Matches(msg, m.keys.Mode):
		if m.cfg.Mode == model.ModePassphrase {
			m.cfg.Mode = model.ModeStandard
		} else {
			m.cfg.Mode = model.ModePassphrase
		}
	case key.Matches(msg, m.keys.Shorter):
		if m.cfg.Length <= model.MinLength {
			return nil
		}
		m.cfg.Length--
	case key.Matches(msg, m.keys.Longer):
		if m.cfg.Length >= model.MaxLength {
			return nil
		}
		m.cfg.Length++
	default:
		return nil
	}
	m.presetName = ""
	return m.optionsChanged()
}

func (m *Model) applyPreset(name string) tea.Cmd {
	cfg, err := preset.Lookup(name)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.cfg = cfg
	m.presetName = name
	return m.optionsChanged()
}

// optionsChanged regenerates when a secret is already on screen.
func (m *Model) optionsChanged() tea.Cmd {
	m.status = ""
	if m.result == nil || m.cfg.Validate() != nil {
		return nil
	}
	return m.generate()
}

func (m *Model) generate() tea.Cmd {
	if err := m.cfg.Validate(); err != nil {
		if errors.Is(err, model.ErrEmptyAlphabet) {
			m.status = noCategoryNotice
		} else {
			m.status = err.Error()
		}
		return nil
	}
	res, err := m.gen.Generate(m.cfg)
	if err != nil {
		m.logger.Error("generation failed", "err", err)
		m.status = "Could not generate a secret"
		return nil
	}
	m.result = &res
	m.status = ""

	entry := model.NewHistoryEntry(res)
	m.setHistory(append([]model.HistoryEntry{entry}, m.history...))
	if m.store == nil {
		return nil
	}
	st := m.store
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := st.AddEntry(ctx, entry); err != nil {
			return historyMsg{err: err}
		}
		entries, err := st.ListEntries(ctx)
		return historyMsg{entries: entries, err: err}
	}
}

func (m *Model) copyCmd() tea.Cmd {
	if m.result == nil {
		m.status = "Nothing to copy yet"
		return nil
	}
	if m.copier == nil {
		m.status = "Clipboard unavailable"
		return nil
	}
	secret := m.result.Secret
	copier := m.copier
	return func() tea.Msg {
		return copiedMsg{err: copier(secret)}
	}
}

func (m *Model) setHistory(entries []model.HistoryEntry) {
	if len(entries) > store.HistoryLimit {
		entries = entries[:store.HistoryLimit]
	}
	m.history = entries
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.Masked,
			e.Label.String(),
			fmt.Sprintf("%d bits", e.EntropyBits),
			e.GeneratedAt.Local().Format("15:04"),
		})
	}
	m.histView.SetRows(rows)
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render("passgen"),
		m.renderPresets(),
		m.renderOptions(),
		m.renderSecret(),
	}
	if s := m.renderStrength(); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, m.renderHistory())
	if m.status != "" {
		style := mutedStyle
		if m.status == noCategoryNotice {
			style = noticeStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	content := strings.Join(sections, "\n\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderPresets() string {
	names := preset.Names()
	parts := make([]string, 0, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%d %s", i+1, name)
		if name == m.presetName {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	custom := ""
	if m.presetName == "" {
		custom = "  " + activeStyle.Render("custom")
	}
	return "Presets  " + strings.Join(parts, "  ") + custom
}

func (m *Model) renderOptions() string {
	head := fmt.Sprintf("Length %d · ~%d bits · %s", m.cfg.Length, m.gen.Entropy(m.cfg), m.cfg.Mode)
	flags := []string{
		checkbox("lowercase", m.cfg.Lowercase),
		checkbox("uppercase", m.cfg.Uppercase),
		checkbox("digits", m.cfg.Numbers),
		checkbox("symbols", m.cfg.Symbols),
		checkbox("no ambiguous", m.cfg.ExcludeAmbiguous),
	}
	return head + "\n" + strings.Join(flags, "  ")
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return inactiveStyle.Render("[ ] " + label)
}

func (m *Model) renderSecret() string {
	if m.result == nil {
		return secretBox.Render(mutedStyle.Render("press enter to generate"))
	}
	width := 0
	if m.width > 0 {
		width = int(float64(m.width)*0.70) - 4
		if width < 8 {
			width = 8
		}
	}
	runes := buildStyledRunes(m.result.Secret, m.result.Config.Mode == model.ModePassphrase)
	return secretBox.Render(wrapStyledRunes(runes, width))
}

func (m *Model) renderStrength() string {
	if m.result == nil {
		return ""
	}
	st := m.result.Strength
	style, ok := strengthStyles[st.Label]
	if !ok {
		style = mutedStyle
	}
	filled := st.Score / 10
	bar := style.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", 10-filled))
	line := fmt.Sprintf("%s %s", bar, style.Render(fmt.Sprintf("%s (%d%%)", st.Label, st.Score)))
	if st.CrackTime != "" {
		line += mutedStyle.Render(" · cracked in " + st.CrackTime)
	}
	var extra []string
	if st.Warning != "" {
		extra = append(extra, noticeStyle.Render(st.Warning))
	}
	if len(st.Suggestions) > 0 {
		extra = append(extra, mutedStyle.Render(strings.Join(st.Suggestions, ". ")))
	}
	if len(extra) == 0 {
		return line
	}
	return line + "\n" + strings.Join(extra, "\n")
}

func (m *Model) renderHistory() string {
	if len(m.history) == 0 {
		return mutedStyle.Render("No secrets generated recently")
	}
	return m.histView.View()
}
