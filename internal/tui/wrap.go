package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
)

type styledRune struct {
	s       string
	width   int
	isBreak bool
}

func styleFor(r rune) lipgloss.Style {
	cat, ok := generator.CategoryOf(r)
	if !ok {
		return lowerStyle
	}
	switch cat {
	case model.CategoryUppercase:
		return upperStyle
	case model.CategoryDigits:
		return digitStyle
	case model.CategorySymbols:
		return symbolStyle
	default:
		return lowerStyle
	}
}

// buildStyledRunes colors each character by category. Passphrase separators
// are marked as break points for wrapping.
func buildStyledRunes(secret string, passphrase bool) []styledRune {
	out := make([]styledRune, 0, len(secret))
	for _, r := range secret {
		out = append(out, styledRune{
			s:       styleFor(r).Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isBreak: passphrase && string(r) == generator.PassphraseSeparator,
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes wraps after the last break point that fits, or hard wraps
// when a line has none.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastBreakIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastBreakIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastBreakIdx+1]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastBreakIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastBreakIdx = lastBreakIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastBreakIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isBreak {
			lastBreakIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastBreakIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isBreak {
			return i
		}
	}
	return -1
}
