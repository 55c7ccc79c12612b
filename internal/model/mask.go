package model

import "strings"

// MaskGlyph replaces hidden characters in masked secrets.
const MaskGlyph = "•"

// MaskSecret hides the middle of a secret for display in history.
func MaskSecret(secret string) string {
	runes := []rune(secret)
	n := len(runes)
	if n < 5 {
		return strings.Repeat(MaskGlyph, n)
	}
	if n <= 8 {
		return string(runes[:2]) + strings.Repeat(MaskGlyph, n-4) + string(runes[n-2:])
	}
	hidden := n - 6
	if hidden > 8 {
		hidden = 8
	}
	return string(runes[:3]) + strings.Repeat(MaskGlyph, hidden) + string(runes[n-3:])
}
