package model

// StrengthLabel is an ordered strength band.
type StrengthLabel int

// Strength bands, weakest first.
const (
	VeryWeak StrengthLabel = iota
	Weak
	Medium
	Strong
	VeryStrong
)

var labelNames = [...]string{"Very weak", "Weak", "Medium", "Strong", "Very strong"}

var labelKeys = [...]string{"very-weak", "weak", "medium", "strong", "very-strong"}

func (l StrengthLabel) String() string {
	if l < VeryWeak || l > VeryStrong {
		return labelNames[VeryWeak]
	}
	return labelNames[l]
}

// Key returns a stable identifier used for persistence.
func (l StrengthLabel) Key() string {
	if l < VeryWeak || l > VeryStrong {
		return labelKeys[VeryWeak]
	}
	return labelKeys[l]
}

// LabelForBand maps a 0-4 band to a label, clamping out-of-range values.
func LabelForBand(band int) StrengthLabel {
	if band <= 0 {
		return VeryWeak
	}
	if band >= int(VeryStrong) {
		return VeryStrong
	}
	return StrengthLabel(band)
}

// LabelForScore maps a 0-100 score to a label using 25-point bands.
func LabelForScore(score int) StrengthLabel {
	if score < 0 {
		return VeryWeak
	}
	return LabelForBand(score / 25)
}

// ParseLabelKey is the inverse of Key. Unknown keys map to VeryWeak.
func ParseLabelKey(key string) StrengthLabel {
	for i, k := range labelKeys {
		if k == key {
			return StrengthLabel(i)
		}
	}
	return VeryWeak
}
