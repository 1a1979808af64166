package market

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of each word in s.
func Title(s string) string {
	// Casers carry state and must not be shared across goroutines.
	return cases.Title(language.English).String(s)
}

func SentimentLabel(s Sentiment) string {
	return Title(string(s))
}

// ImpactLabel renders e.g. "High Impact". An unset impact renders as medium.
func ImpactLabel(impact Impact) string {
	if impact == "" {
		impact = ImpactMedium
	}
	return Title(string(impact)) + " Impact"
}

func PriorityLabel(priority Priority) string {
	return Title(string(priority)) + " Priority"
}

type StrengthBand string

const (
	StrengthStrong   StrengthBand = "strong"
	StrengthModerate StrengthBand = "moderate"
	StrengthWeak     StrengthBand = "weak"
)

func BandForStrength(strength int) StrengthBand {
	switch {
	case strength >= 8:
		return StrengthStrong
	case strength >= 5:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}
