package engine

import (
	"fmt"
	"math"
	"strings"
)

// FormatRate3 renders a rate statistic in the customary three-decimal form
// with the leading zero stripped (".275"). A rate of exactly one is the lone
// exception and renders in full as "1.000".
func FormatRate3(v float64) string {
	if v == 1 {
		return "1.000"
	}
	s := fmt.Sprintf("%.3f", v)
	return strings.TrimPrefix(s, "0")
}

// FormatFixed renders v with the given number of decimal places.
func FormatFixed(v float64, places int) string {
	return fmt.Sprintf("%.*f", places, v)
}

// FormatPercent renders v (a 0-1 ratio) as a whole-number percentage, "43%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// safeDiv performs division with zero check.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
