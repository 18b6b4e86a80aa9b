package engine

import (
	"math"
	"strconv"
	"strings"
)

// Cell name aliases seen across source sheets. Normalization rewrites them so
// downstream code only ever deals with one spelling per statistic.
var cellAliases = map[string]string{
	"GIDP": "GDP",
	"BA":   "AVG",
	"ERR":  "E",
}

// LenientInt parses s as an integer, treating anything unparseable (missing,
// blank, stray text) as zero. This is the only place malformed cells are
// absorbed; derived-metric code never parses raw input.
func LenientInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Spreadsheets frequently store integers as "4.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// LenientFloat parses s as a float, treating anything unparseable as zero.
func LenientFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// DecodeInnings converts a thirds-encoded innings value (6.1 meaning six and
// one third, 6.2 meaning six and two thirds) to a real number usable in rate
// formulas. A tenths digit other than 1 or 2 contributes nothing.
func DecodeInnings(v float64) float64 {
	whole := math.Trunc(v)
	switch int(math.Round((v - whole) * 10)) {
	case 1:
		return whole + 1.0/3.0
	case 2:
		return whole + 2.0/3.0
	}
	return whole
}

// EncodeInnings renders a decimal innings total back in the thirds notation:
// a fractional part of one third renders as ".1", two thirds as ".2", and
// anything else as the plain rounded number.
func EncodeInnings(total float64) string {
	rounded := math.Round(total*100) / 100
	whole := math.Trunc(rounded)
	rem := math.Round((rounded - whole) * 100)
	switch rem {
	case 33:
		return strconv.FormatInt(int64(whole), 10) + ".1"
	case 67:
		return strconv.FormatInt(int64(whole), 10) + ".2"
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// NormalizeRows prepares raw appearance rows for accumulation: rows without a
// player identifier are dropped (placeholder roster lines, not appearances)
// and aliased cell names are rewritten to their canonical spelling.
func NormalizeRows(rows []AppearanceRow) []AppearanceRow {
	out := make([]AppearanceRow, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.PlayerID) == "" {
			continue
		}
		row.PlayerID = strings.TrimSpace(row.PlayerID)
		row.GameID = strings.TrimSpace(row.GameID)
		row.Team = strings.TrimSpace(row.Team)
		row.Position = strings.TrimSpace(row.Position)
		if needsAliasRewrite(row.Cells) {
			cells := make(map[string]string, len(row.Cells))
			for name, value := range row.Cells {
				if canonical, ok := cellAliases[name]; ok {
					name = canonical
				}
				cells[name] = value
			}
			row.Cells = cells
		}
		out = append(out, row)
	}
	return out
}

func needsAliasRewrite(cells map[string]string) bool {
	for name := range cells {
		if _, ok := cellAliases[name]; ok {
			return true
		}
	}
	return false
}
