package core

// convert.go handles the messy reality of spreadsheet-exported values:
//   - Currency symbols and thousands separators in quantities
//   - Accounting format (parentheses for negative)
//   - Unit suffixes and other surrounding text ("120 units")
//   - Excel formula prefixes (="value") and stray quotes
//
// Parsing is explicit: a cell either yields a quantity or it does not.
// Nothing is silently defaulted to zero.

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericRegex validates that a cleaned string is a plain number.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// embeddedNumberRegex extracts the first number inside a noisy cell such
// as "120 units" or "approx 1500".
var embeddedNumberRegex = regexp.MustCompile(`[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// CleanCell removes common spreadsheet-export artifacts from a cell value:
// surrounding whitespace, the Excel formula prefix (="..."), and stray
// surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// NormalizeHeader lowercases a header and collapses interior whitespace
// runs, so "  Available   Stock " matches the alias "available stock".
func NormalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(CleanCell(s))), " ")
}

// MakeHeaderIndex creates a HeaderIndex from a raw header row. Keys are
// normalized for case- and whitespace-insensitive matching; the first
// occurrence wins when a header repeats.
func MakeHeaderIndex(headers []string) HeaderIndex {
	idx := make(HeaderIndex, len(headers))
	for i, h := range headers {
		key := NormalizeHeader(h)
		if key == "" {
			continue
		}
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

// ParseQuantity converts a raw cell to a decimal quantity. It tolerates
// currency symbols, thousands separators, accounting-style parentheses,
// and surrounding text noise. Returns false when no number can be
// confidently extracted; callers decide whether that drops the row.
func ParseQuantity(s string) (decimal.Decimal, bool) {
	s = CleanCell(s)
	if s == "" {
		return decimal.Decimal{}, false
	}

	// Accounting format "(123)" means negative.
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if !numericRegex.MatchString(s) {
		// Fall back to the first embedded number for cells like "12 units".
		m := embeddedNumberRegex.FindString(s)
		if m == "" {
			return decimal.Decimal{}, false
		}
		s = m
	}

	if isNegative && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
