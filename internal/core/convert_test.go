package core

import (
	"testing"
)

// ----------------------------------------------------------------------------
// ParseQuantity Tests
// ----------------------------------------------------------------------------

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOK    bool
		wantValue string // string form of the expected quantity
	}{
		// Valid: plain numbers
		{
			name:      "positive integer",
			input:     "123",
			wantOK:    true,
			wantValue: "123",
		},
		{
			name:      "zero",
			input:     "0",
			wantOK:    true,
			wantValue: "0",
		},
		{
			name:      "decimal number",
			input:     "123.45",
			wantOK:    true,
			wantValue: "123.45",
		},
		{
			name:      "negative integer",
			input:     "-456",
			wantOK:    true,
			wantValue: "-456",
		},

		// Valid: noise tolerated
		{
			name:      "thousands separators",
			input:     "1,500",
			wantOK:    true,
			wantValue: "1500",
		},
		{
			name:      "currency symbol",
			input:     "$2,000",
			wantOK:    true,
			wantValue: "2000",
		},
		{
			name:      "surrounding whitespace",
			input:     "  42  ",
			wantOK:    true,
			wantValue: "42",
		},
		{
			name:      "unit suffix",
			input:     "120 units",
			wantOK:    true,
			wantValue: "120",
		},
		{
			name:      "text prefix",
			input:     "approx 75",
			wantOK:    true,
			wantValue: "75",
		},
		{
			name:      "accounting negative",
			input:     "(30)",
			wantOK:    true,
			wantValue: "-30",
		},
		{
			name:      "excel formula prefix",
			input:     `="250"`,
			wantOK:    true,
			wantValue: "250",
		},
		{
			name:      "scientific notation",
			input:     "1.5e2",
			wantOK:    true,
			wantValue: "150",
		},

		// Invalid: no number to extract
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			input:  "   ",
			wantOK: false,
		},
		{
			name:   "letters only",
			input:  "abc",
			wantOK: false,
		},
		{
			name:   "not applicable marker",
			input:  "n/a",
			wantOK: false,
		},
		{
			name:   "dash placeholder",
			input:  "-",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseQuantity(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if got.String() != tt.wantValue {
				t.Errorf("ParseQuantity(%q) = %s, want %s", tt.input, got.String(), tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// NormalizeHeader Tests
// ----------------------------------------------------------------------------

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Available Stock", want: "available stock"},
		{name: "trims", input: "  SKU  ", want: "sku"},
		{name: "collapses interior whitespace", input: "Restock\t\tLevel", want: "restock level"},
		{name: "mixed case and spacing", input: " On   HAND ", want: "on hand"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeHeader(tt.input); got != tt.want {
				t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeHeaderIndex_FirstOccurrenceWins(t *testing.T) {
	idx := MakeHeaderIndex([]string{"SKU", "Stock", "stock", "Supplier"})

	if got := idx["stock"]; got != 1 {
		t.Errorf("idx[stock] = %d, want 1 (first occurrence)", got)
	}
	if got := idx["sku"]; got != 0 {
		t.Errorf("idx[sku] = %d, want 0", got)
	}
	if got := idx["supplier"]; got != 3 {
		t.Errorf("idx[supplier] = %d, want 3", got)
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "widget", want: "widget"},
		{name: "trims whitespace", input: "  widget  ", want: "widget"},
		{name: "excel formula", input: `="A-100"`, want: "A-100"},
		{name: "surrounding quotes", input: `"A-100"`, want: "A-100"},
		{name: "bare equals prefix", input: "=42", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
