package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clientportal/stockmonitor/internal/schema"
)

func row(name, sku string, stock, restock int64) CanonicalRow {
	return CanonicalRow{
		ProductName:  name,
		SKU:          sku,
		Stock:        decimal.NewFromInt(stock),
		RestockLevel: decimal.NewFromInt(restock),
	}
}

func TestClassify_StatusRules(t *testing.T) {
	tests := []struct {
		name    string
		stock   int64
		restock int64
		want    Status
	}{
		// Rule 1: at or below the critical threshold wins outright,
		// even when the restock level would say otherwise.
		{name: "critical beats in-stock framing", stock: 5, restock: 3, want: StatusCritical},
		{name: "critical at threshold boundary", stock: 10, restock: 50, want: StatusCritical},
		{name: "zero stock zero restock", stock: 0, restock: 0, want: StatusCritical},

		// Rule 2: strictly below restock level
		{name: "low stock", stock: 15, restock: 20, want: StatusLowStock},
		{name: "just above threshold just below restock", stock: 11, restock: 12, want: StatusLowStock},

		// Rule 3: everything else
		{name: "in stock", stock: 50, restock: 20, want: StatusInStock},
		{name: "stock equals restock level", stock: 20, restock: 20, want: StatusInStock},
		{name: "just above threshold no restock pressure", stock: 11, restock: 5, want: StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []CanonicalRow{row("Item", "X-1", tt.stock, tt.restock)}

			classified, _, err := Classify(rows, DefaultCriticalThreshold)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got := classified[0].Status; got != tt.want {
				t.Errorf("stock=%d restock=%d status = %s, want %s", tt.stock, tt.restock, got, tt.want)
			}
		})
	}
}

func TestClassify_Aggregates(t *testing.T) {
	rows := []CanonicalRow{
		row("A", "A-1", 5, 3),   // CRITICAL
		row("B", "B-1", 15, 20), // LOW_STOCK
		row("C", "C-1", 50, 20), // IN_STOCK
	}

	_, agg, err := Classify(rows, DefaultCriticalThreshold)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if agg.TotalProducts != 3 {
		t.Errorf("TotalProducts = %d, want 3", agg.TotalProducts)
	}
	if agg.Critical != 1 {
		t.Errorf("Critical = %d, want 1", agg.Critical)
	}
	// LowStock counts CRITICAL rows too: it is the "needs attention" metric.
	if agg.LowStock != 2 {
		t.Errorf("LowStock = %d, want 2", agg.LowStock)
	}
	if agg.TotalUnits.String() != "70" {
		t.Errorf("TotalUnits = %s, want 70", agg.TotalUnits)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	classified, agg, err := Classify(nil, DefaultCriticalThreshold)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if len(classified) != 0 {
		t.Errorf("got %d rows, want 0", len(classified))
	}
	if agg.TotalProducts != 0 || agg.TotalUnits.String() != "0" {
		t.Errorf("aggregates = %+v, want zeros", agg)
	}
}

func TestClassify_NegativeInputIsInvariantViolation(t *testing.T) {
	rows := []CanonicalRow{
		row("A", "A-1", 50, 20),
		{ProductName: "Bad", SKU: "BAD-1", Stock: decimal.NewFromInt(-1), RestockLevel: decimal.NewFromInt(5)},
	}

	classified, _, err := Classify(rows, DefaultCriticalThreshold)
	if classified != nil {
		t.Error("expected no partial result")
	}

	var invErr *InvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("error = %v, want *InvariantError", err)
	}
	if invErr.SKU != "BAD-1" {
		t.Errorf("InvariantError.SKU = %q, want BAD-1", invErr.SKU)
	}
}

func TestMapThenClassify_Idempotent(t *testing.T) {
	table := &RawTable{
		Headers: []string{"Product Name", "SKU", "Qty", "Threshold"},
		Records: [][]string{
			{"Widget", "W-1", "5", "3"},
			{"Gadget", "G-1", "15", "20"},
			{"Gizmo", "Z-1", "50", "20"},
			{"Broken", "B-1", "abc", "1"},
		},
	}

	run := func() []byte {
		res, err := MapTable(table, schema.InventoryAliasSpecs)
		if err != nil {
			t.Fatalf("MapTable() error = %v", err)
		}
		rows, agg, err := Classify(res.Rows, DefaultCriticalThreshold)
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		out, err := json.Marshal(struct {
			Rows       []ClassifiedRow
			Aggregates Aggregates
			Skipped    int
		}{rows, agg, res.SkippedRows})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return out
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Errorf("two runs over identical input differ:\n%s\n%s", first, second)
	}
}
