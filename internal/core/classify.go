package core

// classify.go computes the stock-health status for canonical rows and the
// aggregate dashboard metrics. Classification is pure and recomputed
// wholesale on every refresh cycle, never incrementally.

import (
	"github.com/shopspring/decimal"
)

// DefaultCriticalThreshold is the stock level at or below which an item is
// critical regardless of its restock level.
var DefaultCriticalThreshold = decimal.NewFromInt(10)

// classifyRow applies the status rules in order; first match wins.
// CRITICAL takes precedence when a row is both at the critical threshold
// and below its restock level. Stock equal to the restock level is
// IN_STOCK: only strictly lower stock counts as LOW_STOCK.
func classifyRow(row CanonicalRow, threshold decimal.Decimal) Status {
	switch {
	case row.Stock.Cmp(threshold) <= 0:
		return StatusCritical
	case row.Stock.Cmp(row.RestockLevel) < 0:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Classify assigns a status to every canonical row and computes the
// aggregate metrics over the full set. Inputs must be non-negative; a
// negative quantity means an upstream contract breach and returns an
// InvariantError with no partial result.
func Classify(rows []CanonicalRow, threshold decimal.Decimal) ([]ClassifiedRow, Aggregates, error) {
	classified := make([]ClassifiedRow, 0, len(rows))
	agg := Aggregates{TotalUnits: decimal.Zero}

	for _, row := range rows {
		if row.Stock.IsNegative() {
			return nil, Aggregates{}, &InvariantError{SKU: row.SKU, Detail: "negative stock"}
		}
		if row.RestockLevel.IsNegative() {
			return nil, Aggregates{}, &InvariantError{SKU: row.SKU, Detail: "negative restock level"}
		}

		status := classifyRow(row, threshold)
		classified = append(classified, ClassifiedRow{CanonicalRow: row, Status: status})

		agg.TotalUnits = agg.TotalUnits.Add(row.Stock)
		switch status {
		case StatusCritical:
			agg.Critical++
			agg.LowStock++
		case StatusLowStock:
			agg.LowStock++
		}
	}

	agg.TotalProducts = len(classified)
	return classified, agg, nil
}
