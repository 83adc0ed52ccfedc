// Package core implements the column-mapping and classification engine for
// inventory stock monitoring. This package has no UI or I/O dependencies
// and can be driven by any fetch or display frontend.
package core

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clientportal/stockmonitor/internal/schema"
)

// RawTable is one fetched snapshot of the source sheet: a free-text header
// set plus the records under it. Records may be shorter than the header
// row; missing cells read as empty. A RawTable is never modified once read.
type RawTable struct {
	Headers []string
	Records [][]string
}

// HeaderIndex maps normalized header names to their column position.
// The first occurrence wins when a header repeats.
type HeaderIndex map[string]int

// ColumnBinding records which raw header satisfied one canonical field.
type ColumnBinding struct {
	Field  schema.Field
	Header string // header as it appeared in the source
	Index  int
}

// ColumnMapping is the result of resolving a raw header set against the
// alias specs: the bound columns plus the canonical fields left unmatched.
type ColumnMapping struct {
	Bindings map[schema.Field]ColumnBinding
	Unmapped []schema.Field
}

// CanonicalRow is one inventory record after mapping and normalization.
// Quantities are always non-negative; rows that fail that contract are
// excluded by MapTable rather than coerced.
type CanonicalRow struct {
	ProductName  string          `json:"productName"`
	SKU          string          `json:"sku"`
	Stock        decimal.Decimal `json:"stock"`
	RestockLevel decimal.Decimal `json:"restockLevel"`
}

// Status is the three-valued stock-health classification.
type Status string

const (
	StatusCritical Status = "CRITICAL"
	StatusLowStock Status = "LOW_STOCK"
	StatusInStock  Status = "IN_STOCK"
)

// ClassifiedRow is a canonical row with its computed status. Rows are
// created once per refresh cycle and never mutated afterwards.
type ClassifiedRow struct {
	CanonicalRow
	Status Status `json:"status"`
}

// Aggregates holds the dashboard metrics recomputed from the full row set
// on every refresh.
//
// LowStock counts every row whose status is LOW_STOCK or CRITICAL: the
// metric reads as "items needing attention", and a critically depleted
// item must not drop out of it just because its restock level sits below
// the critical threshold. Critical is reported separately for callers
// that need the distinction.
type Aggregates struct {
	TotalProducts int             `json:"totalProducts"`
	LowStock      int             `json:"lowStock"`
	Critical      int             `json:"critical"`
	TotalUnits    decimal.Decimal `json:"totalUnits"`
}

// MapResult is the output of MapTable: the canonical rows that survived
// normalization, the count of rows excluded by parse failures, and any
// informational fields that could not be bound to a header.
type MapResult struct {
	Rows        []CanonicalRow
	SkippedRows int
	Unmapped    []schema.Field
}

// Batch is one full refresh cycle's output. Batches are immutable: each
// refresh produces a new Batch and the previous one is discarded
// wholesale, never patched in place.
type Batch struct {
	ID          string          `json:"id"`
	FetchedAt   time.Time       `json:"fetchedAt"`
	Rows        []ClassifiedRow `json:"rows"`
	Aggregates  Aggregates      `json:"aggregates"`
	SkippedRows int             `json:"skippedRows"`
	Unmapped    []schema.Field  `json:"unmapped,omitempty"`
}
