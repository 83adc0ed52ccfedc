package core

// mapper.go resolves an arbitrary raw header set against the alias specs
// and normalizes the rows under it into canonical form.
//
// Mapping is deliberately explicit: every canonical field either binds to
// exactly one header (first alias match in priority order) or is reported
// unmapped. Required fields failing to bind abort the whole table; nothing
// is guessed. Row-level parse failures drop the row and are counted so
// callers can surface "N rows skipped" without failing the batch.

import (
	"fmt"

	"github.com/clientportal/stockmonitor/internal/schema"
)

// MapHeaders resolves a raw header set against the alias specs. For each
// field the aliases are scanned in declared priority order and the first
// header match is bound; fields with no matching header are reported in
// Unmapped. Pure function, no I/O.
func MapHeaders(headers []string, specs []schema.AliasSpec) ColumnMapping {
	idx := MakeHeaderIndex(headers)

	m := ColumnMapping{Bindings: make(map[schema.Field]ColumnBinding, len(specs))}
	for _, spec := range specs {
		bound := false
		for _, alias := range spec.Aliases {
			pos, ok := idx[alias]
			if !ok {
				continue
			}
			m.Bindings[spec.Field] = ColumnBinding{
				Field:  spec.Field,
				Header: headers[pos],
				Index:  pos,
			}
			bound = true
			break
		}
		if !bound {
			m.Unmapped = append(m.Unmapped, spec.Field)
		}
	}
	return m
}

// MapTable maps a raw table to canonical rows.
//
// An unmapped stock or restock_level field fails the whole table with a
// MappingError; unmapped product_name or sku degrade to placeholder values
// (row index as identifier) and are reported in MapResult.Unmapped. A row
// whose stock or restock value does not parse as a non-negative number is
// excluded and counted in MapResult.SkippedRows, never zero-filled.
func MapTable(table *RawTable, specs []schema.AliasSpec) (*MapResult, error) {
	mapping := MapHeaders(table.Headers, specs)

	for _, f := range mapping.Unmapped {
		if f.Required() {
			return nil, &MappingError{Kind: MissingRequiredField, Field: f}
		}
	}

	stockCol := mapping.Bindings[schema.FieldStock].Index
	restockCol := mapping.Bindings[schema.FieldRestockLevel].Index
	nameBind, hasName := mapping.Bindings[schema.FieldProductName]
	skuBind, hasSKU := mapping.Bindings[schema.FieldSKU]

	res := &MapResult{
		Rows:     make([]CanonicalRow, 0, len(table.Records)),
		Unmapped: mapping.Unmapped,
	}

	for i, rec := range table.Records {
		stock, ok := ParseQuantity(cellAt(rec, stockCol))
		if !ok || stock.IsNegative() {
			res.SkippedRows++
			continue
		}
		restock, ok := ParseQuantity(cellAt(rec, restockCol))
		if !ok || restock.IsNegative() {
			res.SkippedRows++
			continue
		}

		sku := ""
		if hasSKU {
			sku = CleanCell(cellAt(rec, skuBind.Index))
		}
		if sku == "" {
			sku = fmt.Sprintf("row-%d", i+1)
		}

		name := ""
		if hasName {
			name = CleanCell(cellAt(rec, nameBind.Index))
		}
		if name == "" {
			name = sku
		}

		res.Rows = append(res.Rows, CanonicalRow{
			ProductName:  name,
			SKU:          sku,
			Stock:        stock,
			RestockLevel: restock,
		})
	}

	return res, nil
}

// cellAt returns the cell at position i, or empty when the record is
// shorter than the header row.
func cellAt(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
