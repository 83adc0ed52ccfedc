// Package schema defines the canonical inventory fields and the raw header
// spellings accepted for each of them.
package schema

// Field identifies one of the canonical inventory attributes that every
// recognized raw header maps onto.
type Field string

const (
	FieldProductName  Field = "product_name"
	FieldSKU          Field = "sku"
	FieldStock        Field = "stock"
	FieldRestockLevel Field = "restock_level"
)

// Required reports whether a table mapping can proceed without this field.
// Stock and restock level drive classification and cannot be invented;
// product name and SKU are informational and fall back to placeholders.
func (f Field) Required() bool {
	return f == FieldStock || f == FieldRestockLevel
}

// AliasSpec lists the accepted header spellings for one canonical field,
// in priority order. Headers are compared after lowercasing and whitespace
// normalization, so aliases are declared lowercase. The first alias that
// matches a header wins, and each field binds at most one header.
type AliasSpec struct {
	Field   Field
	Aliases []string
}

// InventoryAliasSpecs defines the recognized header spellings for the
// retailer stock sheet.
var InventoryAliasSpecs = []AliasSpec{
	{Field: FieldStock, Aliases: []string{
		"available stock",
		"stock",
		"qty",
		"quantity",
		"inventory",
		"available",
		"on hand",
		"available stock(sync with shopify)",
	}},
	{Field: FieldRestockLevel, Aliases: []string{
		"restock level",
		"threshold",
		"min stock",
		"reorder point",
		"minimum",
	}},
	{Field: FieldProductName, Aliases: []string{
		"product name",
		"name",
		"title",
		"item name",
	}},
	{Field: FieldSKU, Aliases: []string{
		"sku",
		"id",
		"item no",
		"item number",
		"barcode",
	}},
}
