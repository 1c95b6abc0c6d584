package store

import "strings"

const (
	listSep      = ","
	itemSep      = ","
	itemPriceSep = ": "
)

// JoinList flattens a multi-valued field (subjects, locations) into one
// column. Values are not escaped: a value containing a comma will come back
// from SplitList as two values.
func JoinList(values []string) string {
	return strings.Join(values, listSep)
}

// SplitList is the inverse of JoinList. An empty column is an empty list.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSep)
}

// InvoiceItem is one invoice line.
type InvoiceItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
}

// FormatItems renders items as "desc: price,desc: price". Like JoinList it
// does not escape, so a description must not contain any "," or ":".
func FormatItems(items []InvoiceItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Description+itemPriceSep+it.Price)
	}
	return strings.Join(parts, itemSep)
}

// ParseItems reverses FormatItems. A part without a price separator becomes
// an item with an empty price.
func ParseItems(s string) []InvoiceItem {
	if s == "" {
		return []InvoiceItem{}
	}
	parts := strings.Split(s, itemSep)
	items := make([]InvoiceItem, 0, len(parts))
	for _, p := range parts {
		desc, price, _ := strings.Cut(p, itemPriceSep)
		items = append(items, InvoiceItem{Description: desc, Price: price})
	}
	return items
}
