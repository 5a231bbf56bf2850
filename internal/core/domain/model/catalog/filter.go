package catalog

import "strings"

// Query is a multi-field product search. Blank fields are ignored; non-blank
// fields must all match (logical AND). Fields are whitespace-trimmed before
// comparison and matched as case-insensitive substrings.
type Query struct {
	Name     string
	Supplier string
}

// IsBlank reports whether the query has no effective criteria after trimming.
func (q Query) IsBlank() bool {
	return strings.TrimSpace(q.Name) == "" && strings.TrimSpace(q.Supplier) == ""
}

// Filter returns the products matching the query, preserving the relative order
// of the input. A blank query returns the full input.
//
// Filter is pure: it never mutates the input slice and has no side effects.
func Filter(products []Product, query Query) []Product {
	if query.IsBlank() {
		return products
	}

	name := strings.ToLower(strings.TrimSpace(query.Name))
	supplier := strings.ToLower(strings.TrimSpace(query.Supplier))

	matches := make([]Product, 0, len(products))
	for _, product := range products {
		if name != "" && !strings.Contains(strings.ToLower(product.Name()), name) {
			continue
		}
		if supplier != "" && !strings.Contains(strings.ToLower(product.Supplier()), supplier) {
			continue
		}
		matches = append(matches, product)
	}

	return matches
}
