package catalog

import "sort"

// DefaultCategories is the static category -> subcategory table of the marketplace.
var DefaultCategories = map[string][]string{
	"Cars":        {"Sedan", "SUV", "Truck", "Coupe"},
	"Mobiles":     {"iPhone", "Android", "Tablets", "Accessories"},
	"Electronics": {"Laptops", "Cameras", "Headphones", "TVs"},
	"Furniture":   {"Sofas", "Beds", "Tables", "Chairs"},
	"Bikes":       {"Road Bikes", "Mountain Bikes", "Electric Bikes"},
	"Fashion":     {"Men's Clothing", "Women's Clothing", "Shoes", "Bags"},
}

// CategoryMap resolves a subcategory label to its single parent category.
type CategoryMap map[string]string

func NewCategoryMap(table map[string][]string) CategoryMap {
	m := make(CategoryMap)
	for parent, subs := range table {
		for _, sub := range subs {
			m[sub] = parent
		}
	}
	return m
}

// Parents maps each subcategory to its parent, dropping unknown labels.
// The result is never nil.
func (m CategoryMap) Parents(subcategories []string) map[string]struct{} {
	out := make(map[string]struct{}, len(subcategories))
	for _, sub := range subcategories {
		if parent, ok := m[sub]; ok && parent != "" {
			out[parent] = struct{}{}
		}
	}
	return out
}

// Table inverts the map back into sorted category -> subcategories form.
func (m CategoryMap) Table() map[string][]string {
	out := make(map[string][]string)
	for sub, parent := range m {
		out[parent] = append(out[parent], sub)
	}
	for parent := range out {
		sort.Strings(out[parent])
	}
	return out
}
