// Package catalog holds the listing filter used by the home feed. Filter is a
// pure function: it never mutates its input and keeps no state between calls.
package catalog

import (
	"strings"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
)

type Query struct {
	SearchQuery   string   `json:"search_query"`
	Location      string   `json:"location"`
	MinPrice      string   `json:"min_price"`
	MaxPrice      string   `json:"max_price"`
	Subcategories []string `json:"subcategories"`
}

// Filter returns the listings that pass every active predicate of q, with
// promoted listings ahead of the rest. Relative input order is kept within
// both groups.
func Filter(listings []entity.Listing, q Query, categories CategoryMap) []entity.Listing {
	p := compile(q, categories)

	promoted := make([]entity.Listing, 0)
	regular := make([]entity.Listing, 0)
	for _, l := range listings {
		if !p.match(l) {
			continue
		}
		if l.IsPromoted {
			promoted = append(promoted, l.Clone())
		} else {
			regular = append(regular, l.Clone())
		}
	}
	return append(promoted, regular...)
}

// Matches reports whether a single listing passes q.
func Matches(l entity.Listing, q Query, categories CategoryMap) bool {
	return compile(q, categories).match(l)
}

type predicate struct {
	search   string
	location string
	min      float64
	hasMin   bool
	max      float64
	hasMax   bool
	parents  map[string]struct{}
}

func compile(q Query, categories CategoryMap) predicate {
	p := predicate{
		search:   strings.ToLower(q.SearchQuery),
		location: strings.ToLower(q.Location),
	}
	if q.MinPrice != "" {
		p.min, p.hasMin = parseBound(q.MinPrice)
	}
	if q.MaxPrice != "" {
		p.max, p.hasMax = parseBound(q.MaxPrice)
	}
	if len(q.Subcategories) > 0 {
		p.parents = categories.Parents(q.Subcategories)
	}
	return p
}

func parseBound(s string) (float64, bool) {
	return entity.ParsePrice(s)
}

func (p predicate) match(l entity.Listing) bool {
	if p.search != "" &&
		!strings.Contains(strings.ToLower(l.Title), p.search) &&
		!strings.Contains(strings.ToLower(l.Description), p.search) {
		return false
	}
	if p.location != "" && !strings.Contains(strings.ToLower(l.Location), p.location) {
		return false
	}
	if p.hasMin || p.hasMax {
		price, ok := l.NumericPrice()
		if !ok {
			return false
		}
		if p.hasMin && price < p.min {
			return false
		}
		if p.hasMax && price > p.max {
			return false
		}
	}
	if p.parents != nil {
		if _, ok := p.parents[l.Category]; !ok {
			return false
		}
	}
	return true
}
