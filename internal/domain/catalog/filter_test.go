package catalog

import (
	"testing"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(listings []entity.Listing) []int64 {
	out := make([]int64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func sampleListings() []entity.Listing {
	return []entity.Listing{
		{ID: 1, Title: "Vintage Leather Jacket", Description: "Classic brown leather jacket", Price: "$120.00", Category: "Fashion", Location: "Los Angeles, CA", IsPromoted: true},
		{ID: 2, Title: "Acoustic Guitar", Description: "Full-sized dreadnought", Price: "$250.00", Category: "Hobbies", Location: "Los Angeles, CA", Status: entity.ListingSold},
		{ID: 3, Title: "Modern Bookshelf", Description: "Solid oak, 5 tiers", Price: "$75.00", Category: "Furniture", Location: "Chicago, IL"},
		{ID: 4, Title: "Camera Drone", Description: "4K camera drone", Price: "$450.00", Category: "Electronics", Location: "Houston, TX"},
		{ID: 5, Title: "Mountain Bike", Description: "29-inch wheels", Price: "$300.00", Category: "Bikes", Location: "Denver, CO", IsPromoted: true},
		{ID: 9, Title: "Gaming Laptop", Description: "RTX 3070, 1TB SSD", Price: "$1,200.00", Category: "Electronics", Location: "Seattle, WA"},
	}
}

func TestFilter_SearchQuery(t *testing.T) {
	listing := entity.Listing{ID: 1, Title: "Guitar", Price: "$250.00", Category: "Hobbies"}
	cats := NewCategoryMap(DefaultCategories)

	assert.Equal(t, []int64{1}, ids(Filter([]entity.Listing{listing}, Query{SearchQuery: "guitar"}, cats)))
	assert.Empty(t, Filter([]entity.Listing{listing}, Query{SearchQuery: "drum"}, cats))
}

func TestFilter_MatchesDescriptionCaseInsensitive(t *testing.T) {
	got := Filter(sampleListings(), Query{SearchQuery: "OAK"}, nil)
	assert.Equal(t, []int64{3}, ids(got))
}

func TestFilter_PromotedFirstStable(t *testing.T) {
	in := []entity.Listing{
		{ID: 'A', Price: "$1"},
		{ID: 'B', Price: "$1", IsPromoted: true},
		{ID: 'C', Price: "$1"},
		{ID: 'D', Price: "$1", IsPromoted: true},
	}
	got := Filter(in, Query{}, nil)
	assert.Equal(t, []int64{'B', 'D', 'A', 'C'}, ids(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleListings()
	before := ids(in)

	_ = Filter(in, Query{MinPrice: "100"}, nil)

	assert.Equal(t, before, ids(in))
}

func TestFilter_Idempotent(t *testing.T) {
	cats := NewCategoryMap(DefaultCategories)
	q := Query{Location: "a", MaxPrice: "500", Subcategories: []string{"Laptops", "Shoes"}}

	first := Filter(sampleListings(), q, cats)
	second := Filter(sampleListings(), q, cats)

	assert.Equal(t, first, second)
}

func TestFilter_Predicates(t *testing.T) {
	cats := NewCategoryMap(DefaultCategories)

	tests := []struct {
		name  string
		query Query
		want  []int64
	}{
		{name: "empty query passes everything", query: Query{}, want: []int64{1, 5, 2, 3, 4, 9}},
		{name: "location substring", query: Query{Location: "los angeles"}, want: []int64{1, 2}},
		{name: "min price", query: Query{MinPrice: "300"}, want: []int64{5, 4, 9}},
		{name: "max price", query: Query{MaxPrice: "120"}, want: []int64{1, 3}},
		{name: "price range", query: Query{MinPrice: "100", MaxPrice: "300"}, want: []int64{1, 5, 2}},
		{name: "thousands separator in listing price", query: Query{MinPrice: "1000"}, want: []int64{9}},
		{name: "non-numeric bound is ignored", query: Query{MinPrice: "cheap"}, want: []int64{1, 5, 2, 3, 4, 9}},
		{name: "subcategory resolves to parent", query: Query{Subcategories: []string{"Laptops"}}, want: []int64{4, 9}},
		{name: "several subcategories, one parent", query: Query{Subcategories: []string{"Laptops", "Cameras"}}, want: []int64{4, 9}},
		{name: "subcategories across parents", query: Query{Subcategories: []string{"Sofas", "Road Bikes"}}, want: []int64{5, 3}},
		{name: "unknown subcategory excludes all", query: Query{Subcategories: []string{"Spaceships"}}, want: []int64{}},
		{name: "AND of predicates", query: Query{SearchQuery: "camera", Location: "houston", MaxPrice: "500", Subcategories: []string{"TVs"}}, want: []int64{4}},
		{name: "one failing predicate excludes", query: Query{SearchQuery: "camera", Location: "seattle"}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleListings(), tt.query, cats)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_RelaxingFailingPredicateIncludesListing(t *testing.T) {
	cats := NewCategoryMap(DefaultCategories)
	drone := sampleListings()[3]

	full := Query{SearchQuery: "drone", Location: "houston", MinPrice: "500", Subcategories: []string{"Cameras"}}
	require.False(t, Matches(drone, full, cats))

	relaxed := full
	relaxed.MinPrice = ""
	assert.True(t, Matches(drone, relaxed, cats))
}

func TestFilter_UnparseableListingPrice(t *testing.T) {
	odd := entity.Listing{ID: 42, Title: "Free stuff", Price: "make an offer"}

	assert.True(t, Matches(odd, Query{}, nil), "no price bound active")
	assert.False(t, Matches(odd, Query{MinPrice: "0"}, nil))
	assert.False(t, Matches(odd, Query{MaxPrice: "1000"}, nil))
	assert.True(t, Matches(odd, Query{MaxPrice: "abc"}, nil), "unparseable bound imposes nothing")
}

func TestFilter_NonFinitePrices(t *testing.T) {
	nan := entity.Listing{ID: 43, Title: "Glitch", Price: "$NaN"}
	inf := entity.Listing{ID: 44, Title: "Priceless", Price: "Inf"}
	bike := entity.Listing{ID: 5, Title: "Mountain Bike", Price: "$300.00"}

	for _, q := range []Query{{MinPrice: "0"}, {MaxPrice: "1000"}, {MinPrice: "0", MaxPrice: "1e9"}} {
		assert.False(t, Matches(nan, q, nil), "%+v", q)
		assert.False(t, Matches(inf, q, nil), "%+v", q)
	}
	assert.True(t, Matches(bike, Query{MaxPrice: "NaN"}, nil), "non-finite bound imposes nothing")
	assert.True(t, Matches(bike, Query{MinPrice: "-Inf"}, nil))
}

func TestCategoryMap_Parents(t *testing.T) {
	cats := NewCategoryMap(DefaultCategories)

	parents := cats.Parents([]string{"Sedan", "SUV", "Nope", "Shoes"})

	assert.Len(t, parents, 2)
	assert.Contains(t, parents, "Cars")
	assert.Contains(t, parents, "Fashion")
	assert.Equal(t, []string{"Coupe", "SUV", "Sedan", "Truck"}, cats.Table()["Cars"])
}
