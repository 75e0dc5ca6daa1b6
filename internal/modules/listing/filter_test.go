package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleSet() []*Listing {
	return []*Listing{
		{Name: "Fresh Bread", Organization: "Local Bakery", Description: "sourdough and croissants",
			Dietary: DietaryVegetarian, Freshness: FreshnessFresh, Status: StatusAvailable},
		{Name: "Organic Vegetables", Organization: "Green Market", Description: "carrots and kale",
			Dietary: DietaryVegan, Freshness: FreshnessFresh, Status: StatusAvailable},
		{Name: "Frozen Meals", Organization: "Restaurant Chain", Description: "pasta dishes",
			Dietary: DietaryMixed, Freshness: FreshnessFrozen, Status: StatusClaimed},
		{Name: "Canned Goods", Organization: "Community Center", Description: "beans and soup",
			Dietary: DietaryVegetarian, Freshness: FreshnessPreserved, Status: StatusAvailable},
	}
}

func names(listings []*Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Name
	}
	return out
}

func TestFilterNoCriteriaPreservesOrder(t *testing.T) {
	set := sampleSet()

	got := Filter(set, Filters{}, ScopeAdmin)
	assert.Equal(t, names(set), names(got), "empty admin filter should return everything in input order")

	got = Filter(set, Filters{Dietary: FilterAll, Freshness: FilterAll}, ScopeAdmin)
	assert.Equal(t, names(set), names(got), `"all" should behave like no filter`)
}

func TestFilterUserScopeHidesNonAvailable(t *testing.T) {
	got := Filter(sampleSet(), Filters{}, ScopeUser)
	assert.Equal(t, []string{"Fresh Bread", "Organic Vegetables", "Canned Goods"}, names(got))
}

func TestFilterConjunctive(t *testing.T) {
	set := sampleSet()

	got := Filter(set, Filters{Dietary: "vegetarian", Freshness: "fresh"}, ScopeAdmin)
	assert.Equal(t, []string{"Fresh Bread"}, names(got))

	got = Filter(set, Filters{Dietary: "vegan"}, ScopeUser)
	assert.Equal(t, []string{"Organic Vegetables"}, names(got))

	got = Filter(set, Filters{Dietary: "vegan", Freshness: "frozen"}, ScopeAdmin)
	assert.Empty(t, got)
}

func TestFilterSearchFieldsByScope(t *testing.T) {
	set := sampleSet()

	// Case-insensitive match on name and organization in both scopes.
	assert.Equal(t, []string{"Fresh Bread"}, names(Filter(set, Filters{Search: "bakery"}, ScopeAdmin)))
	assert.Equal(t, []string{"Organic Vegetables"}, names(Filter(set, Filters{Search: "ORGANIC"}, ScopeUser)))

	// Descriptions are only searched in the user view.
	assert.Empty(t, Filter(set, Filters{Search: "sourdough"}, ScopeAdmin))
	assert.Equal(t, []string{"Fresh Bread"}, names(Filter(set, Filters{Search: "sourdough"}, ScopeUser)))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	set := sampleSet()
	before := names(set)
	Filter(set, Filters{Dietary: "vegan"}, ScopeUser)
	assert.Equal(t, before, names(set))
}
