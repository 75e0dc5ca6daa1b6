package listing

import "strings"

// Scope selects the visibility rule and search behaviour for a view.
type Scope int

const (
	// ScopeUser shows available listings only and searches name,
	// organization, and description.
	ScopeUser Scope = iota
	// ScopeAdmin shows every status and searches name and organization.
	ScopeAdmin
)

// FilterAll disables a dietary or freshness predicate.
const FilterAll = "all"

// Filters narrows a listing set. Empty or "all" values disable the
// corresponding predicate.
type Filters struct {
	Search    string
	Dietary   string
	Freshness string
}

// Filter applies all active predicates conjunctively and returns the
// matching listings in their input order. It is a pure function of its
// inputs and never mutates the candidates.
func Filter(candidates []*Listing, f Filters, scope Scope) []*Listing {
	matched := make([]*Listing, 0, len(candidates))
	for _, l := range candidates {
		if scope == ScopeUser && l.Status != StatusAvailable {
			continue
		}
		if !matchesSearch(l, f.Search, scope) {
			continue
		}
		if active(f.Dietary) && string(l.Dietary) != f.Dietary {
			continue
		}
		if active(f.Freshness) && string(l.Freshness) != f.Freshness {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

func active(value string) bool {
	return value != "" && value != FilterAll
}

func matchesSearch(l *Listing, term string, scope Scope) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(l.Name), term) ||
		strings.Contains(strings.ToLower(l.Organization), term) {
		return true
	}
	// The end-user view also searches descriptions.
	return scope == ScopeUser && strings.Contains(strings.ToLower(l.Description), term)
}
