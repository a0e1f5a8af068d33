package models

// AllKey is the reserved keyword holding the match-independent tally.
const AllKey = "_all"

// Table maps keyword -> dimension value (language or country code) -> count.
type Table map[string]map[string]int

// Increment adds one to table[key][dim], creating the inner map on demand.
func (t Table) Increment(key, dim string) {
	t.Add(key, dim, 1)
}

// Add adds n to table[key][dim].
func (t Table) Add(key, dim string, n int) {
	inner, ok := t[key]
	if !ok {
		inner = make(map[string]int)
		t[key] = inner
	}
	inner[dim] += n
}

// Sum returns the total over every dimension value of key, and whether key
// exists in the table at all.
func (t Table) Sum(key string) (int, bool) {
	inner, ok := t[key]
	if !ok {
		return 0, false
	}
	total := 0
	for _, n := range inner {
		total += n
	}
	return total, true
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for key, inner := range t {
		cp := make(map[string]int, len(inner))
		for dim, n := range inner {
			cp[dim] = n
		}
		out[key] = cp
	}
	return out
}

// Merge adds every count of src into t.
func (t Table) Merge(src Table) {
	for key, inner := range src {
		for dim, n := range inner {
			t.Add(key, dim, n)
		}
	}
}
