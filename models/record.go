package models

// Record is one decoded tweet, reduced to the fields the tally needs.
// Country is empty when no country code could be resolved.
type Record struct {
	Text    string
	Lang    string
	Country string
}
