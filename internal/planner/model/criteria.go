package model

// SearchCriteria is the structured form of a free-text planning request,
// derived once per request by the query normalizer. Zero values mean
// "not specified": empty Location/EventType, zero GuestCount/BudgetHint.
type SearchCriteria struct {
	Location   string `json:"location,omitempty"`
	EventType  string `json:"event_type,omitempty"`
	GuestCount int    `json:"guest_count,omitempty"`
	BudgetHint int    `json:"budget_hint,omitempty"`
}

// HasLocation reports whether a location was detected.
func (c SearchCriteria) HasLocation() bool { return c.Location != "" }

// HasGuestCount reports whether a guest count was detected.
func (c SearchCriteria) HasGuestCount() bool { return c.GuestCount > 0 }
