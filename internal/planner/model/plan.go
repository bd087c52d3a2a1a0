package model

import "encoding/json"

// CategoryEstimate is one line of the vendor budget breakdown. Vendor names
// the shortlisted provider whose price was used, empty when the line came
// from a multiplier estimate with no concrete match.
type CategoryEstimate struct {
	Cost      float64 `json:"cost"`
	Vendor    string  `json:"vendor,omitempty"`
	Reasoning string  `json:"reasoning,omitempty"`
}

// BudgetBreakdown totals the plan. Invariants maintained by the budget
// calculator: Total = Venue + Vendors, Remaining = max(0, UserBudget-Total),
// OverBudget only when a user budget was given and Total exceeds it.
type BudgetBreakdown struct {
	Venue           float64                     `json:"venue"`
	Vendors         float64                     `json:"vendors"`
	VendorBreakdown map[string]CategoryEstimate `json:"vendor_breakdown"`
	Total           float64                     `json:"total"`
	UserBudget      *float64                    `json:"user_budget"`
	Remaining       float64                     `json:"remaining"`
	OverBudget      bool                        `json:"over_budget"`
}

// Plan is the assembled response payload for one planning request.
type Plan struct {
	Message             string          `json:"message"`
	EventType           string          `json:"event_type,omitempty"`
	Location            string          `json:"location,omitempty"`
	EstimatedGuests     int             `json:"estimated_guests,omitempty"`
	Venues              []Venue         `json:"venues"`
	Vendors             []Vendor        `json:"vendors"`
	SuggestedCategories []string        `json:"suggested_categories,omitempty"`
	Budget              BudgetBreakdown `json:"budget"`
	Timeline            []string        `json:"timeline,omitempty"`

	// CreativeConcepts is produced upstream and carried through untouched.
	CreativeConcepts json.RawMessage `json:"creative_concepts,omitempty"`
}

// HasRecommendations reports whether the plan carries anything beyond the
// message, which decides whether the fallback suggestion path runs.
func (p *Plan) HasRecommendations() bool {
	if p == nil {
		return false
	}
	return len(p.Venues) > 0 || len(p.Vendors) > 0
}
