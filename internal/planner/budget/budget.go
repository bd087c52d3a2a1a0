// Package budget computes plan budgets in two modes: a simple mode that
// totals already-priced shortlist entries, and a dynamic mode that
// synthesizes estimates from intent alone via a compounded multiplier
// stack. Both are pure functions; every constant they use is exported so
// the arithmetic is independently checkable.
package budget

import (
	"fmt"

	"github.com/strathwell/planner-engine/internal/planner/catalog"
	"github.com/strathwell/planner-engine/internal/planner/model"
	"github.com/strathwell/planner-engine/internal/planner/query"
)

// DefaultVendorPrice prices a vendor entry that carries no price of its own.
const DefaultVendorPrice = 800

// Compute totals a priced shortlist. The venue line is the first venue's
// resolved price; the vendor line keeps only the first vendor seen per
// category, a deliberate reproduction of long-standing behavior that
// downstream consumers rely on (see DESIGN.md). The user budget is parsed
// from the raw query text.
func Compute(venues []model.Venue, vendors []model.Vendor, rawQuery string) model.BudgetBreakdown {
	var userBudget *float64
	if hint := query.ParseBudget(rawQuery); hint > 0 {
		f := float64(hint)
		userBudget = &f
	}
	return compute(venues, vendors, userBudget)
}

// ComputeWithBudget is Compute with an already-resolved user budget, used
// when the intent extractor supplied one directly.
func ComputeWithBudget(venues []model.Venue, vendors []model.Vendor, userBudget float64) model.BudgetBreakdown {
	var ub *float64
	if userBudget > 0 {
		ub = &userBudget
	}
	return compute(venues, vendors, ub)
}

func compute(venues []model.Venue, vendors []model.Vendor, userBudget *float64) model.BudgetBreakdown {
	var venueCost float64
	if len(venues) > 0 {
		venueCost = catalog.VenuePrice(venues[0])
	}

	breakdown := make(map[string]model.CategoryEstimate, len(vendors))
	var vendorTotal float64
	for _, v := range vendors {
		if _, seen := breakdown[v.Category]; seen {
			continue
		}
		cost := v.Price
		if cost == 0 {
			cost = DefaultVendorPrice
		}
		reasoning := v.WhyMatched
		if reasoning == "" {
			reasoning = v.Service
		}
		if reasoning == "" {
			reasoning = "Professional service provider"
		}
		breakdown[v.Category] = model.CategoryEstimate{Cost: cost, Vendor: v.Name, Reasoning: reasoning}
		vendorTotal += cost
	}

	total := venueCost + vendorTotal

	b := model.BudgetBreakdown{
		Venue:           venueCost,
		Vendors:         vendorTotal,
		VendorBreakdown: breakdown,
		Total:           total,
		UserBudget:      userBudget,
	}
	if userBudget != nil {
		if remaining := *userBudget - total; remaining > 0 {
			b.Remaining = remaining
		}
		b.OverBudget = total > *userBudget
	}
	return b
}

// Guest-count tiers for dynamic estimation. Base costs are the midpoints of
// the documented ranges so the formula stays deterministic.
type GuestTier struct {
	MaxGuests    int
	VenueBase    float64
	PerGuestBase float64
}

var GuestTiers = []GuestTier{
	{MaxGuests: 49, VenueBase: 500, PerGuestBase: 60},
	{MaxGuests: 150, VenueBase: 1400, PerGuestBase: 90},
	{MaxGuests: 1 << 30, VenueBase: 3500, PerGuestBase: 130},
}

// LocationMultipliers scale for metro pricing. Unlisted locations are 1.0.
var LocationMultipliers = map[string]float64{
	"san francisco": 1.6,
	"new york":      1.6,
	"los angeles":   1.4,
	"seattle":       1.4,
	"boston":        1.4,
	"chicago":       1.2,
	"austin":        1.2,
	"denver":        1.2,
}

// EventTypeMultipliers scale for event complexity. Unlisted types are 1.0.
var EventTypeMultipliers = map[string]float64{
	"wedding":    1.5,
	"corporate":  1.3,
	"launch":     1.3,
	"conference": 1.1,
	"networking": 1.1,
}

// ToneMultipliers scale for budget tier. Unset tone is 1.0.
var ToneMultipliers = map[model.Tone]float64{
	model.ToneBudgetFriendly: 0.6,
	model.ToneStandard:       1.0,
	model.TonePremium:        1.6,
	model.ToneLuxury:         2.8,
}

// UrgencyMultipliers scale for lead time. Unset urgency is 1.0.
var UrgencyMultipliers = map[model.Urgency]float64{
	model.UrgencyLastMinute:  1.4,
	model.UrgencyShortNotice: 1.2,
	model.UrgencyAdvance:     0.95,
	model.UrgencyFlexible:    1.0,
}

// CategoryBase is a vendor category's estimation base: either per guest or
// flat, never both.
type CategoryBase struct {
	Category string
	PerGuest float64
	Flat     float64
}

// CategoryBases are the midpoints of the documented per-category ranges, in
// breakdown presentation order.
var CategoryBases = []CategoryBase{
	{Category: "Catering", PerGuest: 37.5},
	{Category: "Photography & Videography", Flat: 1250},
	{Category: "Videography", Flat: 1650},
	{Category: "Florist & Fresh Flowers", Flat: 800},
	{Category: "Event Technology (AV/Stage)", Flat: 1200},
	{Category: "Audio & DJ Services", Flat: 700},
	{Category: "Entertainment & Media", Flat: 950},
	{Category: "Decor", Flat: 900},
	{Category: "Beauty & Glam", Flat: 275},
	{Category: "Marketing & Web Hosting", Flat: 300},
	{Category: "Transportation", Flat: 550},
	{Category: "Event Insurance", Flat: 375},
}

func multiplier(m map[string]float64, key string) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return 1.0
}

// Multiplier resolves the full stack for an intent. Nil intents and unset
// fields contribute neutral 1.0 factors.
func Multiplier(intent *model.Intent) float64 {
	if intent == nil {
		return 1.0
	}
	mult := multiplier(LocationMultipliers, intent.Location) *
		multiplier(EventTypeMultipliers, intent.EventType)
	if m, ok := ToneMultipliers[intent.EventTone]; ok {
		mult *= m
	}
	if m, ok := UrgencyMultipliers[intent.Urgency]; ok {
		mult *= m
	}
	return mult
}

func tierFor(guests int) GuestTier {
	for _, t := range GuestTiers {
		if guests <= t.MaxGuests {
			return t
		}
	}
	return GuestTiers[len(GuestTiers)-1]
}

// ComputeDynamic synthesizes a budget from intent alone, for requests where
// no catalog match exists. Categories are limited to the essentials for the
// event type plus any category already suggested by special needs through
// the partner table. A zero-guest intent yields a zero venue line and only
// flat category costs; so does an intent that suppresses venues, since a
// plan that shows no venues must not charge for one. Total 0 is a valid
// outcome, not an error.
func ComputeDynamic(intent *model.Intent, categories []string) model.BudgetBreakdown {
	var guests int
	var userBudget *float64
	if intent != nil {
		guests = intent.GuestCount
		if intent.UserBudget > 0 {
			ub := intent.UserBudget
			userBudget = &ub
		}
	}

	mult := Multiplier(intent)

	var venueCost float64
	if guests > 0 && !intent.SuppressVenues() {
		tier := tierFor(guests)
		venueCost = round2((tier.VenueBase + tier.PerGuestBase*float64(guests)) * mult)
	}

	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	breakdown := make(map[string]model.CategoryEstimate, len(wanted))
	var vendorTotal float64
	for _, base := range CategoryBases {
		if len(wanted) > 0 && !wanted[base.Category] {
			continue
		}
		var cost float64
		switch {
		case base.PerGuest > 0 && guests > 0:
			cost = round2(base.PerGuest * float64(guests) * mult)
		case base.Flat > 0:
			cost = round2(base.Flat * mult)
		}
		if cost == 0 {
			continue
		}
		breakdown[base.Category] = model.CategoryEstimate{
			Cost:      cost,
			Reasoning: fmt.Sprintf("Estimated from typical %s pricing at a %.2fx market adjustment", base.Category, mult),
		}
		vendorTotal += cost
	}

	total := venueCost + vendorTotal
	b := model.BudgetBreakdown{
		Venue:           venueCost,
		Vendors:         vendorTotal,
		VendorBreakdown: breakdown,
		Total:           total,
		UserBudget:      userBudget,
	}
	if userBudget != nil {
		if remaining := *userBudget - total; remaining > 0 {
			b.Remaining = remaining
		}
		b.OverBudget = total > *userBudget
	}
	return b
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
