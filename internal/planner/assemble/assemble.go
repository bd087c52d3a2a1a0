// Package assemble composes filtered venues, selected vendors, injected
// partners and a budget into the final plan payload. It owns the
// presentation invariants: venue suppression, narrative scrubbing,
// suggested categories and the milestone timeline.
package assemble

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/strathwell/planner-engine/internal/planner/budget"
	"github.com/strathwell/planner-engine/internal/planner/model"
	"github.com/strathwell/planner-engine/internal/planner/partners"
)

// LargeEventGuestThreshold switches the first timeline milestone to the
// long-lead variant.
const LargeEventGuestThreshold = 200

var venueScrubs = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)I found \d+ venues?[^.]*\.`), ""},
	{regexp.MustCompile(`(?i)\d+ venues? and`), ""},
	{regexp.MustCompile(`(?i)venues? and \d+ vendors?`), "vendors"},
	{regexp.MustCompile(`(?i)\bvenues?\b`), ""},
}

var spaceRun = regexp.MustCompile(`\s{2,}`)

// ScrubVenueMentions strips venue-referencing phrases from pass-through
// narrative text so suppressed plans never talk about venues.
func ScrubVenueMentions(text string) string {
	for _, s := range venueScrubs {
		text = s.pattern.ReplaceAllString(text, s.replacement)
	}
	return strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
}

// SuggestedCategories returns the add-on categories surfaced next to the
// plan, keyed by event type.
func SuggestedCategories(eventType string) []string {
	switch eventType {
	case "wedding":
		return []string{"Decor", "Makeup & Styling", "Transportation", "Entertainment & Media"}
	case "corporate":
		return []string{"Event Management", "Security & Bouncers", "Transportation", "Printing"}
	default:
		return []string{"Decor", "Entertainment & Media", "Event Management"}
	}
}

// Timeline builds the five planning milestones. Events above the guest
// threshold get the long-lead first milestone.
func Timeline(guestCount int) []string {
	first := "Start planning 4-6 months before event"
	if guestCount > LargeEventGuestThreshold {
		first = "Start planning 8-12 months before event"
	}
	return []string{
		first,
		"Book venue 6-8 weeks before event",
		"Confirm vendors 4-6 weeks before event",
		"Final headcount 2 weeks before event",
		"Final walkthrough 1 week before event",
	}
}

// DisplayLocation renders a canonical location token for user-facing text.
func DisplayLocation(location string) string {
	if location == "" {
		return "your area"
	}
	words := strings.Fields(location)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Assemble builds the final plan. Venue suppression applies before
// anything else; partner injection runs here, and the budget is computed
// from the post-injection vendor list so the breakdown always reflects
// what the user actually sees. An empty plan (no venues, no vendors, zero
// budget) is a valid result, not an error.
func Assemble(intent *model.Intent, c model.SearchCriteria, venues []model.Venue, vendors []model.Vendor, rawQuery string) *model.Plan {
	if intent.SuppressVenues() {
		venues = nil
	}

	guestCount := c.GuestCount
	if guestCount == 0 && intent != nil {
		guestCount = intent.GuestCount
	}

	finalVendors := partners.Inject(intent, vendors)
	b := budget.Compute(venues, finalVendors, rawQuery)
	if b.UserBudget == nil && intent != nil && intent.UserBudget > 0 {
		b = budget.ComputeWithBudget(venues, finalVendors, intent.UserBudget)
	}

	eventType := c.EventType
	if eventType == "" && intent != nil {
		eventType = intent.EventType
	}
	displayType := eventType
	if displayType == "" {
		displayType = "event"
	}

	plan := &model.Plan{
		Message:             message(intent, c, len(venues), len(finalVendors), guestCount),
		EventType:           displayType,
		Location:            DisplayLocation(c.Location),
		EstimatedGuests:     guestCount,
		Venues:              venues,
		Vendors:             finalVendors,
		SuggestedCategories: SuggestedCategories(eventType),
		Budget:              b,
		Timeline:            Timeline(guestCount),
	}
	return plan
}

func message(intent *model.Intent, c model.SearchCriteria, venueCount, vendorCount, guestCount int) string {
	where := DisplayLocation(c.Location)
	guests := ""
	if guestCount > 0 {
		guests = fmt.Sprintf(" for %d guests", guestCount)
	}

	switch {
	case venueCount == 0 && vendorCount == 0:
		return fmt.Sprintf("I couldn't find matches in %s%s yet. Try adjusting the location or guest count.", where, guests)
	case intent.SuppressVenues():
		return fmt.Sprintf("I found %d vendors in %s%s!", vendorCount, where, guests)
	default:
		return fmt.Sprintf("I found %d venues and %d vendors in %s%s!", venueCount, vendorCount, where, guests)
	}
}
