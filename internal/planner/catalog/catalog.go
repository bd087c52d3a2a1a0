// Package catalog filters venue and service snapshots against structured
// search criteria. Matching is tolerant by design: unknown criteria pass,
// malformed records fall back to sentinel defaults, and no match is never
// an error.
package catalog

import (
	"sort"
	"strings"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

const (
	// DefaultVenueRate prices an unpriced venue and doubles as the sort
	// sentinel so unpriced listings rank last.
	DefaultVenueRate = 5000
	// DefaultServiceRate prices an unpriced service listing.
	DefaultServiceRate = 3000
)

// cityStates resolves canonical cities to their state for "all of <state>"
// coverage regions.
var cityStates = map[string]string{
	"san francisco": "california",
	"new york":      "new york",
	"boston":        "massachusetts",
	"los angeles":   "california",
	"chicago":       "illinois",
	"miami":         "florida",
	"seattle":       "washington",
	"austin":        "texas",
	"denver":        "colorado",
}

// bidi reports a bidirectional substring match between a catalog field and
// the query location, tolerating partial names on either side.
func bidi(field, location string) bool {
	if field == "" || location == "" {
		return false
	}
	field = strings.ToLower(field)
	return strings.Contains(field, location) || strings.Contains(location, field)
}

func venueMatchesLocation(v model.Venue, location string) bool {
	return bidi(v.City, location) || bidi(v.State, location)
}

func serviceMatchesLocation(s model.Service, location string) bool {
	if bidi(s.City, location) || bidi(s.State, location) {
		return true
	}
	state := cityStates[location]
	for _, region := range s.CoverageRegions {
		r := strings.ToLower(region)
		if strings.Contains(r, location) || strings.Contains(location, r) {
			return true
		}
		if state != "" && strings.HasPrefix(r, "all of") && strings.Contains(r, state) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FilterVenues applies location, capacity and event-type predicates and
// returns up to limit venues, featured first, then cheapest first. Unknown
// criteria pass every candidate; an empty result is a valid outcome.
func FilterVenues(venues []model.Venue, c model.SearchCriteria, limit int) []model.Venue {
	out := make([]model.Venue, 0, len(venues))
	for _, v := range venues {
		if c.HasLocation() && !venueMatchesLocation(v, c.Location) {
			continue
		}
		if c.HasGuestCount() && !(v.CapacityMin <= c.GuestCount && c.GuestCount <= v.CapacityMax) {
			continue
		}
		if c.EventType != "" && !hasTag(v.Tags, c.EventType) {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return effectiveRate(out[i].RateCard, DefaultVenueRate) < effectiveRate(out[j].RateCard, DefaultVenueRate)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilterServices applies location and event-type predicates. Category
// selection and capping happen later in SelectVendors.
func FilterServices(services []model.Service, c model.SearchCriteria) []model.Service {
	out := make([]model.Service, 0, len(services))
	for _, s := range services {
		if c.HasLocation() && !serviceMatchesLocation(s, c.Location) {
			continue
		}
		if c.EventType != "" && !hasTag(s.EventTypes, c.EventType) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// EssentialCategories names the service categories every plan of the given
// event type should cover.
func EssentialCategories(eventType string) []string {
	switch eventType {
	case "wedding":
		return []string{"Catering", "Photography & Videography", "Florist & Fresh Flowers"}
	case "corporate":
		return []string{"Catering", "Event Technology (AV/Stage)", "Audio & DJ Services"}
	default:
		return []string{"Catering", "Entertainment & Media", "Photography & Videography"}
	}
}

// SelectVendors picks up to perCategory services for each essential
// category, featured first, and resolves each into a priced vendor entry.
func SelectVendors(services []model.Service, eventType string, perCategory int) []model.Vendor {
	if perCategory <= 0 {
		perCategory = 2
	}

	vendors := make([]model.Vendor, 0, len(EssentialCategories(eventType))*perCategory)
	for _, category := range EssentialCategories(eventType) {
		matches := make([]model.Service, 0, perCategory)
		for _, s := range services {
			if s.Category == category {
				matches = append(matches, s)
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Featured && !matches[j].Featured
		})
		if len(matches) > perCategory {
			matches = matches[:perCategory]
		}
		for _, s := range matches {
			vendors = append(vendors, Vendor(s))
		}
	}
	return vendors
}

// Vendor resolves a catalog service into a plan vendor entry with a
// concrete price and default rating.
func Vendor(s model.Service) model.Vendor {
	desc := s.Description
	if desc == "" {
		desc = "Professional " + s.Category + " services"
	}
	rating := s.Rating
	if rating == 0 {
		rating = 4.6
	}
	return model.Vendor{
		Category: s.Category,
		Name:     s.Name,
		Service:  desc,
		Price:    effectiveRate(s.RateCard, DefaultServiceRate),
		Rating:   rating,
		Status:   model.VendorStatusNotContacted,
	}
}

// VenuePrice resolves the price of a shortlisted venue, falling back to the
// sentinel when the listing is unpriced.
func VenuePrice(v model.Venue) float64 {
	return effectiveRate(v.RateCard, DefaultVenueRate)
}

// ServicePrice resolves the price of a catalog service, falling back to the
// sentinel when the listing is unpriced.
func ServicePrice(s model.Service) float64 {
	return effectiveRate(s.RateCard, DefaultServiceRate)
}

func effectiveRate(rc model.RateCard, fallback float64) float64 {
	if rc.BaseRate > 0 {
		return rc.BaseRate
	}
	return fallback
}
