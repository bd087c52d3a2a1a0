package model

import "context"

// RateCard carries the advertised pricing for a catalog record. A zero
// BaseRate means the listing is unpriced; filtering and budgeting apply
// their own sentinels/defaults in that case.
type RateCard struct {
	BaseRate   float64 `json:"base_rate"`
	HourlyRate float64 `json:"hourly_rate"`
}

// Venue is a catalog record owned by the external catalog store. The engine
// never mutates or persists venues; they are immutable within a matching pass.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	CapacityMin int      `json:"capacity_min"`
	CapacityMax int      `json:"capacity_max"`
	RateCard    RateCard `json:"rate_card"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Rating      float64  `json:"rating"`
	Status      string   `json:"status"`
}

// Service is a vendor catalog record. CoverageRegions may contain phrases
// like "all of Massachusetts" in addition to plain city names.
type Service struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	CoverageRegions []string `json:"coverage_regions"`
	EventTypes      []string `json:"event_types"`
	RateCard        RateCard `json:"rate_card"`
	Featured        bool     `json:"featured"`
	Rating          float64  `json:"rating"`
	Status          string   `json:"status"`
}

// Vendor is a shortlisted service provider inside a Plan: either a catalog
// Service resolved to a concrete price, or an injected partner offer.
type Vendor struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Service    string  `json:"service"`
	Price      float64 `json:"price"`
	Rating     float64 `json:"rating"`
	Website    string  `json:"website,omitempty"`
	WhyMatched string  `json:"why_matched,omitempty"`
	IsPartner  bool    `json:"is_partner"`
	Status     string  `json:"status"`
}

// VendorStatusNotContacted is the initial outreach status for every
// shortlisted vendor and venue.
const VendorStatusNotContacted = "not_contacted"

// PartnerOffer is a curated third-party recommendation. The offer table is
// static configuration versioned with the code, never mutated at runtime.
type PartnerOffer struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Service  string  `json:"service"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Website  string  `json:"website"`
}

// Vendor converts the offer into a Plan vendor entry.
func (p PartnerOffer) Vendor(whyMatched string) Vendor {
	return Vendor{
		Category:   p.Category,
		Name:       p.Name,
		Service:    p.Service,
		Price:      p.Price,
		Rating:     p.Rating,
		Website:    p.Website,
		WhyMatched: whyMatched,
		IsPartner:  true,
		Status:     VendorStatusNotContacted,
	}
}

// CatalogRepository supplies venue and service snapshots already filtered to
// active listings. Implementations own persistence; the engine only reads.
type CatalogRepository interface {
	ActiveVenues(ctx context.Context) ([]Venue, error)
	ActiveServices(ctx context.Context) ([]Service, error)
}
