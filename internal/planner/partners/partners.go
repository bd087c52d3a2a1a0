// Package partners injects curated third-party offers into a vendor
// shortlist based on detected special needs. The offer table is static,
// ordered, and versioned with the code.
package partners

import (
	"strings"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

// entry pairs an offer with its trigger tags and the pitch used as the
// vendor's match explanation.
type entry struct {
	Triggers []string
	Offer    model.PartnerOffer
	Pitch    string
}

// table is evaluated in order; matching entries are injected ahead of
// catalog vendors in this exact order.
var table = []entry{
	{
		Triggers: []string{"makeup", "beauty", "hair", "glam"},
		Offer: model.PartnerOffer{
			Category: "Beauty & Glam",
			Name:     "Glamsquad",
			Service:  "On-demand professional makeup artists and hair stylists delivered to your venue, with group packages for wedding parties and VIP guests",
			Price:    250,
			Rating:   4.7,
			Website:  "https://www.glamsquad.com",
		},
		Pitch: "Professional styling on site so your group is camera-ready",
	},
	{
		Triggers: []string{"content-creation", "social-media", "tiktok", "instagram", "creator-tools", "creator", "content"},
		Offer: model.PartnerOffer{
			Category: "Social Media & Content",
			Name:     "TikTok for Business",
			Service:  "Viral content campaigns, influencer partnerships, live event streaming, and post-event highlight reels to maximize your event's reach and engagement",
			Price:    350,
			Rating:   4.9,
			Website:  "https://www.tiktok.com/business",
		},
		Pitch: "Perfect for creating viral pre-event buzz and capturing authentic event moments for social media",
	},
	{
		Triggers: []string{"marketing", "web", "website", "landing-page", "post-campaign"},
		Offer: model.PartnerOffer{
			Category: "Marketing & Web Hosting",
			Name:     "Bluehost",
			Service:  "Professional event landing pages, registration portals, post-event resource hubs, and email marketing campaigns to engage attendees before and after your event",
			Price:    175,
			Rating:   4.8,
			Website:  "https://www.bluehost.com",
		},
		Pitch: "Essential for building a professional online presence for your event with easy-to-use website tools",
	},
	{
		Triggers: []string{"analytics", "automation", "tech", "data"},
		Offer: model.PartnerOffer{
			Category: "Event Technology & Analytics",
			Name:     "Pippit AI",
			Service:  "Real-time event analytics, attendee behavior tracking, automated follow-ups, and AI-powered insights to optimize your event ROI",
			Price:    275,
			Rating:   4.7,
			Website:  "https://www.pippit.ai",
		},
		Pitch: "Track engagement and automate post-event workflows with AI-powered analytics",
	},
	{
		Triggers: []string{"check-in", "registration", "visitor"},
		Offer: model.PartnerOffer{
			Category: "Check-in & Visitor Management",
			Name:     "Envoy",
			Service:  "Touchless digital check-in, visitor management, badge printing, and real-time attendee tracking for seamless event entry",
			Price:    225,
			Rating:   4.8,
			Website:  "https://envoy.com",
		},
		Pitch: "Streamline attendee check-in with modern digital solutions",
	},
	{
		Triggers: []string{"parking", "valet", "transportation"},
		Offer: model.PartnerOffer{
			Category: "Parking & Transportation",
			Name:     "Laz Parking",
			Service:  "Professional valet services, parking management, shuttle coordination, and VIP transportation solutions",
			Price:    450,
			Rating:   4.6,
			Website:  "https://www.lazparking.com",
		},
		Pitch: "Ensure smooth transportation logistics for your guests",
	},
	{
		Triggers: []string{"insurance", "liability", "protection"},
		Offer: model.PartnerOffer{
			Category: "Event Insurance",
			Name:     "NEXT Insurance",
			Service:  "Comprehensive event liability coverage, vendor insurance, and protection against cancellations and accidents",
			Price:    325,
			Rating:   4.9,
			Website:  "https://www.nextinsurance.com",
		},
		Pitch: "Protect your event investment with comprehensive insurance coverage",
	},
	{
		Triggers: []string{"hotel", "accommodation", "lodging"},
		Offer: model.PartnerOffer{
			Category: "Travel & Accommodations",
			Name:     "IHG Hotels & Resorts",
			Service:  "Loyalty rewards program for group bookings, room blocks, and special event rates across premium hotel brands",
			Price:    500,
			Rating:   4.7,
			Website:  "https://www.ihg.com",
		},
		Pitch: "Earn rewards points on group bookings and access special event rates",
	},
	{
		Triggers: []string{"hotel", "accommodation", "lodging"},
		Offer: model.PartnerOffer{
			Category: "Travel & Accommodations",
			Name:     "Marriott Bonvoy",
			Service:  "Travel rewards program with group rates, meeting spaces, and points on event bookings across Marriott properties",
			Price:    600,
			Rating:   4.8,
			Website:  "https://www.marriott.com",
		},
		Pitch: "Maximize rewards on hotel bookings and access exclusive group rates",
	},
	{
		Triggers: []string{"beverage", "wine", "bar", "drinks"},
		Offer: model.PartnerOffer{
			Category: "Beverages & Bar Services",
			Name:     "Wines.com",
			Service:  "Curated wine selections, bartending services, and custom cocktail packages for your event",
			Price:    475,
			Rating:   4.8,
			Website:  "https://www.wines.com",
		},
		Pitch: "Elevate your event with premium beverage options",
	},
}

// Offers exposes the static table for display surfaces, in trigger order.
func Offers() []model.PartnerOffer {
	out := make([]model.PartnerOffer, 0, len(table))
	for _, e := range table {
		out = append(out, e.Offer)
	}
	return out
}

func matches(e entry, needs []string, reasoning string) bool {
	for _, trigger := range e.Triggers {
		for _, need := range needs {
			if strings.EqualFold(need, trigger) {
				return true
			}
		}
		if reasoning != "" && strings.Contains(reasoning, trigger) {
			return true
		}
	}
	return false
}

// Inject prepends matching partner offers to the vendor list in table
// order. Pure: the input slice is not mutated. Previously injected partner
// entries are rebuilt from the table rather than kept, which makes
// re-application with the same intent a no-op.
func Inject(intent *model.Intent, vendors []model.Vendor) []model.Vendor {
	if intent == nil {
		out := make([]model.Vendor, len(vendors))
		copy(out, vendors)
		return out
	}

	reasoning := strings.ToLower(intent.Reasoning)

	// A same-named non-partner vendor supplied by the caller suppresses
	// injection of the offer.
	present := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		if !v.IsPartner {
			present[strings.ToLower(v.Name)] = true
		}
	}

	injected := make([]model.Vendor, 0, len(table))
	for _, e := range table {
		if !matches(e, intent.SpecialNeeds, reasoning) {
			continue
		}
		key := strings.ToLower(e.Offer.Name)
		if present[key] {
			continue
		}
		present[key] = true
		injected = append(injected, e.Offer.Vendor(e.Pitch))
	}

	out := make([]model.Vendor, 0, len(injected)+len(vendors))
	out = append(out, injected...)
	for _, v := range vendors {
		if !v.IsPartner {
			out = append(out, v)
		}
	}
	return out
}
