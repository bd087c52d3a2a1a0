package catalog

import "github.com/strathwell/planner-engine/internal/planner/model"

// Demo catalog used by the CLI driver and the search tools when no external
// catalog store is configured. Shapes mirror real listings: mixed featured
// flags, one unpriced venue, statewide coverage regions.

var DemoVenues = []model.Venue{
	{
		ID: "ven_harborview", Name: "Harborview Loft", City: "Boston", State: "Massachusetts",
		CapacityMin: 40, CapacityMax: 180, RateCard: model.RateCard{BaseRate: 3200, HourlyRate: 400},
		Tags: []string{"wedding", "social", "gala"}, Featured: true, Rating: 4.8, Status: "active",
	},
	{
		ID: "ven_beaconhall", Name: "Beacon Hall", City: "Boston", State: "Massachusetts",
		CapacityMin: 80, CapacityMax: 400, RateCard: model.RateCard{BaseRate: 5400, HourlyRate: 650},
		Tags: []string{"corporate", "conference", "gala"}, Featured: false, Rating: 4.6, Status: "active",
	},
	{
		ID: "ven_charlesroom", Name: "The Charles Room", City: "Cambridge", State: "Massachusetts",
		CapacityMin: 10, CapacityMax: 60, RateCard: model.RateCard{HourlyRate: 250},
		Tags: []string{"social", "party", "corporate"}, Featured: false, Rating: 4.4, Status: "active",
	},
	{
		ID: "ven_mission", Name: "Mission Works", City: "San Francisco", State: "California",
		CapacityMin: 30, CapacityMax: 150, RateCard: model.RateCard{BaseRate: 4100, HourlyRate: 500},
		Tags: []string{"corporate", "conference", "party"}, Featured: true, Rating: 4.7, Status: "active",
	},
	{
		ID: "ven_presidio", Name: "Presidio Terrace", City: "San Francisco", State: "California",
		CapacityMin: 50, CapacityMax: 250, RateCard: model.RateCard{BaseRate: 6800, HourlyRate: 800},
		Tags: []string{"wedding", "gala"}, Featured: false, Rating: 4.9, Status: "active",
	},
	{
		ID: "ven_gotham", Name: "Gotham Atrium", City: "New York", State: "New York",
		CapacityMin: 100, CapacityMax: 500, RateCard: model.RateCard{BaseRate: 9500, HourlyRate: 1100},
		Tags: []string{"corporate", "gala", "conference"}, Featured: true, Rating: 4.7, Status: "active",
	},
	{
		ID: "ven_greenpoint", Name: "Greenpoint Studio", City: "New York", State: "New York",
		CapacityMin: 20, CapacityMax: 90, RateCard: model.RateCard{BaseRate: 2800, HourlyRate: 350},
		Tags: []string{"social", "party", "wedding"}, Featured: false, Rating: 4.5, Status: "active",
	},
	{
		ID: "ven_lakeside", Name: "Lakeside Pavilion", City: "Chicago", State: "Illinois",
		CapacityMin: 60, CapacityMax: 300, RateCard: model.RateCard{BaseRate: 4700, HourlyRate: 550},
		Tags: []string{"wedding", "corporate", "social"}, Featured: false, Rating: 4.6, Status: "active",
	},
}

var DemoServices = []model.Service{
	{
		ID: "svc_fernwood", Name: "Fernwood Catering Co.", Category: "Catering",
		Description: "Seasonal New England menus with full service staff",
		City:        "Boston", State: "Massachusetts",
		CoverageRegions: []string{"all of Massachusetts"},
		EventTypes:      []string{"wedding", "corporate", "social", "gala"},
		RateCard:        model.RateCard{BaseRate: 4500}, Featured: true, Rating: 4.8, Status: "active",
	},
	{
		ID: "svc_backbay", Name: "Back Bay Bites", Category: "Catering",
		Description: "Casual stations and passed appetizers for mid-size events",
		City:        "Boston", State: "Massachusetts",
		EventTypes:  []string{"corporate", "social", "party"},
		RateCard:    model.RateCard{BaseRate: 2400}, Featured: false, Rating: 4.5, Status: "active",
	},
	{
		ID: "svc_goldengate", Name: "Golden Gate Gourmet", Category: "Catering",
		Description: "California-forward menus with wine pairing service",
		City:        "San Francisco", State: "California",
		CoverageRegions: []string{"all of California"},
		EventTypes:      []string{"wedding", "corporate", "conference", "gala"},
		RateCard:        model.RateCard{BaseRate: 5200}, Featured: true, Rating: 4.7, Status: "active",
	},
	{
		ID: "svc_stillframe", Name: "Stillframe Studios", Category: "Photography & Videography",
		Description: "Documentary-style photo and video coverage",
		City:        "Boston", State: "Massachusetts",
		CoverageRegions: []string{"all of Massachusetts", "Providence"},
		EventTypes:      []string{"wedding", "social", "gala"},
		RateCard:        model.RateCard{BaseRate: 1800}, Featured: true, Rating: 4.9, Status: "active",
	},
	{
		ID: "svc_fogcity", Name: "Fog City Film Co.", Category: "Photography & Videography",
		Description: "Cinematic event films and same-day edits",
		City:        "San Francisco", State: "California",
		EventTypes:  []string{"wedding", "corporate", "conference"},
		RateCard:    model.RateCard{BaseRate: 2200}, Featured: false, Rating: 4.6, Status: "active",
	},
	{
		ID: "svc_petalrow", Name: "Petal Row Florists", Category: "Florist & Fresh Flowers",
		Description: "Custom installs, bouquets and table arrangements",
		City:        "Boston", State: "Massachusetts",
		EventTypes:  []string{"wedding", "gala", "social"},
		RateCard:    model.RateCard{BaseRate: 1100}, Featured: false, Rating: 4.7, Status: "active",
	},
	{
		ID: "svc_stagecraft", Name: "Stagecraft AV", Category: "Event Technology (AV/Stage)",
		Description: "Staging, projection and hybrid-event streaming",
		City:        "Boston", State: "Massachusetts",
		CoverageRegions: []string{"all of Massachusetts"},
		EventTypes:      []string{"corporate", "conference"},
		RateCard:        model.RateCard{BaseRate: 3100}, Featured: true, Rating: 4.6, Status: "active",
	},
	{
		ID: "svc_sounddeck", Name: "Sounddeck DJs", Category: "Audio & DJ Services",
		Description: "DJs, MCs and dance-floor lighting packages",
		City:        "Boston", State: "Massachusetts",
		EventTypes:  []string{"corporate", "social", "party", "wedding"},
		RateCard:    model.RateCard{BaseRate: 900}, Featured: false, Rating: 4.5, Status: "active",
	},
	{
		ID: "svc_brightside", Name: "Brightside Entertainment", Category: "Entertainment & Media",
		Description: "Live bands, performers and interactive experiences",
		City:        "New York", State: "New York",
		CoverageRegions: []string{"all of New York"},
		EventTypes:      []string{"social", "party", "gala", "corporate"},
		RateCard:        model.RateCard{BaseRate: 2600}, Featured: true, Rating: 4.7, Status: "active",
	},
	{
		ID: "svc_emberdecor", Name: "Ember Decor Studio", Category: "Decor",
		Description: "Theme design, draping and tablescapes",
		City:        "New York", State: "New York",
		EventTypes:  []string{"wedding", "gala", "party"},
		RateCard:    model.RateCard{BaseRate: 1500}, Featured: false, Rating: 4.4, Status: "active",
	},
	{
		ID: "svc_glowup", Name: "Glow Up Artistry", Category: "Beauty & Glam",
		Description: "On-site makeup and hair styling teams",
		City:        "Boston", State: "Massachusetts",
		CoverageRegions: []string{"all of Massachusetts"},
		EventTypes:      []string{"wedding", "gala", "social"},
		RateCard:        model.RateCard{BaseRate: 650}, Featured: false, Rating: 4.8, Status: "active",
	},
	{
		ID: "svc_swiftshuttle", Name: "Swift Shuttle Co.", Category: "Transportation",
		Description: "Guest shuttles, valet coordination and VIP cars",
		City:        "San Francisco", State: "California",
		EventTypes:  []string{"wedding", "corporate", "conference"},
		RateCard:    model.RateCard{BaseRate: 1200}, Featured: false, Rating: 4.3, Status: "active",
	},
}

// DemoTemplates backs the related-items panel in the CLI driver.
var DemoTemplates = []model.Template{
	{ID: "tpl_wedding_classic", Title: "Classic Wedding Weekend", Description: "Full wedding timeline with ceremony, reception and brunch"},
	{ID: "tpl_launch", Title: "Product Launch Night", Description: "Corporate launch event with demos, press wall and afterparty"},
	{ID: "tpl_conference", Title: "Two-Day Conference", Description: "Multi-track conference with keynotes, breakouts and networking"},
	{ID: "tpl_gala", Title: "Charity Gala Dinner", Description: "Formal gala with auction, seated dinner and live entertainment"},
	{ID: "tpl_offsite", Title: "Team Offsite Retreat", Description: "Corporate retreat with workshops and social evenings"},
	{ID: "tpl_holiday", Title: "Holiday Party", Description: "Seasonal office party with catering, DJ and photo booth"},
}
