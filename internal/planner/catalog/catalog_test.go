package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

func venue(id string, min, max int, rate float64, featured bool, tags ...string) model.Venue {
	return model.Venue{
		ID: id, Name: id, City: "Boston", State: "Massachusetts",
		CapacityMin: min, CapacityMax: max,
		RateCard: model.RateCard{BaseRate: rate},
		Tags:     tags, Featured: featured, Status: "active",
	}
}

func TestFilterVenuesCapacity(t *testing.T) {
	venues := []model.Venue{venue("small", 10, 50, 1000, false, "party")}

	got := FilterVenues(venues, model.SearchCriteria{GuestCount: 120}, 8)
	assert.Empty(t, got, "a 120-guest request cannot use a 50-cap room")

	got = FilterVenues(venues, model.SearchCriteria{GuestCount: 30}, 8)
	assert.Len(t, got, 1)

	got = FilterVenues(venues, model.SearchCriteria{}, 8)
	assert.Len(t, got, 1, "unknown guest count passes every venue")
}

func TestFilterVenuesLocationBidirectional(t *testing.T) {
	venues := []model.Venue{
		venue("boston", 10, 200, 1000, false),
		{ID: "sf", Name: "sf", City: "San Francisco", State: "California", CapacityMin: 10, CapacityMax: 200, Status: "active"},
	}

	got := FilterVenues(venues, model.SearchCriteria{Location: "boston"}, 8)
	require.Len(t, got, 1)
	assert.Equal(t, "boston", got[0].ID)

	// Partial city name in the query still matches via containment.
	got = FilterVenues(venues, model.SearchCriteria{Location: "san francisco bay"}, 8)
	require.Len(t, got, 1)
	assert.Equal(t, "sf", got[0].ID)
}

func TestFilterVenuesEventTypeTag(t *testing.T) {
	venues := []model.Venue{
		venue("w", 10, 200, 1000, false, "wedding"),
		venue("c", 10, 200, 1000, false, "corporate"),
	}

	got := FilterVenues(venues, model.SearchCriteria{EventType: "wedding"}, 8)
	require.Len(t, got, 1)
	assert.Equal(t, "w", got[0].ID)
}

func TestFilterVenuesOrderingAndCap(t *testing.T) {
	venues := []model.Venue{
		venue("plain_cheap", 10, 200, 1000, false),
		venue("featured_pricey", 10, 200, 8000, true),
		venue("unpriced", 10, 200, 0, false),
		venue("plain_mid", 10, 200, 3000, false),
		venue("featured_cheap", 10, 200, 2000, true),
	}

	got := FilterVenues(venues, model.SearchCriteria{}, 8)
	require.Len(t, got, 5)
	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID, got[4].ID}
	assert.Equal(t, []string{"featured_cheap", "featured_pricey", "plain_cheap", "plain_mid", "unpriced"}, ids,
		"featured first, then ascending rate with unpriced last")

	got = FilterVenues(venues, model.SearchCriteria{}, 2)
	assert.Len(t, got, 2)
}

func TestFilterServicesCoverageRegions(t *testing.T) {
	services := []model.Service{
		{ID: "statewide", Category: "Catering", City: "Springfield", State: "Massachusetts",
			CoverageRegions: []string{"all of Massachusetts"}, Status: "active"},
		{ID: "local_only", Category: "Catering", City: "Portland", State: "Oregon", Status: "active"},
	}

	got := FilterServices(services, model.SearchCriteria{Location: "boston"})
	require.Len(t, got, 1)
	assert.Equal(t, "statewide", got[0].ID, "statewide coverage reaches any city in the state")
}

func TestFilterServicesEventType(t *testing.T) {
	services := []model.Service{
		{ID: "weddings", Category: "Catering", City: "Boston", EventTypes: []string{"wedding"}, Status: "active"},
		{ID: "corp", Category: "Catering", City: "Boston", EventTypes: []string{"corporate"}, Status: "active"},
	}

	got := FilterServices(services, model.SearchCriteria{Location: "boston", EventType: "wedding"})
	require.Len(t, got, 1)
	assert.Equal(t, "weddings", got[0].ID)
}

func TestEssentialCategories(t *testing.T) {
	assert.Equal(t,
		[]string{"Catering", "Photography & Videography", "Florist & Fresh Flowers"},
		EssentialCategories("wedding"))
	assert.Equal(t,
		[]string{"Catering", "Event Technology (AV/Stage)", "Audio & DJ Services"},
		EssentialCategories("corporate"))
	assert.Equal(t,
		[]string{"Catering", "Entertainment & Media", "Photography & Videography"},
		EssentialCategories(""))
}

func TestSelectVendors(t *testing.T) {
	services := []model.Service{
		{ID: "a", Name: "Plain Caterer", Category: "Catering", RateCard: model.RateCard{BaseRate: 2000}, Status: "active"},
		{ID: "b", Name: "Featured Caterer", Category: "Catering", RateCard: model.RateCard{BaseRate: 4000}, Featured: true, Status: "active"},
		{ID: "c", Name: "Third Caterer", Category: "Catering", RateCard: model.RateCard{BaseRate: 1500}, Status: "active"},
		{ID: "d", Name: "Photo Crew", Category: "Photography & Videography", Status: "active"},
		{ID: "e", Name: "Florist", Category: "Florist & Fresh Flowers", RateCard: model.RateCard{BaseRate: 900}, Status: "active"},
	}

	vendors := SelectVendors(services, "wedding", 2)
	require.Len(t, vendors, 4, "two caterers, one photographer, one florist")

	assert.Equal(t, "Featured Caterer", vendors[0].Name, "featured service leads its category")
	assert.Equal(t, "Plain Caterer", vendors[1].Name)
	assert.Equal(t, "Photo Crew", vendors[2].Name)

	assert.Equal(t, float64(DefaultServiceRate), vendors[2].Price, "unpriced service gets the default rate")
	assert.Equal(t, model.VendorStatusNotContacted, vendors[2].Status)
	assert.Equal(t, "Professional Photography & Videography services", vendors[2].Service)
}

func TestVenuePrice(t *testing.T) {
	assert.Equal(t, 3200.0, VenuePrice(model.Venue{RateCard: model.RateCard{BaseRate: 3200}}))
	assert.Equal(t, float64(DefaultVenueRate), VenuePrice(model.Venue{}))
}
