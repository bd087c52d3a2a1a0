package partners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

func TestInjectMakeupNeedLeadsWithBeautyOffer(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"makeup"}}

	got := Inject(intent, nil)
	require.NotEmpty(t, got)
	assert.Equal(t, "Beauty & Glam", got[0].Category)
	assert.Equal(t, "Glamsquad", got[0].Name)
	assert.True(t, got[0].IsPartner)
	assert.Equal(t, model.VendorStatusNotContacted, got[0].Status)
}

func TestInjectPartnersComeBeforeCatalogVendors(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"insurance", "parking"}}
	vendors := []model.Vendor{{Category: "Catering", Name: "Fernwood Catering Co.", Price: 4500}}

	got := Inject(intent, vendors)
	require.Len(t, got, 3)
	assert.Equal(t, "Laz Parking", got[0].Name, "table order, not need order")
	assert.Equal(t, "NEXT Insurance", got[1].Name)
	assert.Equal(t, "Fernwood Catering Co.", got[2].Name)
}

func TestInjectMatchesReasoningSubstring(t *testing.T) {
	intent := &model.Intent{Reasoning: "User mentioned wine pairing for the reception dinner"}

	got := Inject(intent, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Wines.com", got[0].Name)
}

func TestInjectAccommodationAddsBothTravelOffers(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"accommodation"}}

	got := Inject(intent, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "IHG Hotels & Resorts", got[0].Name)
	assert.Equal(t, "Marriott Bonvoy", got[1].Name)
}

func TestInjectIsIdempotent(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"makeup", "insurance"}}
	vendors := []model.Vendor{{Category: "Catering", Name: "Back Bay Bites", Price: 2400}}

	once := Inject(intent, vendors)
	twice := Inject(intent, once)
	assert.Equal(t, once, twice)
}

func TestInjectDoesNotDuplicateCallerVendor(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"insurance"}}
	vendors := []model.Vendor{{Category: "Event Insurance", Name: "NEXT Insurance", Price: 325}}

	got := Inject(intent, vendors)
	require.Len(t, got, 1)
	assert.Equal(t, "NEXT Insurance", got[0].Name)
}

func TestInjectDoesNotMutateInput(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"makeup"}}
	vendors := []model.Vendor{{Category: "Catering", Name: "Fernwood Catering Co."}}

	_ = Inject(intent, vendors)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Fernwood Catering Co.", vendors[0].Name)
}

func TestInjectNilIntent(t *testing.T) {
	vendors := []model.Vendor{{Name: "Someone"}}
	got := Inject(nil, vendors)
	assert.Equal(t, vendors, got)
}

func TestOffersTableOrder(t *testing.T) {
	offers := Offers()
	require.GreaterOrEqual(t, len(offers), 10)
	assert.Equal(t, "Glamsquad", offers[0].Name, "beauty offer heads the table")
}
