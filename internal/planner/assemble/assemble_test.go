package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strathwell/planner-engine/internal/planner/budget"
	"github.com/strathwell/planner-engine/internal/planner/model"
)

func someVenues() []model.Venue {
	return []model.Venue{
		{ID: "v1", Name: "Harborview Loft", City: "Boston", RateCard: model.RateCard{BaseRate: 3200}},
	}
}

func TestAssembleSuppressesVenuesForExistingVenue(t *testing.T) {
	intent := &model.Intent{HasExistingVenue: true}

	plan := Assemble(intent, model.SearchCriteria{Location: "boston"}, someVenues(), nil, "")
	assert.Empty(t, plan.Venues, "existing venue means no venue recommendations")
	assert.Zero(t, plan.Budget.Venue, "suppressed venues never reach the budget")
	assert.NotContains(t, plan.Message, "venue")
}

func TestAssembleSuppressesVenuesForVendorRequests(t *testing.T) {
	for _, it := range []model.IntentType{model.IntentVendorRequest, model.IntentMarketingRequest} {
		plan := Assemble(&model.Intent{Type: it}, model.SearchCriteria{}, someVenues(), nil, "")
		assert.Empty(t, plan.Venues, string(it))
	}
}

func TestAssembleKeepsVenuesOtherwise(t *testing.T) {
	plan := Assemble(&model.Intent{Type: model.IntentVenueRequest}, model.SearchCriteria{Location: "boston"}, someVenues(), nil, "")
	require.Len(t, plan.Venues, 1)
	assert.Equal(t, 3200.0, plan.Budget.Venue)
	assert.Contains(t, plan.Message, "1 venues")
	assert.Contains(t, plan.Message, "Boston")
}

func TestAssembleRecomputesBudgetAfterInjection(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"makeup"}}
	vendors := []model.Vendor{{Category: "Catering", Name: "Fernwood", Price: 4500}}

	plan := Assemble(intent, model.SearchCriteria{}, nil, vendors, "")
	require.Len(t, plan.Vendors, 2)
	assert.Equal(t, "Glamsquad", plan.Vendors[0].Name, "partner leads the list")
	assert.Contains(t, plan.Budget.VendorBreakdown, "Beauty & Glam",
		"budget reflects the post-injection vendor set")
	assert.Equal(t, 4750.0, plan.Budget.Total)
}

func TestAssembleBudgetMatchesFinalVendorList(t *testing.T) {
	intent := &model.Intent{SpecialNeeds: []string{"makeup"}}
	vendors := []model.Vendor{{Category: "Catering", Name: "Fernwood", Price: 4500}}

	plan := Assemble(intent, model.SearchCriteria{}, nil, vendors, "")
	assert.Equal(t, budget.Compute(nil, plan.Vendors, ""), plan.Budget,
		"breakdown is always derived from the vendors the plan shows")
}

func TestAssembleUsesIntentBudgetWhenQueryHasNone(t *testing.T) {
	intent := &model.Intent{UserBudget: 10000}
	vendors := []model.Vendor{{Category: "Catering", Name: "Fernwood", Price: 4500}}

	plan := Assemble(intent, model.SearchCriteria{}, nil, vendors, "no numbers here")
	require.NotNil(t, plan.Budget.UserBudget)
	assert.Equal(t, 10000.0, *plan.Budget.UserBudget)
	assert.Equal(t, 5500.0, plan.Budget.Remaining)
}

func TestAssembleEmptyState(t *testing.T) {
	plan := Assemble(nil, model.SearchCriteria{Location: "denver"}, nil, nil, "")
	assert.Empty(t, plan.Venues)
	assert.Empty(t, plan.Vendors)
	assert.Zero(t, plan.Budget.Total)
	assert.Contains(t, plan.Message, "Denver")
	assert.False(t, plan.HasRecommendations())
}

func TestTimeline(t *testing.T) {
	tl := Timeline(120)
	require.Len(t, tl, 5)
	assert.Equal(t, "Start planning 4-6 months before event", tl[0])

	tl = Timeline(250)
	assert.Equal(t, "Start planning 8-12 months before event", tl[0])
	assert.Equal(t, "Final walkthrough 1 week before event", tl[4])
}

func TestSuggestedCategories(t *testing.T) {
	assert.Contains(t, SuggestedCategories("wedding"), "Makeup & Styling")
	assert.Contains(t, SuggestedCategories("corporate"), "Event Management")
	assert.Equal(t, []string{"Decor", "Entertainment & Media", "Event Management"}, SuggestedCategories("gala"))
}

func TestScrubVenueMentions(t *testing.T) {
	in := "I found 5 venues in Boston for you. These venues and 3 vendors are great. Check each venue carefully."
	out := ScrubVenueMentions(in)
	assert.NotContains(t, strings.ToLower(out), "venue")
}

func TestDisplayLocation(t *testing.T) {
	assert.Equal(t, "San Francisco", DisplayLocation("san francisco"))
	assert.Equal(t, "your area", DisplayLocation(""))
}
