package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/eino/components/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strathwell/planner-engine/internal/planner/catalog"
	"github.com/strathwell/planner-engine/internal/planner/model"
)

type stubCatalog struct {
	venues   []model.Venue
	services []model.Service
}

func (s *stubCatalog) ActiveVenues(context.Context) ([]model.Venue, error) {
	return s.venues, nil
}

func (s *stubCatalog) ActiveServices(context.Context) ([]model.Service, error) {
	return s.services, nil
}

func demoRepo() *stubCatalog {
	return &stubCatalog{venues: catalog.DemoVenues, services: catalog.DemoServices}
}

func invoke(t *testing.T, bt tool.BaseTool, args string) string {
	t.Helper()
	it, ok := bt.(tool.InvokableTool)
	require.True(t, ok)
	out, err := it.InvokableRun(context.Background(), args)
	require.NoError(t, err)
	return out
}

func TestGetToolInfosExposesBothCatalogTools(t *testing.T) {
	infos, err := GetToolInfos(context.Background(), GetQueryTools(demoRepo()))
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, ToolSearchVenues, infos[0].Name)
	assert.Equal(t, ToolSearchServices, infos[1].Name)
}

func TestSearchVenuesFiltersByLocationAndCapacity(t *testing.T) {
	out := invoke(t, NewSearchVenuesTool(demoRepo()),
		`{"query":"wedding","location":"boston","guest_count":120,"max_results":5}`)

	var result SearchVenuesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Venues)
	for _, v := range result.Venues {
		assert.Equal(t, "Boston", v.City)
		assert.GreaterOrEqual(t, v.Capacity, 120)
	}
}

func TestSearchVenuesTitleCaseLocationMatches(t *testing.T) {
	lower := invoke(t, NewSearchVenuesTool(demoRepo()),
		`{"location":"boston","guest_count":120,"max_results":10}`)
	title := invoke(t, NewSearchVenuesTool(demoRepo()),
		`{"location":"Boston","guest_count":120,"max_results":10}`)

	var lowerResult, titleResult SearchVenuesResult
	require.NoError(t, json.Unmarshal([]byte(lower), &lowerResult))
	require.NoError(t, json.Unmarshal([]byte(title), &titleResult))
	require.NotZero(t, lowerResult.Count)
	assert.Equal(t, lowerResult.Count, titleResult.Count)
}

func TestSearchServicesTitleCaseLocationMatches(t *testing.T) {
	out := invoke(t, NewSearchServicesTool(demoRepo()),
		`{"location":" Boston ","category":"Catering","max_results":10}`)

	var result SearchServicesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Services)
}

func TestSearchVenuesEmptyLocationSearchesEverywhere(t *testing.T) {
	out := invoke(t, NewSearchVenuesTool(demoRepo()), `{"max_results":10}`)

	var result SearchVenuesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, len(catalog.DemoVenues), result.Count)
}

func TestSearchVenuesDefaultsLimitWhenOutOfRange(t *testing.T) {
	out := invoke(t, NewSearchVenuesTool(demoRepo()), `{"max_results":50}`)

	var result SearchVenuesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.LessOrEqual(t, result.Count, defaultSearchLimit)
}

func TestSearchServicesFiltersByCategory(t *testing.T) {
	out := invoke(t, NewSearchServicesTool(demoRepo()),
		`{"location":"boston","category":"Catering","max_results":10}`)

	var result SearchServicesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Services)
	for _, s := range result.Services {
		assert.Equal(t, "Catering", s.Category)
	}
}

func TestSearchServicesUnpricedGetsSentinelRate(t *testing.T) {
	repo := &stubCatalog{services: []model.Service{{
		ID: "svc_unpriced", Name: "Mystery Vendors", Category: "Decor",
		City: "Boston", State: "Massachusetts", Status: "active",
	}}}

	out := invoke(t, NewSearchServicesTool(repo), `{"location":"boston"}`)

	var result SearchServicesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Services, 1)
	assert.Equal(t, float64(catalog.DefaultServiceRate), result.Services[0].Price)
}
