package tools

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	errx "github.com/strathwell/planner-engine/internal/core/error"
	"github.com/strathwell/planner-engine/internal/planner/catalog"
	"github.com/strathwell/planner-engine/internal/planner/model"
	"github.com/strathwell/planner-engine/internal/planner/relevance"
)

const defaultSearchLimit = 5

type SearchVenuesParams struct {
	Query      string `json:"query"`
	Location   string `json:"location"`
	GuestCount int    `json:"guest_count"`
	MaxResults int    `json:"max_results"`
}

type VenueHit struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Capacity int      `json:"capacity"`
	Price    float64  `json:"price"`
	Rating   float64  `json:"rating"`
	Tags     []string `json:"tags,omitempty"`
}

type SearchVenuesResult struct {
	Query  string     `json:"query"`
	Count  int        `json:"count"`
	Venues []VenueHit `json:"venues"`
}

// NewSearchVenuesTool searches the venue catalog by location and capacity.
func NewSearchVenuesTool(repo model.CatalogRepository) tool.BaseTool {
	info := &schema.ToolInfo{
		Name: ToolSearchVenues,
		Desc: "Search event venues by location and guest capacity. Returns matching venues with price and rating.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"query": {
				Type: schema.String,
				Desc: "Free-text search terms, e.g. 'rooftop wedding venue'",
			},
			"location": {
				Type: schema.String,
				Desc: "City or state to search in, e.g. 'boston'. Leave empty to search everywhere.",
			},
			"guest_count": {
				Type: schema.Integer,
				Desc: "Expected number of guests. 0 means unspecified.",
			},
			"max_results": {
				Type: schema.Integer,
				Desc: "Maximum venues to return (1-10, default 5)",
			},
		}),
	}

	return utils.NewTool(info, func(ctx context.Context, params *SearchVenuesParams) (*SearchVenuesResult, error) {
		venues, err := repo.ActiveVenues(ctx)
		if err != nil {
			return nil, errx.Wrap(err, errx.CatalogErrorMessage)
		}

		limit := params.MaxResults
		if limit <= 0 || limit > 10 {
			limit = defaultSearchLimit
		}

		// The model often title-cases locations; catalog matching is
		// lowercase-keyed.
		criteria := model.SearchCriteria{
			Location:   strings.ToLower(strings.TrimSpace(params.Location)),
			GuestCount: params.GuestCount,
		}
		matched := catalog.FilterVenues(venues, criteria, limit)

		// free-text terms reorder within the filtered set
		if tokens := relevance.Tokenize(params.Query); len(tokens) > 0 {
			items := make([]model.RelatedItem, 0, len(matched))
			byID := make(map[string]model.Venue, len(matched))
			for _, v := range matched {
				items = append(items, model.RelatedItem{ID: v.ID, Kind: model.RelatedKindVenue, Title: v.Name})
				byID[v.ID] = v
			}
			ranked := relevance.Rank(items, tokens, limit)
			reordered := make([]model.Venue, 0, len(ranked))
			for _, it := range ranked {
				reordered = append(reordered, byID[it.ID])
			}
			matched = reordered
		}

		result := &SearchVenuesResult{Query: params.Query, Count: len(matched)}
		for _, v := range matched {
			result.Venues = append(result.Venues, VenueHit{
				ID:       v.ID,
				Name:     v.Name,
				City:     v.City,
				State:    v.State,
				Capacity: v.CapacityMax,
				Price:    catalog.VenuePrice(v),
				Rating:   v.Rating,
				Tags:     v.Tags,
			})
		}
		return result, nil
	})
}
