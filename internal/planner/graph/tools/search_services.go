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

type SearchServicesParams struct {
	Query      string `json:"query"`
	Location   string `json:"location"`
	Category   string `json:"category"`
	MaxResults int    `json:"max_results"`
}

type ServiceHit struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

type SearchServicesResult struct {
	Query    string       `json:"query"`
	Count    int          `json:"count"`
	Services []ServiceHit `json:"services"`
}

// NewSearchServicesTool searches the service vendor catalog by location and category.
func NewSearchServicesTool(repo model.CatalogRepository) tool.BaseTool {
	info := &schema.ToolInfo{
		Name: ToolSearchServices,
		Desc: "Search service vendors (catering, photography, decor, AV, beauty, transport) by location and category.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"query": {
				Type: schema.String,
				Desc: "Free-text search terms, e.g. 'live band'",
			},
			"location": {
				Type: schema.String,
				Desc: "City or state to search in. Leave empty to search everywhere.",
			},
			"category": {
				Type: schema.String,
				Desc: "Service category filter, e.g. 'Catering'. Leave empty for all categories.",
			},
			"max_results": {
				Type: schema.Integer,
				Desc: "Maximum services to return (1-10, default 5)",
			},
		}),
	}

	return utils.NewTool(info, func(ctx context.Context, params *SearchServicesParams) (*SearchServicesResult, error) {
		services, err := repo.ActiveServices(ctx)
		if err != nil {
			return nil, errx.Wrap(err, errx.CatalogErrorMessage)
		}

		limit := params.MaxResults
		if limit <= 0 || limit > 10 {
			limit = defaultSearchLimit
		}

		// Same lowercase boundary as the venue tool; matching is lowercase-keyed.
		criteria := model.SearchCriteria{Location: strings.ToLower(strings.TrimSpace(params.Location))}
		matched := catalog.FilterServices(services, criteria)

		if cat := strings.TrimSpace(params.Category); cat != "" {
			kept := matched[:0]
			for _, s := range matched {
				if strings.EqualFold(s.Category, cat) || strings.Contains(strings.ToLower(s.Category), strings.ToLower(cat)) {
					kept = append(kept, s)
				}
			}
			matched = kept
		}

		if tokens := relevance.Tokenize(params.Query); len(tokens) > 0 {
			items := make([]model.RelatedItem, 0, len(matched))
			byID := make(map[string]model.Service, len(matched))
			for _, s := range matched {
				items = append(items, model.RelatedItem{
					ID:    s.ID,
					Kind:  model.RelatedKindService,
					Title: s.Name + " " + s.Category,
				})
				byID[s.ID] = s
			}
			ranked := relevance.Rank(items, tokens, len(items))
			reordered := make([]model.Service, 0, len(ranked))
			for _, it := range ranked {
				reordered = append(reordered, byID[it.ID])
			}
			matched = reordered
		}

		if len(matched) > limit {
			matched = matched[:limit]
		}

		result := &SearchServicesResult{Query: params.Query, Count: len(matched)}
		for _, s := range matched {
			result.Services = append(result.Services, ServiceHit{
				ID:       s.ID,
				Name:     s.Name,
				Category: s.Category,
				City:     s.City,
				State:    s.State,
				Price:    catalog.ServicePrice(s),
				Rating:   s.Rating,
			})
		}
		return result, nil
	})
}
