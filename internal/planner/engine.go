// Package planner is the deterministic matching and budgeting engine. One
// call to BuildPlan runs the whole chain: normalize, filter, select,
// inject, budget, assemble. No I/O, no clock, no randomness; the output is
// a pure function of the inputs and the static partner table.
package planner

import (
	"strings"

	"github.com/strathwell/planner-engine/internal/planner/assemble"
	"github.com/strathwell/planner-engine/internal/planner/budget"
	"github.com/strathwell/planner-engine/internal/planner/catalog"
	"github.com/strathwell/planner-engine/internal/planner/model"
	"github.com/strathwell/planner-engine/internal/planner/query"
	"github.com/strathwell/planner-engine/internal/planner/relevance"
)

type Engine struct {
	cfg model.PlannerConfig
}

func NewEngine(cfg model.PlannerConfig) *Engine {
	if cfg.VenueLimit == 0 {
		cfg.VenueLimit = 8
	}
	if cfg.ServicesPerCategory == 0 {
		cfg.ServicesPerCategory = 2
	}
	if cfg.RelatedLimit == 0 {
		cfg.RelatedLimit = 6
	}
	return &Engine{cfg: cfg}
}

// criteriaFor merges lexical criteria with the extracted intent; the intent
// wins where both carry a value, since the model saw the whole conversation.
func criteriaFor(c model.SearchCriteria, intent *model.Intent) model.SearchCriteria {
	out := c
	if intent == nil {
		return out
	}
	if intent.Location != "" {
		out.Location = strings.ToLower(intent.Location)
	}
	if intent.EventType != "" {
		out.EventType = strings.ToLower(intent.EventType)
	}
	if intent.GuestCount > 0 {
		out.GuestCount = intent.GuestCount
	}
	if intent.UserBudget > 0 {
		out.BudgetHint = int(intent.UserBudget)
	}
	return out
}

// BuildPlan produces a plan for one request. A nil intent falls back to
// lexical heuristics with standard tone and advance urgency. Caller
// contract violations return a validation error; "nothing matched" does
// not, it yields an explicit empty plan with a synthesized budget estimate
// when the intent carries enough signal.
func (e *Engine) BuildPlan(rawQuery string, intent *model.Intent, venues []model.Venue, services []model.Service) (*model.Plan, error) {
	criteria := query.Normalize(rawQuery)
	if err := query.Validate(criteria); err != nil {
		return nil, err
	}
	if err := query.ValidateIntent(intent); err != nil {
		return nil, err
	}

	if intent == nil {
		intent = model.FallbackIntent(criteria)
	} else {
		intent.Merge(criteria)
	}

	fc := criteriaFor(criteria, intent)

	shortlist := catalog.FilterVenues(venues, fc, e.cfg.VenueLimit)
	matched := catalog.FilterServices(services, fc)
	vendors := catalog.SelectVendors(matched, fc.EventType, e.cfg.ServicesPerCategory)

	plan := assemble.Assemble(intent, fc, shortlist, vendors, rawQuery)

	if !plan.HasRecommendations() {
		plan.Budget = budget.ComputeDynamic(intent, catalog.EssentialCategories(fc.EventType))
	}
	return plan, nil
}

// RelatedTemplates ranks planning templates for the related-items panel.
func (e *Engine) RelatedTemplates(rawQuery string, templates []model.Template) []model.RelatedItem {
	return relevance.RankTemplates(templates, rawQuery, e.cfg.RelatedLimit)
}

// RelatedListings ranks catalog listings for the related-items panel.
func (e *Engine) RelatedListings(rawQuery string, venues []model.Venue, services []model.Service) []model.RelatedItem {
	return relevance.RankListings(venues, services, rawQuery, e.cfg.RelatedLimit)
}
