// Package relevance ranks catalog items and templates by token overlap with
// a free-text query. Scoring is intentionally simple and deterministic:
// substring counting with stable ordering, so the same query always yields
// the same panel.
package relevance

import (
	"sort"
	"strings"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

// Tokenize lowercases the query, replaces non-alphanumeric runs with
// spaces, and keeps tokens longer than two characters.
func Tokenize(query string) []string {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range strings.ToLower(query) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Score counts how many tokens occur as substrings of text. Adding an
// occurrence of a token to the text never lowers the score.
func Score(text string, tokens []string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			score++
		}
	}
	return score
}

// Rank orders items by descending score, ties keeping input order. When the
// query produced tokens but nothing scored, it falls back to the first
// limit items unranked so callers never render an empty panel for a
// populated catalog.
func Rank(items []model.RelatedItem, tokens []string, limit int) []model.RelatedItem {
	if limit <= 0 || len(items) == 0 {
		return nil
	}

	scored := make([]model.RelatedItem, len(items))
	copy(scored, items)
	anyHit := false
	for i := range scored {
		s := Score(scored[i].Title+" "+scored[i].Description, tokens)
		scored[i].Score = float64(s)
		if s > 0 {
			anyHit = true
		}
	}

	if len(tokens) > 0 && !anyHit {
		if len(scored) > limit {
			scored = scored[:limit]
		}
		return scored
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// RankTemplates scores planning templates against a raw query.
func RankTemplates(templates []model.Template, query string, limit int) []model.RelatedItem {
	items := make([]model.RelatedItem, 0, len(templates))
	for _, t := range templates {
		items = append(items, model.RelatedItem{
			ID: t.ID, Kind: model.RelatedKindTemplate,
			Title: t.Title, Description: t.Description,
		})
	}
	return Rank(items, Tokenize(query), limit)
}

// RankListings scores venues and services together against a raw query,
// venues first in the pre-rank order so ties favour them.
func RankListings(venues []model.Venue, services []model.Service, query string, limit int) []model.RelatedItem {
	items := make([]model.RelatedItem, 0, len(venues)+len(services))
	for _, v := range venues {
		items = append(items, model.RelatedItem{
			ID: v.ID, Kind: model.RelatedKindVenue,
			Title: v.Name, Description: v.City + " " + v.State + " " + strings.Join(v.Tags, " "),
		})
	}
	for _, s := range services {
		items = append(items, model.RelatedItem{
			ID: s.ID, Kind: model.RelatedKindService,
			Title: s.Name, Description: s.Category + " " + s.Description,
		})
	}
	return Rank(items, Tokenize(query), limit)
}
