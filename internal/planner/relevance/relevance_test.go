package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"wedding", "boston", "150", "guests"},
		Tokenize("Wedding in Boston, 150 guests!"))
	assert.Empty(t, Tokenize("a an to"), "short tokens are dropped")
	assert.Empty(t, Tokenize("  --  "))
}

func TestScore(t *testing.T) {
	tokens := Tokenize("rooftop wedding boston")
	assert.Equal(t, 2, Score("Rooftop loft in Boston", tokens))
	assert.Equal(t, 0, Score("Chicago warehouse", tokens))
}

func TestScoreMonotonic(t *testing.T) {
	tokens := Tokenize("gala dinner")
	base := Score("a formal evening", tokens)
	assert.GreaterOrEqual(t, Score("a formal evening gala", tokens), base)
	assert.GreaterOrEqual(t, Score("a formal gala dinner evening", tokens), Score("a formal evening gala", tokens))
}

func items(titles ...string) []model.RelatedItem {
	out := make([]model.RelatedItem, 0, len(titles))
	for i, title := range titles {
		out = append(out, model.RelatedItem{ID: string(rune('a' + i)), Title: title})
	}
	return out
}

func TestRankOrdersByScoreStable(t *testing.T) {
	in := items("Boston gala venue", "Chicago loft", "Boston wedding gala hall")

	got := Rank(in, Tokenize("boston gala"), 6)
	require.Len(t, got, 3)
	assert.Equal(t, "Boston gala venue", got[0].Title)
	assert.Equal(t, "Boston wedding gala hall", got[1].Title, "equal scores keep input order")
	assert.Equal(t, "Chicago loft", got[2].Title)
}

func TestRankZeroScoreFallback(t *testing.T) {
	in := items("Alpha", "Beta", "Gamma", "Delta")

	got := Rank(in, Tokenize("zzz nothing matches"), 2)
	require.Len(t, got, 2, "zero scores fall back to the head of the list")
	assert.Equal(t, "Alpha", got[0].Title)
	assert.Equal(t, "Beta", got[1].Title)
}

func TestRankEmptyTokensKeepsOrder(t *testing.T) {
	in := items("Alpha", "Beta")
	got := Rank(in, nil, 6)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Title)
}

func TestRankTemplates(t *testing.T) {
	templates := []model.Template{
		{ID: "t1", Title: "Two-Day Conference", Description: "keynotes and breakouts"},
		{ID: "t2", Title: "Classic Wedding Weekend", Description: "ceremony and reception"},
	}

	got := RankTemplates(templates, "planning a wedding reception", 6)
	require.NotEmpty(t, got)
	assert.Equal(t, "t2", got[0].ID)
	assert.Equal(t, model.RelatedKindTemplate, got[0].Kind)
}

func TestRankListingsMixesKinds(t *testing.T) {
	venues := []model.Venue{{ID: "v1", Name: "Harborview Loft", City: "Boston", State: "Massachusetts", Tags: []string{"wedding"}}}
	services := []model.Service{{ID: "s1", Name: "Fernwood Catering", Category: "Catering", Description: "wedding menus"}}

	got := RankListings(venues, services, "boston wedding", 6)
	require.Len(t, got, 2)
	assert.Equal(t, "v1", got[0].ID, "venue scores two tokens, service one")
	assert.Equal(t, model.RelatedKindVenue, got[0].Kind)
	assert.Equal(t, model.RelatedKindService, got[1].Kind)
}
