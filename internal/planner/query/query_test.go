package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/strathwell/planner-engine/internal/core/error"
	"github.com/strathwell/planner-engine/internal/planner/model"
)

func TestNormalizeFullQuery(t *testing.T) {
	c := Normalize("Plan a 120-guest product launch in Cambridge in October, budget $25k")

	assert.Equal(t, "boston", c.Location, "cambridge maps to the boston bucket")
	assert.Empty(t, c.EventType, "product launch is not a detectable event type")
	assert.Equal(t, 120, c.GuestCount)
	assert.Equal(t, 25000, c.BudgetHint)
}

func TestNormalizeLocationFirstMatchWins(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"alias sf", "wedding venues in SF", "san francisco"},
		{"bay area phrase", "somewhere in the bay area", "san francisco"},
		{"nyc alias", "corporate dinner NYC", "new york"},
		{"brooklyn maps to new york", "a party in Brooklyn", "new york"},
		{"plain city", "gala in Seattle", "seattle"},
		{"no location", "help me plan a conference", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.query).Location)
		})
	}
}

func TestNormalizeEventType(t *testing.T) {
	assert.Equal(t, "wedding", Normalize("a wedding for 50 guests").EventType)
	assert.Equal(t, "corporate", Normalize("Corporate conference next month").EventType,
		"earlier list entry wins over conference")
	assert.Empty(t, Normalize("birthday bash").EventType)
}

func TestNormalizeGuestCount(t *testing.T) {
	assert.Equal(t, 75, Normalize("expecting 75 people").GuestCount)
	assert.Equal(t, 200, Normalize("200 attendees").GuestCount)
	assert.Zero(t, Normalize("a few friends over").GuestCount)
}

func TestParseBudget(t *testing.T) {
	assert.Equal(t, 25000, ParseBudget("budget $25k"))
	assert.Equal(t, 3000, ParseBudget("budget: 3000"))
	assert.Equal(t, 10000, ParseBudget("my Budget 10K tops"))
	assert.Zero(t, ParseBudget("as cheap as possible"))
}

func TestNormalizeIsDeterministic(t *testing.T) {
	const q = "Plan a wedding in SF for 150 guests, budget $40k"
	first := Normalize(q)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Normalize(q))
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(model.SearchCriteria{}))
	require.NoError(t, Validate(model.SearchCriteria{GuestCount: 120, BudgetHint: 5000}))

	err := Validate(model.SearchCriteria{GuestCount: -1})
	require.Error(t, err)
	assert.True(t, errx.IsValidation(err))

	err = Validate(model.SearchCriteria{BudgetHint: -500})
	require.Error(t, err)
	assert.True(t, errx.IsValidation(err))
}

func TestValidateIntent(t *testing.T) {
	require.NoError(t, ValidateIntent(nil))
	require.NoError(t, ValidateIntent(&model.Intent{GuestCount: 80, UserBudget: 12000}))

	err := ValidateIntent(&model.Intent{GuestCount: -3})
	require.Error(t, err)
	assert.True(t, errx.IsValidation(err))
}
