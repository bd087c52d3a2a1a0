package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

func TestParseIntentResponseFullPayload(t *testing.T) {
	content := "```json\n" + `{
		"intentType": "VENUE_REQUEST",
		"hasExistingVenue": false,
		"needsRecommendations": true,
		"eventType": "Wedding",
		"eventTone": "luxury",
		"guestCount": 150,
		"location": "San Francisco",
		"budgetSensitivity": "high",
		"userBudget": 40000,
		"urgency": "advance",
		"specialNeeds": ["makeup", "parking"],
		"missingCriticalInfo": [],
		"reasoning": "User wants a luxury wedding venue in SF"
	}` + "\n```"

	intent, err := ParseIntentResponse(content)
	require.NoError(t, err)
	assert.Equal(t, model.IntentVenueRequest, intent.Type)
	assert.Equal(t, "wedding", intent.EventType)
	assert.Equal(t, model.ToneLuxury, intent.EventTone)
	assert.Equal(t, 150, intent.GuestCount)
	assert.Equal(t, "san francisco", intent.Location)
	assert.Equal(t, 40000.0, intent.UserBudget)
	assert.Equal(t, model.UrgencyAdvance, intent.Urgency)
	assert.Equal(t, []string{"makeup", "parking"}, intent.SpecialNeeds)
	assert.Empty(t, intent.MissingCriticalInfo)
	assert.Empty(t, intent.ParsingErrors)
}

func TestParseIntentResponseSurroundingProse(t *testing.T) {
	content := `Here is my analysis: {"intentType":"VENDOR_REQUEST","specialNeeds":["makeup"]} hope that helps`

	intent, err := ParseIntentResponse(content)
	require.NoError(t, err)
	assert.Equal(t, model.IntentVendorRequest, intent.Type)
	assert.Equal(t, []string{"makeup"}, intent.SpecialNeeds)
}

func TestParseIntentResponseDefaults(t *testing.T) {
	intent, err := ParseIntentResponse(`{}`)
	require.NoError(t, err)
	assert.Equal(t, model.IntentGeneralPlanning, intent.Type)
	assert.True(t, intent.NeedsRecommendation)
	assert.Equal(t, model.ToneStandard, intent.EventTone)
	assert.Equal(t, model.UrgencyAdvance, intent.Urgency)
}

func TestParseIntentResponseUnknownEnumRecorded(t *testing.T) {
	intent, err := ParseIntentResponse(`{"intentType":"PARTY_TIME","eventTone":"funky","urgency":"whenever"}`)
	require.NoError(t, err)
	assert.Equal(t, model.IntentGeneralPlanning, intent.Type, "unknown type keeps the default")
	assert.Equal(t, model.ToneStandard, intent.EventTone, "unknown tone normalizes to standard")
	assert.Equal(t, model.UrgencyAdvance, intent.Urgency)
	require.NotEmpty(t, intent.ParsingErrors)
	assert.Contains(t, intent.ParsingErrors[0], "intentType")
}

func TestParseIntentResponseCoercesStringNumbers(t *testing.T) {
	intent, err := ParseIntentResponse(`{"guestCount":"120","userBudget":"25000"}`)
	require.NoError(t, err)
	assert.Equal(t, 120, intent.GuestCount)
	assert.Equal(t, 25000.0, intent.UserBudget)
}

func TestParseIntentResponseRejectsGarbageNumbers(t *testing.T) {
	intent, err := ParseIntentResponse(`{"guestCount":-5,"userBudget":"lots"}`)
	require.NoError(t, err)
	assert.Zero(t, intent.GuestCount, "negative count is dropped, not propagated")
	assert.Zero(t, intent.UserBudget)
	assert.Len(t, intent.ParsingErrors, 2)
}

func TestParseIntentResponseNoJSON(t *testing.T) {
	_, err := ParseIntentResponse("I could not produce structured output, sorry.")
	require.Error(t, err)
}

func TestParseIntentResponseOversizedContent(t *testing.T) {
	huge := `{"intentType":"VENUE_REQUEST","reasoning":"` + strings.Repeat("a", maxContentLen) + `"}`

	intent, err := ParseIntentResponse(huge)
	if err != nil {
		// Truncation may cut the object mid-string; a parse error is
		// acceptable as long as nothing panics.
		return
	}
	assert.Contains(t, intent.ParsingErrors, "truncated")
}

func TestParseIntentResponseListHygiene(t *testing.T) {
	intent, err := ParseIntentResponse(`{"specialNeeds":["makeup", 42, "  ", "parking"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"makeup", "parking"}, intent.SpecialNeeds)
	require.NotEmpty(t, intent.ParsingErrors)
	assert.Contains(t, intent.ParsingErrors[0], "specialNeeds")
}
