package nodes

import (
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

func TestClarifyQuestionPicksFirstMissingField(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		want    string
	}{
		{"event type first", []string{"eventType", "location"}, "What kind of event"},
		{"guest count", []string{"guestCount"}, "how many guests"},
		{"location", []string{"location"}, "Which city"},
		{"budget", []string{"budget"}, "budget range"},
		{"unknown field falls back", []string{"venueStyle"}, "tell me a bit more"},
		{"empty falls back", nil, "tell me a bit more"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, clarifyQuestion(tt.missing), tt.want)
		})
	}
}

func TestFinalMessageScrubsVenueTalkWhenSuppressed(t *testing.T) {
	reply := schema.AssistantMessage("Here are 3 venues and 4 vendors that fit.", nil)

	assert.Equal(t, "Here are 3 venues and 4 vendors that fit.", finalMessage(reply, false))
	assert.Equal(t, "Here are 4 vendors that fit.", finalMessage(reply, true))
}

func TestFinalMessageNilAndEmpty(t *testing.T) {
	assert.Empty(t, finalMessage(nil, true))
	assert.Empty(t, finalMessage(schema.AssistantMessage("  ", nil), true))
}

func TestNormalizeMaxToolCalls(t *testing.T) {
	assert.Equal(t, DefaultMaxToolCalls, normalizeMaxToolCalls(0))
	assert.Equal(t, DefaultMaxToolCalls, normalizeMaxToolCalls(-3))
	assert.Equal(t, 4, normalizeMaxToolCalls(4))
}

func TestCheckAndMarkToolLimit(t *testing.T) {
	state := &model.PlannerState{ToolCallCount: 3}

	assert.False(t, checkAndMarkToolLimit(state, 5))
	assert.False(t, state.ToolCallLimitReached)

	state.ToolCallCount = 5
	assert.True(t, checkAndMarkToolLimit(state, 5))
	assert.True(t, state.ToolCallLimitReached)

	// already marked, does not re-trigger
	assert.False(t, checkAndMarkToolLimit(state, 5))
}

func TestIncrementToolCallAndCheck(t *testing.T) {
	state := &model.PlannerState{}

	for i := 1; i <= 3; i++ {
		assert.False(t, incrementToolCallAndCheck(state, 3))
	}
	assert.Equal(t, 3, state.ToolCallCount)
	assert.False(t, state.ToolCallLimitReached)

	assert.True(t, incrementToolCallAndCheck(state, 3))
	assert.True(t, state.ToolCallLimitReached)
}
