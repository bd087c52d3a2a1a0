package model

import (
	"github.com/cloudwego/eino/schema"
)

// PlannerState stores per-invocation state for the Eino Graph.
// Concurrency model:
//   - This struct is registered as Graph Local State via compose.WithGenLocalState.
//   - All reads/writes happen only inside Eino state handlers:
//     WithStatePreHandler, WithStatePostHandler, or compose.ProcessState.
//   - Eino serializes access to state within these handlers, so no additional
//     mutex/atomic is required as long as you never touch it outside handlers.
//   - Do not access PlannerState directly from outside handlers. For
//     persistence, use repositories/services (e.g., MessagesManager).
type PlannerState struct {
	ConversationID       string
	Query                string
	Criteria             SearchCriteria    // lexical criteria, set by the input converter
	History              []*schema.Message // mutated only inside Eino state handlers
	Intent               *Intent           // set by parser post-handler, read by composer
	Plan                 *Plan             // set by the plan composer
	ToolCallCount        int               // maintained in handlers (reset/increment)
	ToolCallLimitReached bool              // set when tool call limit is exceeded
	ToolCallIDSeq        int               // local sequence to synthesize tool_call_id when provider omits

	// Accumulated total LLM cost (USD) across model invocations for this query
	TotalCostUSD float64
}

// PlanRequest represents the input for one planning query.
type PlanRequest struct {
	ConversationID string `json:"conversation_id"`
	Query          string `json:"query"`
}

// PlanResult is the graph output. Clarification is set when the engine
// asked a follow-up question instead of producing a plan.
type PlanResult struct {
	Message       string `json:"message"`
	Plan          *Plan  `json:"plan,omitempty"`
	Clarification bool   `json:"clarification"`
}
