package nodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/strathwell/planner-engine/internal/planner"
	"github.com/strathwell/planner-engine/internal/planner/assemble"
	"github.com/strathwell/planner-engine/internal/planner/graph/conversations"
	"github.com/strathwell/planner-engine/internal/planner/graph/parsers"
	"github.com/strathwell/planner-engine/internal/planner/graph/prompts"
	"github.com/strathwell/planner-engine/internal/planner/model"
	"github.com/strathwell/planner-engine/internal/planner/query"
	logx "github.com/strathwell/planner-engine/pkg/logger"
)

// Graph node names.
const (
	NodeInputConverter      = "InputConverter"
	NodeIntentChatModel     = "IntentChatModel"
	NodeIntentParser        = "IntentParser"
	NodeClarify             = "Clarify"
	NodePlanComposer        = "PlanComposer"
	NodeSuggestionAssembler = "SuggestionAssembler"
	NodeSuggestionChatModel = "SuggestionChatModel"
	NodeToolExecutor        = "ToolExecutor"
	NodeResultFinalizer     = "ResultFinalizer"
)

// NewInputConverterPreHandler creates the pre-handler for InputConverter node
func NewInputConverterPreHandler() func(context.Context, model.PlanRequest, *model.PlannerState) (model.PlanRequest, error) {
	return func(ctx context.Context, in model.PlanRequest, s *model.PlannerState) (model.PlanRequest, error) {
		if s.ConversationID == "" {
			s.ConversationID = in.ConversationID
		}
		s.Query = in.Query
		// Lexical criteria are always extracted; they back the intent fallback
		// and fill gaps the model leaves empty.
		s.Criteria = query.Normalize(in.Query)
		// Reset tool call counter and limit flag for each new query
		s.ToolCallCount = 0
		s.ToolCallLimitReached = false
		s.ToolCallIDSeq = 0
		// Reset accumulated total cost for each new query
		s.TotalCostUSD = 0
		return in, nil
	}
}

// NewInputConverterNode creates the InputConverter node for intent extraction
func NewInputConverterNode(
	mm *conversations.MessagesManager,
	promptCfg *model.SuggestionPromptConfig,
) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, input model.PlanRequest) ([]*schema.Message, error) {
		conversationCtx, err := mm.ProcessIntentMessage(ctx, input.ConversationID, input.Query)
		if err != nil {
			return nil, fmt.Errorf("error getting conversation context: %w", err)
		}

		// Generate system prompt via Eino prompt component (enables prompt callbacks)
		systemPrompt, err := prompts.RenderIntentSystem(ctx, promptCfg)
		if err != nil {
			return nil, fmt.Errorf("render intent system prompt: %w", err)
		}

		messages := []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(conversationCtx),
		}

		return messages, nil
	})
}

// NewIntentChatModelPostHandler computes and logs usage cost for the intent model.
func NewIntentChatModelPostHandler(modelName string) func(context.Context, *schema.Message, *model.PlannerState) (*schema.Message, error) {
	return func(ctx context.Context, out *schema.Message, state *model.PlannerState) (*schema.Message, error) {
		if model.CostEnabled() && out != nil && out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
			pricing := model.ResolvePricing(modelName)
			inC, outC, totalC := model.ComputeCost(out.ResponseMeta.Usage, pricing)
			if out.Extra == nil {
				out.Extra = map[string]any{}
			}
			out.Extra["usage_cost"] = map[string]any{
				"currency":          "USD",
				"model":             modelName,
				"prompt_tokens":     out.ResponseMeta.Usage.PromptTokens,
				"completion_tokens": out.ResponseMeta.Usage.CompletionTokens,
				"total_tokens":      out.ResponseMeta.Usage.TotalTokens,
				"input_cost":        inC,
				"output_cost":       outC,
				"total_cost":        totalC,
			}
			logx.Debug().
				Str("conversation_id", state.ConversationID).
				Str("node", NodeIntentChatModel).
				Str("model", modelName).
				Int("prompt_tokens", out.ResponseMeta.Usage.PromptTokens).
				Int("completion_tokens", out.ResponseMeta.Usage.CompletionTokens).
				Int("total_tokens", out.ResponseMeta.Usage.TotalTokens).
				Float64("input_cost_usd", inC).
				Float64("output_cost_usd", outC).
				Float64("total_cost_usd", totalC).
				Msg("LLM usage")

			// Accumulate only total cost into state
			state.TotalCostUSD += totalC

			// Also expose running total in the message Extra for visibility
			out.Extra["usage_cost_total_usd"] = state.TotalCostUSD
		}
		return out, nil
	}
}

// NewIntentParserNode creates the parser node for intent extraction. A model
// reply the parser cannot salvage falls back to lexical criteria instead of
// failing the run.
func NewIntentParserNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, resp *schema.Message) (*model.Intent, error) {
		result, err := parsers.ParseIntentResponse(resp.Content)
		if err == nil && result != nil {
			return result, nil
		}
		if err != nil {
			logx.Warn().Err(err).Msg("Intent parsing failed - falling back to lexical criteria")
		}

		var fallback *model.Intent
		stateErr := compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			fallback = model.FallbackIntent(state.Criteria)
			return nil
		})
		if stateErr != nil {
			return nil, fmt.Errorf("failed to access state: %w", stateErr)
		}
		return fallback, nil
	})
}

// NewIntentParserPostHandler creates the post-handler for the parser node
func NewIntentParserPostHandler() func(context.Context, *model.Intent, *model.PlannerState) (*model.Intent, error) {
	return func(ctx context.Context, out *model.Intent, state *model.PlannerState) (*model.Intent, error) {
		state.Intent = out

		logx.Debug().
			Str("conversation_id", state.ConversationID).
			Str("intent_type", string(out.Type)).
			Bool("has_existing_venue", out.HasExistingVenue).
			Int("parsing_errors", len(out.ParsingErrors)).
			Msg("Intent extracted")
		return out, nil
	}
}

// NewClarifyCondition routes to the clarify node when the request is too
// vague to plan against: the model flagged missing info, lexical extraction
// found neither location nor guest count, and the user is not asking for a
// specific vendor category.
func NewClarifyCondition() func(context.Context, *model.Intent) (string, error) {
	return func(ctx context.Context, intent *model.Intent) (string, error) {
		var criteria model.SearchCriteria
		compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			criteria = state.Criteria
			return nil
		})

		hasLocation := intent.Location != "" || criteria.HasLocation()
		hasGuests := intent.GuestCount > 0 || criteria.HasGuestCount()
		specificRequest := intent.Type == model.IntentVendorRequest ||
			intent.Type == model.IntentMarketingRequest ||
			len(intent.SpecialNeeds) > 0

		if len(intent.MissingCriticalInfo) > 0 && !hasLocation && !hasGuests && !specificRequest {
			logx.Debug().
				Strs("missing", intent.MissingCriticalInfo).
				Msg("Routing to Clarify - request too vague to plan")
			return NodeClarify, nil
		}

		logx.Debug().Str("intent_type", string(intent.Type)).Msg("Routing to PlanComposer")
		return NodePlanComposer, nil
	}
}

// NewClarifyNode asks one follow-up question for the most important missing
// detail instead of producing a plan.
func NewClarifyNode(mm *conversations.MessagesManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, intent *model.Intent) (*model.PlanResult, error) {
		question := clarifyQuestion(intent.MissingCriticalInfo)

		var conversationID string
		compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			conversationID = state.ConversationID
			return nil
		})

		if err := mm.SaveResponse(ctx, conversationID, question); err != nil {
			logx.Error().
				Str("conversation_id", conversationID).
				Err(err).
				Msg("Error saving clarify question")
		}

		return &model.PlanResult{Message: question, Clarification: true}, nil
	})
}

func clarifyQuestion(missing []string) string {
	for _, field := range missing {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "eventtype", "event_type":
			return "What kind of event are you planning? A wedding, a corporate event, a conference, or something else?"
		case "guestcount", "guest_count":
			return "Roughly how many guests are you expecting? That helps me match venues and estimate costs."
		case "location":
			return "Which city or area should I search in?"
		case "budget", "userbudget":
			return "Do you have a budget range in mind? I can work with any number, even a rough one."
		}
	}
	return "Could you tell me a bit more about your event? The type, location, or guest count would help me find the right matches."
}

// NewPlanComposerNode runs the matching and budgeting engine against the
// current catalog snapshot and persists the resulting plan.
func NewPlanComposerNode(
	eng *planner.Engine,
	catalogRepo model.CatalogRepository,
	planRepo model.PlanRepository,
	mm *conversations.MessagesManager,
) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, intent *model.Intent) (*model.PlanResult, error) {
		var (
			rawQuery       string
			conversationID string
		)
		err := compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			rawQuery = state.Query
			conversationID = state.ConversationID
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to access state: %w", err)
		}

		venues, err := catalogRepo.ActiveVenues(ctx)
		if err != nil {
			return nil, fmt.Errorf("load venues: %w", err)
		}
		services, err := catalogRepo.ActiveServices(ctx)
		if err != nil {
			return nil, fmt.Errorf("load services: %w", err)
		}

		plan, err := eng.BuildPlan(rawQuery, intent, venues, services)
		if err != nil {
			return nil, err
		}

		compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			state.Plan = plan
			return nil
		})

		if planRepo != nil {
			if err := planRepo.SavePlan(ctx, conversationID, plan); err != nil {
				logx.Error().
					Str("conversation_id", conversationID).
					Err(err).
					Msg("Error saving plan")
			}
		}

		if plan.HasRecommendations() {
			if err := mm.SaveResponse(ctx, conversationID, plan.Message); err != nil {
				logx.Error().
					Str("conversation_id", conversationID).
					Err(err).
					Msg("Error saving plan message")
			}
		}

		logx.Debug().
			Str("conversation_id", conversationID).
			Int("venues", len(plan.Venues)).
			Int("vendors", len(plan.Vendors)).
			Float64("budget_total", plan.Budget.Total).
			Msg("Plan composed")

		return &model.PlanResult{Message: plan.Message, Plan: plan}, nil
	})
}

// NewSuggestionCondition routes empty plans to the suggestion model; plans
// with concrete recommendations go straight to the caller.
func NewSuggestionCondition() func(context.Context, *model.PlanResult) (string, error) {
	return func(ctx context.Context, in *model.PlanResult) (string, error) {
		if in.Plan != nil && in.Plan.HasRecommendations() {
			logx.Debug().Msg("Plan has recommendations - routing to end")
			return compose.END, nil
		}
		logx.Debug().Msg("No catalog matches - routing to SuggestionAssembler")
		return NodeSuggestionAssembler, nil
	}
}

// NewSuggestionAssemblerNode builds the message context for the fallback
// suggestion model.
func NewSuggestionAssemblerNode(
	mm *conversations.MessagesManager,
	promptCfg *model.SuggestionPromptConfig,
) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in *model.PlanResult) ([]*schema.Message, error) {
		var conversationID string
		err := compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			conversationID = state.ConversationID
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to access state: %w", err)
		}

		// Generate system prompt via Eino prompt component (enables prompt callbacks)
		sysPrompt, err := prompts.RenderSuggestSystem(ctx, *promptCfg)
		if err != nil {
			return nil, fmt.Errorf("generate suggestion prompt: %w", err)
		}

		messages, err := mm.BuildSuggestionContext(ctx, conversationID, sysPrompt)
		if err != nil {
			return nil, fmt.Errorf("build suggestion context: %w", err)
		}

		return messages, nil
	})
}

// NewSuggestionChatModelPreHandler creates the pre-handler for SuggestionChatModel node
func NewSuggestionChatModelPreHandler(maxToolCalls int) func(context.Context, []*schema.Message, *model.PlannerState) ([]*schema.Message, error) {
	return func(ctx context.Context, in []*schema.Message, state *model.PlannerState) ([]*schema.Message, error) {
		// Heuristic fix for Gemini OpenAI-compat: ensure tool results carry tool_call_id
		if len(in) > 0 {
			last := in[len(in)-1]
			if last != nil && last.Role == schema.Tool && strings.TrimSpace(last.ToolCallID) == "" {
				// Try to find the most recent assistant tool call id from history
				for i := len(state.History) - 1; i >= 0; i-- {
					msg := state.History[i]
					if msg == nil || msg.Role != schema.Assistant || len(msg.ToolCalls) == 0 {
						continue
					}
					id := msg.ToolCalls[0].ID
					if strings.TrimSpace(id) != "" {
						last.ToolCallID = id
					}
					break
				}
			}
		}

		state.History = append(state.History, in...)

		if checkAndMarkToolLimit(state, maxToolCalls) {
			maxToolCalls = normalizeMaxToolCalls(maxToolCalls)
			wrapUp := &schema.Message{
				Role: schema.System,
				Content: fmt.Sprintf(
					"SYSTEM NOTICE: You have reached the maximum tool call limit (%d). "+
						"Please synthesize a helpful response using the information you've already gathered. "+
						"Acknowledge any limitations in your response if you couldn't complete all necessary tool calls.",
					maxToolCalls,
				),
			}
			state.History = append(state.History, wrapUp)
		}

		logx.Debug().Msg("AI thinking...")

		return state.History, nil
	}
}

// NewSuggestionChatModelPostHandler creates the post-handler for SuggestionChatModel node
func NewSuggestionChatModelPostHandler(
	mm *conversations.MessagesManager,
	modelName string,
) func(context.Context, *schema.Message, *model.PlannerState) (*schema.Message, error) {
	return func(ctx context.Context, out *schema.Message, state *model.PlannerState) (*schema.Message, error) {
		// Compute usage cost if available
		if model.CostEnabled() && out != nil && out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
			pricing := model.ResolvePricing(modelName)
			inC, outC, totalC := model.ComputeCost(out.ResponseMeta.Usage, pricing)
			if out.Extra == nil {
				out.Extra = map[string]any{}
			}
			out.Extra["usage_cost"] = map[string]any{
				"currency":          "USD",
				"model":             modelName,
				"prompt_tokens":     out.ResponseMeta.Usage.PromptTokens,
				"completion_tokens": out.ResponseMeta.Usage.CompletionTokens,
				"total_tokens":      out.ResponseMeta.Usage.TotalTokens,
				"input_cost":        inC,
				"output_cost":       outC,
				"total_cost":        totalC,
			}
			logx.Debug().
				Str("conversation_id", state.ConversationID).
				Str("node", NodeSuggestionChatModel).
				Str("model", modelName).
				Int("prompt_tokens", out.ResponseMeta.Usage.PromptTokens).
				Int("completion_tokens", out.ResponseMeta.Usage.CompletionTokens).
				Int("total_tokens", out.ResponseMeta.Usage.TotalTokens).
				Float64("input_cost_usd", inC).
				Float64("output_cost_usd", outC).
				Float64("total_cost_usd", totalC).
				Msg("LLM usage")

			// Accumulate only total cost into state
			state.TotalCostUSD += totalC
			// Also expose running total in the message Extra for visibility
			out.Extra["usage_cost_total_usd"] = state.TotalCostUSD
		}

		// Normalize tool calls: some providers (Gemini OpenAI-compat) may omit tool_call IDs.
		if out != nil && len(out.ToolCalls) > 0 {
			for i := range out.ToolCalls {
				if strings.TrimSpace(out.ToolCalls[i].ID) == "" {
					state.ToolCallIDSeq++
					out.ToolCalls[i].ID = fmt.Sprintf("call_%d", state.ToolCallIDSeq)
				}
			}
		}

		state.History = append(state.History, out)

		// Clean logging for tool calls and responses
		if len(out.ToolCalls) > 0 {
			logx.Debug().Int("tool_count", len(out.ToolCalls)).Msg("Calling tools")
		} else {
			logx.Debug().Msg("AI response ready")
		}

		// Save only when it's a final assistant message (no further tool calls),
		// or when we've reached the tool-call limit but still have a content response.
		if out.Role == schema.Assistant && (len(out.ToolCalls) == 0 || state.ToolCallLimitReached) && strings.TrimSpace(out.Content) != "" {
			if err := mm.SaveResponse(ctx, state.ConversationID, out.Content); err != nil {
				logx.Error().
					Str("conversation_id", state.ConversationID).
					Err(err).
					Msg("Error saving assistant response in postHandlerSuggestion")
			} else {
				logx.Debug().
					Str("conversation_id", state.ConversationID).
					Msg("Successfully saved assistant response to Redis")
			}
		}

		return out, nil
	}
}

// NewToolExecutorCondition creates the condition function for tool execution routing
func NewToolExecutorCondition() func(context.Context, *schema.Message) (string, error) {
	return func(ctx context.Context, input *schema.Message) (string, error) {
		// Check if tool limit was reached
		var limitReached bool
		compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			limitReached = state.ToolCallLimitReached
			return nil
		})

		if limitReached {
			logx.Debug().Msg("Tool limit reached previously - routing to finalizer")
			return NodeResultFinalizer, nil
		}

		if len(input.ToolCalls) > 0 {
			logx.Debug().Int("tool_count", len(input.ToolCalls)).Msg("Routing to ToolExecutor")
			return NodeToolExecutor, nil
		}

		logx.Debug().Msg("No tool calls - continuing to finalizer")
		return NodeResultFinalizer, nil
	}
}

// NewToolExecutorPreHandler creates the pre-handler for ToolExecutor node
func NewToolExecutorPreHandler(maxToolCalls int) func(context.Context, *schema.Message, *model.PlannerState) (*schema.Message, error) {
	return func(ctx context.Context, in *schema.Message, state *model.PlannerState) (*schema.Message, error) {
		// Increment tool call counter
		exceeded := incrementToolCallAndCheck(state, maxToolCalls)

		logx.Debug().
			Int("tool_call_count", state.ToolCallCount).
			Str("conversation_id", state.ConversationID).
			Msg("Tool execution attempt")

		if exceeded {
			maxToolCalls = normalizeMaxToolCalls(maxToolCalls)
			logx.Warn().
				Int("tool_call_count", state.ToolCallCount).
				Int("max_tool_calls", maxToolCalls).
				Str("conversation_id", state.ConversationID).
				Msg("Tool call limit exceeded - flagging and continuing")
			return in, nil
		}

		return in, nil
	}
}

// NewResultFinalizerNode wraps the suggestion model's final message into a
// PlanResult, attaching the synthesized budget estimate when one exists.
func NewResultFinalizerNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in *schema.Message) (*model.PlanResult, error) {
		var plan *model.Plan
		var suppress bool
		compose.ProcessState(ctx, func(_ context.Context, state *model.PlannerState) error {
			plan = state.Plan
			suppress = state.Intent.SuppressVenues()
			return nil
		})

		return &model.PlanResult{Message: finalMessage(in, suppress), Plan: plan}, nil
	})
}

// finalMessage trims the model reply and, when venue recommendations are
// suppressed, scrubs venue mentions the model may still narrate.
func finalMessage(in *schema.Message, suppress bool) string {
	if in == nil {
		return ""
	}
	message := strings.TrimSpace(in.Content)
	if suppress && message != "" {
		message = assemble.ScrubVenueMentions(message)
	}
	return message
}
