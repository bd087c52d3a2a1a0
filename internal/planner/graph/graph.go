package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/compose"

	"github.com/strathwell/planner-engine/internal/planner"
	"github.com/strathwell/planner-engine/internal/planner/graph/conversations"
	"github.com/strathwell/planner-engine/internal/planner/graph/nodes"
	"github.com/strathwell/planner-engine/internal/planner/graph/observers"
	"github.com/strathwell/planner-engine/internal/planner/graph/tools"
	"github.com/strathwell/planner-engine/internal/planner/model"
	logx "github.com/strathwell/planner-engine/pkg/logger"
)

// Runner is a thin wrapper to execute the compiled graph with the public PlanRequest.
type Runner interface {
	Invoke(ctx context.Context, in model.PlanRequest) (*model.PlanResult, error)
}

// Config holds everything needed to compose the full planner graph end-to-end.
// This is a convenience layer over GraphConfig that also constructs ChatModels and MessagesManager.
type Config struct {
	APIKey           string
	BaseURL          string
	IntentModel      model.IntentModelConfig
	SuggestionModel  model.SuggestionModelConfig
	Prompt           model.SuggestionPromptConfig
	Conversation     model.ConversationConfig
	Planner          model.PlannerConfig
	ConversationRepo model.ConversationRepository
	CatalogRepo      model.CatalogRepository
	PlanRepo         model.PlanRepository
}

// GraphConfig holds all configuration needed to build the graph
type GraphConfig struct {
	ChatModels      *nodes.ChatModels
	MessagesManager *conversations.MessagesManager
	PromptConfig    *model.SuggestionPromptConfig
	Engine          *planner.Engine
	CatalogRepo     model.CatalogRepository
	PlanRepo        model.PlanRepository
	ToolMaxCalls    int
}

// GraphBuilder handles the construction of the planner graph
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.PlanRequest, *model.PlanResult]
}

type graphRunner struct {
	runnable compose.Runnable[model.PlanRequest, *model.PlanResult]
}

func (r *graphRunner) Invoke(ctx context.Context, in model.PlanRequest) (*model.PlanResult, error) {
	out, err := r.runnable.Invoke(ctx, model.PlanRequest{
		ConversationID: in.ConversationID,
		Query:          in.Query,
	}, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BuildPlannerGraph composes ChatModels, MessagesManager, builds the graph, and returns a Runner.
func BuildPlannerGraph(ctx context.Context, cfg Config) (Runner, error) {
	if cfg.ConversationRepo == nil {
		return nil, fmt.Errorf("conversation repo is nil")
	}
	if cfg.CatalogRepo == nil {
		return nil, fmt.Errorf("catalog repo is nil")
	}

	// Create chat models
	cms, err := nodes.NewChatModels(ctx, nodes.ChatModelConfig{
		APIKey:        cfg.APIKey,
		BaseURL:       cfg.BaseURL,
		IntentConfig:  &cfg.IntentModel,
		SuggestConfig: &cfg.SuggestionModel,
	})
	if err != nil {
		return nil, err
	}

	// Create messages manager
	mm := conversations.NewMessagesManager(cfg.ConversationRepo, cfg.Conversation)

	// Build runnable graph
	runnable, err := BuildGraph(ctx, &GraphConfig{
		ChatModels:      cms,
		MessagesManager: mm,
		PromptConfig:    &cfg.Prompt,
		Engine:          planner.NewEngine(cfg.Planner),
		CatalogRepo:     cfg.CatalogRepo,
		PlanRepo:        cfg.PlanRepo,
		ToolMaxCalls:    cfg.Conversation.Tools.MaxCalls,
	})
	if err != nil {
		return nil, err
	}

	logx.Debug().Msg("Planner graph built successfully")
	return &graphRunner{runnable: runnable}, nil
}

// BuildGraph constructs and returns the compiled planner graph
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.PlanRequest, *model.PlanResult], error) {
	// Basic config validation
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.ChatModels == nil || config.ChatModels.Intent == nil || config.ChatModels.Suggestion == nil {
		return nil, fmt.Errorf("chat models are not properly initialized")
	}
	if config.MessagesManager == nil {
		return nil, fmt.Errorf("messages manager is nil")
	}
	if config.PromptConfig == nil || config.Engine == nil || config.CatalogRepo == nil {
		return nil, fmt.Errorf("prompt config, engine, or catalog repo is nil")
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[model.PlanRequest, *model.PlanResult](
			compose.WithGenLocalState(func(ctx context.Context) *model.PlannerState {
				return &model.PlannerState{}
			}),
		),
	}

	if err := builder.setupTools(ctx); err != nil {
		return nil, err
	}

	builder.addNodes()
	builder.addEdges()

	if err := builder.addBranches(); err != nil {
		return nil, err
	}

	return builder.compile(ctx)
}

// setupTools configures catalog tools and binds them to the suggestion model
func (b *GraphBuilder) setupTools(ctx context.Context) error {
	catalogTools := tools.GetQueryTools(b.config.CatalogRepo)
	toolInfos, err := tools.GetToolInfos(ctx, catalogTools)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to get tool infos")
		return fmt.Errorf("failed to get tool infos: %w", err)
	}

	if err := b.config.ChatModels.BindToolsToSuggestionModel(ctx, toolInfos); err != nil {
		logx.Error().Err(err).Msg("Failed to bind tools to suggestion model")
		return fmt.Errorf("failed to bind tools to suggestion model: %w", err)
	}

	toolsNode, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{
		Tools:               catalogTools,
		ExecuteSequentially: true,
		UnknownToolsHandler: func(ctx context.Context, name, input string) (string, error) {
			// Gracefully handle hallucinated or malformed tool calls (e.g., empty name)
			logx.Warn().
				Str("tool_name", name).
				Str("arguments", input).
				Msg("Unknown or invalid tool call; returning fallback result")
			// Return a compact, structured message the model can use to proceed
			return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q,\"note\":\"ignored\"}", name), nil
		},
		ToolArgumentsHandler: func(ctx context.Context, name, arguments string) (string, error) {
			// Best-effort sanitize; never fail hard here
			var m map[string]any
			if err := json.Unmarshal([]byte(arguments), &m); err != nil {
				// keep original if not JSON
				return arguments, nil
			}

			// Shared string fields across both catalog tools
			for _, key := range []string{"query", "location", "category"} {
				if v, ok := m[key]; ok {
					switch vv := v.(type) {
					case string:
						m[key] = strings.TrimSpace(vv)
					default:
						m[key] = strings.TrimSpace(fmt.Sprint(v))
					}
				}
			}

			switch name {
			case tools.ToolSearchVenues:
				// guest_count: number (optional)
				if v, ok := m["guest_count"]; ok {
					switch vv := v.(type) {
					case float64:
						// JSON numbers decode as float64
						m["guest_count"] = clampInt(int(vv), 0, 1_000_000)
					case string:
						if n, err := strconv.Atoi(strings.TrimSpace(vv)); err == nil {
							m["guest_count"] = clampInt(n, 0, 1_000_000)
						} else {
							delete(m, "guest_count")
						}
					default:
						delete(m, "guest_count")
					}
				}
			}

			// max_results: number (optional, default 5, max 10)
			if v, ok := m["max_results"]; ok {
				switch vv := v.(type) {
				case float64:
					m["max_results"] = clampInt(int(vv), 1, 10)
				case string:
					if n, err := strconv.Atoi(strings.TrimSpace(vv)); err == nil {
						m["max_results"] = clampInt(n, 1, 10)
					} else {
						delete(m, "max_results")
					}
				default:
					delete(m, "max_results")
				}
			}

			b, err := json.Marshal(m)
			if err != nil {
				// fallback to original
				return arguments, nil
			}
			return string(b), nil
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Failed to create tools node")
		return fmt.Errorf("failed to create tools node: %w", err)
	}

	b.graph.AddToolsNode(nodes.NodeToolExecutor, toolsNode,
		compose.WithStatePreHandler(nodes.NewToolExecutorPreHandler(b.config.ToolMaxCalls)),
	)

	return nil
}

// addNodes adds all processing nodes to the graph
func (b *GraphBuilder) addNodes() {
	b.graph.AddLambdaNode(nodes.NodeInputConverter,
		nodes.NewInputConverterNode(b.config.MessagesManager, b.config.PromptConfig),
		compose.WithStatePreHandler(nodes.NewInputConverterPreHandler()),
	)

	b.graph.AddChatModelNode(nodes.NodeIntentChatModel,
		nodes.NewIntentChatModelNode(b.config.ChatModels.Intent),
		compose.WithStatePostHandler(nodes.NewIntentChatModelPostHandler(b.config.ChatModels.IntentModelName)),
	)

	b.graph.AddLambdaNode(nodes.NodeIntentParser,
		nodes.NewIntentParserNode(),
		compose.WithStatePostHandler(nodes.NewIntentParserPostHandler()),
	)

	b.graph.AddLambdaNode(nodes.NodeClarify,
		nodes.NewClarifyNode(b.config.MessagesManager),
	)

	b.graph.AddLambdaNode(nodes.NodePlanComposer,
		nodes.NewPlanComposerNode(b.config.Engine, b.config.CatalogRepo, b.config.PlanRepo, b.config.MessagesManager),
	)

	b.graph.AddLambdaNode(nodes.NodeSuggestionAssembler,
		nodes.NewSuggestionAssemblerNode(b.config.MessagesManager, b.config.PromptConfig),
	)

	b.graph.AddChatModelNode(nodes.NodeSuggestionChatModel,
		nodes.NewSuggestionChatModelNode(b.config.ChatModels.Suggestion),
		compose.WithStatePreHandler(nodes.NewSuggestionChatModelPreHandler(b.config.ToolMaxCalls)),
		compose.WithStatePostHandler(nodes.NewSuggestionChatModelPostHandler(b.config.MessagesManager, b.config.ChatModels.SuggestionModelName)),
	)

	b.graph.AddLambdaNode(nodes.NodeResultFinalizer,
		nodes.NewResultFinalizerNode(),
	)
}

// addEdges creates the main flow connections between nodes
func (b *GraphBuilder) addEdges() {
	edges := [][2]string{
		{compose.START, nodes.NodeInputConverter},
		{nodes.NodeInputConverter, nodes.NodeIntentChatModel},
		{nodes.NodeIntentChatModel, nodes.NodeIntentParser},
		{nodes.NodeClarify, compose.END},
		{nodes.NodeSuggestionAssembler, nodes.NodeSuggestionChatModel},
		{nodes.NodeToolExecutor, nodes.NodeSuggestionChatModel},
		{nodes.NodeResultFinalizer, compose.END},
	}

	for _, edge := range edges {
		b.graph.AddEdge(edge[0], edge[1])
	}
}

// addBranches creates conditional routing branches
func (b *GraphBuilder) addBranches() error {
	clarifyBranch := compose.NewGraphBranch(
		nodes.NewClarifyCondition(),
		map[string]bool{
			nodes.NodeClarify:      true,
			nodes.NodePlanComposer: true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodeIntentParser, clarifyBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding clarify branch")
		return fmt.Errorf("error adding clarify branch: %w", err)
	}

	suggestionBranch := compose.NewGraphBranch(
		nodes.NewSuggestionCondition(),
		map[string]bool{
			nodes.NodeSuggestionAssembler: true,
			compose.END:                   true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodePlanComposer, suggestionBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding suggestion branch")
		return fmt.Errorf("error adding suggestion branch: %w", err)
	}

	decisionBranch := compose.NewGraphBranch(
		nodes.NewToolExecutorCondition(),
		map[string]bool{
			nodes.NodeToolExecutor:    true,
			nodes.NodeResultFinalizer: true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodeSuggestionChatModel, decisionBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding decision branch")
		return fmt.Errorf("error adding decision branch: %w", err)
	}

	return nil
}

// compile finalizes and compiles the graph
func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.PlanRequest, *model.PlanResult], error) {
	// Limit total run steps to avoid infinite loops in branching or tool retries
	maxSteps := 10 + b.config.ToolMaxCalls*2
	if maxSteps < 20 {
		maxSteps = 20
	}

	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(maxSteps))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}

// clampInt returns v limited to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
