package nodes

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/strathwell/planner-engine/internal/planner/model"
	logx "github.com/strathwell/planner-engine/pkg/logger"
)

// ChatModelConfig holds the configuration for chat model creation
type ChatModelConfig struct {
	APIKey        string
	BaseURL       string
	IntentConfig  *model.IntentModelConfig
	SuggestConfig *model.SuggestionModelConfig
}

// ChatModels holds both intent and suggestion chat models
type ChatModels struct {
	Intent              *gemini.ChatModel
	Suggestion          *gemini.ChatModel
	IntentModelName     string
	SuggestionModelName string
}

// NewChatModels creates both intent and suggestion chat models with the given configuration
func NewChatModels(ctx context.Context, config ChatModelConfig) (*ChatModels, error) {

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	// Create intent chat model
	chatModelIntent, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.IntentConfig.Model,
		Temperature: &config.IntentConfig.Temperature,
		MaxTokens:   &config.IntentConfig.MaxTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  genai.Ptr(int32(2000)),
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating intent model")
		return nil, fmt.Errorf("error creating intent model: %w", err)
	}

	// Create suggestion chat model
	chatModelSuggestion, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.SuggestConfig.Model,
		Temperature: &config.SuggestConfig.Temperature,
		MaxTokens:   &config.SuggestConfig.MaxTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  genai.Ptr(int32(2000)),
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating suggestion model")
		return nil, fmt.Errorf("error creating suggestion model: %w", err)
	}

	return &ChatModels{
		Intent:              chatModelIntent,
		Suggestion:          chatModelSuggestion,
		IntentModelName:     config.IntentConfig.Model,
		SuggestionModelName: config.SuggestConfig.Model,
	}, nil
}

// BindToolsToSuggestionModel binds catalog tools to the suggestion chat model
func (cm *ChatModels) BindToolsToSuggestionModel(ctx context.Context, tools []*schema.ToolInfo) error {
	err := cm.Suggestion.BindTools(tools)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to bind tools")
		return fmt.Errorf("failed to bind tools: %w", err)
	}

	logx.Debug().Msg("Successfully bound tools to suggestion model")
	return nil
}

// NewIntentChatModelNode creates a wrapper for the intent chat model to be used as a node
func NewIntentChatModelNode(chatModel *gemini.ChatModel) *gemini.ChatModel {
	return chatModel
}

// NewSuggestionChatModelNode creates a wrapper for the suggestion chat model to be used as a node
func NewSuggestionChatModelNode(chatModel *gemini.ChatModel) *gemini.ChatModel {
	return chatModel
}
