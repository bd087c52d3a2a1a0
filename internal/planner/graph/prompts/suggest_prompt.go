package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/strathwell/planner-engine/internal/planner/graph/tools"
	"github.com/strathwell/planner-engine/internal/planner/model"
)

//go:embed template/suggest_prompt.txt
var suggestSystemPrompt string

// RenderSuggestSystem renders the dynamic suggestion system prompt and triggers prompt callbacks.
func RenderSuggestSystem(ctx context.Context, config model.SuggestionPromptConfig) (string, error) {
	// Render via Eino prompt component (Go template) to both format and emit callbacks
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(suggestSystemPrompt),
	)
	vars := map[string]any{
		"PlatformName":       config.PlatformName,
		"Region":             config.Region,
		"SearchVenuesTool":   tools.ToolSearchVenues,
		"SearchServicesTool": tools.ToolSearchServices,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("suggest prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("suggest prompt render: empty result")
	}
	return msgs[0].Content, nil
}
