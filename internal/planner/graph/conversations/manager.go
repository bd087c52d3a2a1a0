package conversations

import (
	"context"
	"strings"

	"github.com/strathwell/planner-engine/internal/planner/model"

	"github.com/cloudwego/eino/schema"
)

// MessagesManager mediates between graph nodes and the conversation store:
// it persists turns, trims history for the intent model, and builds the
// message context for the suggestion model.
type MessagesManager struct {
	conversationRepo model.ConversationRepository
	intentMaxTurns   int
}

func NewMessagesManager(conversationRepo model.ConversationRepository, config model.ConversationConfig) *MessagesManager {
	return &MessagesManager{
		conversationRepo: conversationRepo,
		intentMaxTurns:   config.Intent.MaxTurns,
	}
}

// =========== Intent extraction context ===========

// ProcessIntentMessage saves the user query and renders the trimmed
// conversation transcript the intent model analyzes.
func (cm *MessagesManager) ProcessIntentMessage(ctx context.Context, conversationID string, query string) (string, error) {
	userMsg := schema.UserMessage(query)
	if err := cm.conversationRepo.AddMessage(ctx, conversationID, userMsg); err != nil {
		return "", err
	}

	history, err := cm.conversationRepo.LoadHistory(ctx, conversationID)
	if err != nil {
		return "", err
	}

	conversationContext := cm.buildIntentContext(history.Messages)

	var fullContext strings.Builder
	fullContext.WriteString(conversationContext)
	fullContext.WriteString("\n<current_message_to_analyze>\n")
	fullContext.WriteString("UserMessage(" + query + ")\n")
	fullContext.WriteString("</current_message_to_analyze>")

	return fullContext.String(), nil
}

func (cm *MessagesManager) buildIntentContext(messages []*schema.Message) string {
	recentMessages := trimTail(messages, cm.intentMaxTurns)

	var contextBuilder strings.Builder
	contextBuilder.WriteString("<conversation_context>\n")

	for _, msg := range recentMessages {
		if msg == nil || msg.Content == "" {
			continue
		}
		switch msg.Role {
		case schema.User:
			contextBuilder.WriteString("UserMessage(" + msg.Content + ")\n")
		case schema.Assistant:
			contextBuilder.WriteString("AssistantMessage(" + msg.Content + ")\n")
		}
	}

	contextBuilder.WriteString("</conversation_context>")
	return contextBuilder.String()
}

// BuildSuggestionContext prefixes the system prompt onto the stored
// transcript for the suggestion model.
func (cm *MessagesManager) BuildSuggestionContext(ctx context.Context, conversationID string, systemPrompt string) ([]*schema.Message, error) {
	history, err := cm.conversationRepo.LoadHistory(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
	}

	messages = append(messages, history.Messages...)

	return messages, nil
}

// SaveResponse persists a final assistant message.
func (cm *MessagesManager) SaveResponse(ctx context.Context, conversationID string, content string) error {
	assistantMsg := schema.AssistantMessage(content, nil)
	return cm.conversationRepo.AddMessage(ctx, conversationID, assistantMsg)
}

// ====================== Helper function ======================
func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if maxTurns <= 0 || len(messages) <= maxTurns {
		result := make([]*schema.Message, len(messages))
		copy(result, messages)
		return result
	}
	source := messages[len(messages)-maxTurns:]
	result := make([]*schema.Message, len(source))
	copy(result, source)
	return result
}
