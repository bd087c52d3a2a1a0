package conversations

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

type memoryRepo struct {
	messages map[string][]*schema.Message
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{messages: map[string][]*schema.Message{}}
}

func (m *memoryRepo) AddMessage(_ context.Context, conversationID string, msg *schema.Message) error {
	m.messages[conversationID] = append(m.messages[conversationID], msg)
	return nil
}

func (m *memoryRepo) LoadHistory(_ context.Context, conversationID string) (*model.ConversationHistory, error) {
	return &model.ConversationHistory{
		ConversationID: conversationID,
		Messages:       m.messages[conversationID],
	}, nil
}

func (m *memoryRepo) ClearHistory(_ context.Context, conversationID string) error {
	delete(m.messages, conversationID)
	return nil
}

func (m *memoryRepo) GetMessageCount(_ context.Context, conversationID string) (int, error) {
	return len(m.messages[conversationID]), nil
}

func newTestManager(repo model.ConversationRepository, maxTurns int) *MessagesManager {
	cfg := model.ConversationConfig{}
	cfg.Intent.MaxTurns = maxTurns
	return NewMessagesManager(repo, cfg)
}

func TestProcessIntentMessageSavesAndWrapsQuery(t *testing.T) {
	repo := newMemoryRepo()
	mm := newTestManager(repo, 6)

	out, err := mm.ProcessIntentMessage(context.Background(), "conv-1", "find venues in boston")
	require.NoError(t, err)

	assert.Contains(t, out, "<conversation_context>")
	assert.Contains(t, out, "UserMessage(find venues in boston)")
	assert.Contains(t, out, "<current_message_to_analyze>")

	require.Len(t, repo.messages["conv-1"], 1)
	assert.Equal(t, schema.User, repo.messages["conv-1"][0].Role)
}

func TestProcessIntentMessageTrimsToRecentTurns(t *testing.T) {
	repo := newMemoryRepo()
	mm := newTestManager(repo, 2)

	ctx := context.Background()
	require.NoError(t, repo.AddMessage(ctx, "conv-2", schema.UserMessage("oldest question")))
	require.NoError(t, repo.AddMessage(ctx, "conv-2", schema.AssistantMessage("oldest answer", nil)))
	require.NoError(t, repo.AddMessage(ctx, "conv-2", schema.AssistantMessage("recent answer", nil)))

	out, err := mm.ProcessIntentMessage(ctx, "conv-2", "new question")
	require.NoError(t, err)

	assert.NotContains(t, out, "oldest question")
	assert.Contains(t, out, "recent answer")
}

func TestBuildSuggestionContextPrependsSystemPrompt(t *testing.T) {
	repo := newMemoryRepo()
	mm := newTestManager(repo, 6)

	ctx := context.Background()
	require.NoError(t, repo.AddMessage(ctx, "conv-3", schema.UserMessage("any rooftop ideas?")))

	msgs, err := mm.BuildSuggestionContext(ctx, "conv-3", "you are a planner")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, schema.System, msgs[0].Role)
	assert.Equal(t, "you are a planner", msgs[0].Content)
	assert.Equal(t, schema.User, msgs[1].Role)
}

func TestSaveResponsePersistsAssistantMessage(t *testing.T) {
	repo := newMemoryRepo()
	mm := newTestManager(repo, 6)

	require.NoError(t, mm.SaveResponse(context.Background(), "conv-4", "here is your plan"))

	require.Len(t, repo.messages["conv-4"], 1)
	assert.Equal(t, schema.Assistant, repo.messages["conv-4"][0].Role)
	assert.Equal(t, "here is your plan", repo.messages["conv-4"][0].Content)
}
