package logic

import (
	"context"
	"log"
	"time"

	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/errs"
	"github.com/ezeflt/horizon-ai/models"
	"github.com/ezeflt/horizon-ai/pkg"
)

// ChatLogic sequences a chat invocation: history read, inbound persist,
// context build, remote completion, outbound persist.
type ChatLogic struct {
	convoStore dao.ConversationStore
	chatClient *pkg.ChatClient
}

func NewChatLogic(convoStore dao.ConversationStore, chatClient *pkg.ChatClient) *ChatLogic {
	return &ChatLogic{
		convoStore: convoStore,
		chatClient: chatClient,
	}
}

// ChatResult is the caller-facing reply.
type ChatResult struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// SendChatMessage runs one chat turn for userID. The user message is
// persisted before the remote call, so a failed completion still leaves
// an unanswered user turn in the log; nothing is ever rolled back.
func (l *ChatLogic) SendChatMessage(ctx context.Context, userMessage, userID string) (*ChatResult, error) {
	// A failed history read degrades the reply quality, not the
	// invocation: proceed with empty context.
	history, err := l.convoStore.GetHistory(ctx, userID, dao.DefaultHistoryLimit)
	if err != nil {
		log.Printf("failed to read conversation history for user %s, continuing without context: %v", userID, err)
		history = nil
	}

	if err := l.convoStore.Append(ctx, userID, models.RoleUser, userMessage); err != nil {
		return nil, errs.Wrap(errs.KindStorage, "failed to persist user message", err)
	}

	// The just-appended user message is carried in memory; the context
	// is built from the pre-append history.
	messages, err := BuildContext(SystemInstruction, history, userMessage)
	if err != nil {
		return nil, err
	}

	reply, err := l.chatClient.CreateChatCompletion(ctx, messages)
	if err != nil {
		return nil, err
	}

	if err := l.convoStore.Append(ctx, userID, models.RoleAssistant, reply); err != nil {
		return nil, errs.Wrap(errs.KindStorage, "failed to persist assistant message", err)
	}

	return &ChatResult{
		Response:  reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GetChatHistory returns the trailing conversation log for userID,
// capped at the default history limit.
func (l *ChatLogic) GetChatHistory(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	return l.convoStore.GetHistory(ctx, userID, dao.DefaultHistoryLimit)
}
