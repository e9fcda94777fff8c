package dao

import (
	"context"
	"sync"
	"time"

	"github.com/ezeflt/horizon-ai/models"
)

// MemoryConversationStore keeps conversations in process memory. Used by
// tests and the "memory" storage backend for local development.
type MemoryConversationStore struct {
	mu            sync.Mutex
	conversations map[string][]models.ChatMessage
}

func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{
		conversations: make(map[string][]models.ChatMessage),
	}
}

func (s *MemoryConversationStore) GetHistory(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.conversations[userID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]models.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *MemoryConversationStore) Append(ctx context.Context, userID, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[userID] = append(s.conversations[userID], models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	return nil
}
