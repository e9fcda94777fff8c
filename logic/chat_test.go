package logic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/errs"
	"github.com/ezeflt/horizon-ai/models"
	"github.com/ezeflt/horizon-ai/pkg"
)

// flakyStore wraps a real store and injects failures per operation.
type flakyStore struct {
	inner       dao.ConversationStore
	failReads   bool
	failAppends bool
	appendCalls int
}

func (s *flakyStore) GetHistory(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	if s.failReads {
		return nil, errors.New("read refused")
	}
	return s.inner.GetHistory(ctx, userID, limit)
}

func (s *flakyStore) Append(ctx context.Context, userID, role, content string) error {
	s.appendCalls++
	if s.failAppends {
		return errors.New("append refused")
	}
	return s.inner.Append(ctx, userID, role, content)
}

// chatServer returns a completion endpoint that replies with content and
// records every request body it receives.
func chatServer(t *testing.T, content string) (*httptest.Server, *[]pkg.ChatCompletionRequest) {
	t.Helper()
	var seen []pkg.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkg.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		seen = append(seen, req)
		json.NewEncoder(w).Encode(pkg.ChatCompletionResponse{
			Choices: []pkg.ChatChoice{{Message: &pkg.ResponseMessage{Role: "assistant", Content: content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newChatLogic(t *testing.T, store dao.ConversationStore, endpoint string) *ChatLogic {
	t.Helper()
	client, err := pkg.NewChatClient(pkg.ChatConfig{EndpointURL: endpoint, APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewChatClient failed: %v", err)
	}
	return NewChatLogic(store, client)
}

func TestSendChatMessage_EndToEnd(t *testing.T) {
	srv, seen := chatServer(t, "Your total 2024 revenue is 410000 euros.")
	store := dao.NewMemoryConversationStore()
	l := newChatLogic(t, store, srv.URL)

	res, err := l.SendChatMessage(context.Background(), "What is my total revenue?", "user_42")
	if err != nil {
		t.Fatalf("SendChatMessage failed: %v", err)
	}
	if res.Response != "Your total 2024 revenue is 410000 euros." {
		t.Errorf("unexpected response %q", res.Response)
	}
	if _, err := time.Parse(time.RFC3339, res.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", res.Timestamp, err)
	}

	history, err := l.GetChatHistory(context.Background(), "user_42")
	if err != nil {
		t.Fatalf("GetChatHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected user and assistant messages, got %d", len(history))
	}
	if history[0].Role != models.RoleUser || history[0].Content != "What is my total revenue?" {
		t.Errorf("unexpected first message %+v", history[0])
	}
	if history[1].Role != models.RoleAssistant || history[1].Content != res.Response {
		t.Errorf("unexpected second message %+v", history[1])
	}

	// Empty history: the remote sees the system instruction plus the
	// fresh user message only.
	if len(*seen) != 1 {
		t.Fatalf("expected 1 remote call, got %d", len(*seen))
	}
	sent := (*seen)[0].Messages
	if len(sent) != 2 || sent[0].Role != "system" || sent[1].Content != "What is my total revenue?" {
		t.Errorf("unexpected remote payload %+v", sent)
	}
}

func TestSendChatMessage_WindowSentToRemote(t *testing.T) {
	srv, seen := chatServer(t, "ok")
	store := dao.NewMemoryConversationStore()
	for _, m := range historyOf(12) {
		if err := store.Append(context.Background(), "user_42", m.Role, m.Content); err != nil {
			t.Fatalf("seed append failed: %v", err)
		}
	}
	l := newChatLogic(t, store, srv.URL)

	if _, err := l.SendChatMessage(context.Background(), "next", "user_42"); err != nil {
		t.Fatalf("SendChatMessage failed: %v", err)
	}
	sent := (*seen)[0].Messages
	if len(sent) != 12 {
		t.Fatalf("expected system + 10 history + user = 12 entries, got %d", len(sent))
	}
	if sent[1].Content != "message 2" {
		t.Errorf("window should drop the two oldest messages, got %q first", sent[1].Content)
	}
}

func TestSendChatMessage_RemoteFailureKeepsUserMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	store := dao.NewMemoryConversationStore()
	l := newChatLogic(t, store, srv.URL)

	_, err := l.SendChatMessage(context.Background(), "hello?", "user_1")
	if !errs.Is(err, errs.KindRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}

	history, err := store.GetHistory(context.Background(), "user_1", 0)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(history) != 1 || history[0].Role != models.RoleUser {
		t.Fatalf("user message must survive a failed completion, got %+v", history)
	}
}

func TestSendChatMessage_AppendFailureSkipsRemote(t *testing.T) {
	srv, seen := chatServer(t, "unused")
	store := &flakyStore{inner: dao.NewMemoryConversationStore(), failAppends: true}
	l := newChatLogic(t, store, srv.URL)

	_, err := l.SendChatMessage(context.Background(), "hi", "user_1")
	if !errs.Is(err, errs.KindStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if len(*seen) != 0 {
		t.Errorf("remote must not be called when the user message cannot be stored")
	}
}

func TestSendChatMessage_ReadFailureDegradesToEmptyContext(t *testing.T) {
	srv, seen := chatServer(t, "fine")
	store := &flakyStore{inner: dao.NewMemoryConversationStore(), failReads: true}
	l := newChatLogic(t, store, srv.URL)

	res, err := l.SendChatMessage(context.Background(), "still there?", "user_1")
	if err != nil {
		t.Fatalf("SendChatMessage failed: %v", err)
	}
	if res.Response != "fine" {
		t.Errorf("unexpected response %q", res.Response)
	}
	if got := len((*seen)[0].Messages); got != 2 {
		t.Errorf("expected system + user payload after a failed read, got %d entries", got)
	}
	if store.appendCalls != 2 {
		t.Errorf("expected both messages appended, got %d calls", store.appendCalls)
	}
}

func TestGetChatHistory_Bounded(t *testing.T) {
	store := dao.NewMemoryConversationStore()
	srv, _ := chatServer(t, "ok")
	l := newChatLogic(t, store, srv.URL)

	for _, m := range historyOf(60) {
		if err := store.Append(context.Background(), "user_1", m.Role, m.Content); err != nil {
			t.Fatalf("seed append failed: %v", err)
		}
	}
	history, err := l.GetChatHistory(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetChatHistory failed: %v", err)
	}
	if len(history) != dao.DefaultHistoryLimit {
		t.Fatalf("expected %d messages, got %d", dao.DefaultHistoryLimit, len(history))
	}
	if history[0].Content != "message 10" {
		t.Errorf("expected the trailing 50 messages, got %q first", history[0].Content)
	}
}
