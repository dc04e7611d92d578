package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/symptor-ai/symptor/pkg/catalog"
	"github.com/symptor-ai/symptor/pkg/common/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type staticLister struct {
	conditions []catalog.Condition
}

func (s staticLister) List(ctx context.Context) ([]catalog.Condition, error) {
	return s.conditions, nil
}

type memStore struct {
	sessions map[string]*Session
	failSave bool
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]*Session)}
}

func (s *memStore) Get(ctx context.Context, userID string) (*Session, error) {
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *memStore) Save(ctx context.Context, sess *Session) error {
	if s.failSave {
		return errors.New("store unavailable")
	}
	s.sessions[sess.UserID] = sess
	return nil
}

func newTestService(store SessionStore) *Service {
	cache := catalog.NewCache(staticLister{conditions: catalog.DefaultConditions()}, time.Hour, nil)
	return NewService(store, cache, NewMachine(DefaultThresholds()))
}

func TestGetOrCreateReturnsCreatedFlag(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	sess, created, err := svc.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created flag for first contact")
	}
	if sess.LastQuestionType != QuestionGeneral {
		t.Fatalf("expected initial general state, got %q", sess.LastQuestionType)
	}
	if len(sess.ConfirmedSymptoms) != 0 || len(sess.RejectedSymptoms) != 0 {
		t.Fatal("expected empty symptom sets on a new session")
	}

	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, created, _ = svc.GetOrCreate(ctx, "u1"); created {
		t.Fatal("expected existing session on second lookup")
	}
}

func TestHandleMessageAppendsTranscriptAndPersists(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	sess, reply, err := svc.HandleMessage(ctx, "u1", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sess.Messages) != 2 {
		t.Fatalf("expected user and assistant entries, got %d", len(sess.Messages))
	}
	if sess.Messages[0].Sender != SenderUser || sess.Messages[0].Text != "hi" {
		t.Fatalf("unexpected first transcript entry: %+v", sess.Messages[0])
	}
	if sess.Messages[1].Sender != SenderAssistant || sess.Messages[1].Text != reply {
		t.Fatalf("unexpected second transcript entry: %+v", sess.Messages[1])
	}

	saved, ok := store.sessions["u1"]
	if !ok {
		t.Fatal("expected session to be persisted")
	}
	if len(saved.Messages) != 2 {
		t.Fatalf("persisted transcript has %d entries", len(saved.Messages))
	}

	// Second turn grows the same transcript.
	sess, _, err = svc.HandleMessage(ctx, "u1", "I have a headache and nausea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sess.Messages) != 4 {
		t.Fatalf("expected 4 transcript entries, got %d", len(sess.Messages))
	}
}

func TestHandleMessageSaveFailureIsAnError(t *testing.T) {
	store := newMemStore()
	store.failSave = true
	svc := newTestService(store)

	if _, _, err := svc.HandleMessage(context.Background(), "u1", "hi"); err == nil {
		t.Fatal("expected error when session save fails")
	}
}

func TestHistoryForUnknownUserIsEmpty(t *testing.T) {
	svc := newTestService(newMemStore())

	messages, err := svc.History(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty transcript, got %d entries", len(messages))
	}
}

func TestFullConversationFlow(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	if _, reply, _ := svc.HandleMessage(ctx, "u1", "hello"); !strings.Contains(reply, "Symptor") {
		t.Fatalf("expected greeting, got %q", reply)
	}
	if _, reply, _ := svc.HandleMessage(ctx, "u1", "I have a headache and nausea"); !strings.Contains(reply, "sensitivity to light") {
		t.Fatalf("expected clarifying question, got %q", reply)
	}
	if _, reply, _ := svc.HandleMessage(ctx, "u1", "yes"); !strings.Contains(reply, "dizzy") {
		t.Fatalf("expected confirm-one-more question, got %q", reply)
	}
	sess, reply, err := svc.HandleMessage(ctx, "u1", "yes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "Migraine") {
		t.Fatalf("expected Migraine diagnosis, got %q", reply)
	}
	if len(sess.Messages) != 8 {
		t.Fatalf("expected 8 transcript entries, got %d", len(sess.Messages))
	}
}
