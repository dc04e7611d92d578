package dialogue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/symptor-ai/symptor/pkg/catalog"
)

// Service runs chat turns end to end: session lookup, the state machine,
// transcript bookkeeping, and persistence. Turns for the same user are
// serialized so duplicate submissions cannot race the session.
type Service struct {
	store   SessionStore
	catalog *catalog.Cache
	machine *Machine

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store SessionStore, cache *catalog.Cache, machine *Machine) *Service {
	return &Service{
		store:   store,
		catalog: cache,
		machine: machine,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// GetOrCreate returns the user's session, creating the initial state on
// first contact. The created flag distinguishes the two.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*Session, bool, error) {
	sess, err := s.store.Get(ctx, userID)
	if err == nil {
		return sess, false, nil
	}
	if errors.Is(err, ErrSessionNotFound) {
		return NewSession(userID), true, nil
	}
	return nil, false, err
}

// HandleMessage advances the conversation by one turn and persists the
// updated session. Unlike diagnosis history, a failed save here is a hard
// error: losing session state breaks the conversation.
func (s *Service) HandleMessage(ctx context.Context, userID, text string) (*Session, string, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess, _, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	conditions, err := s.catalog.Conditions(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("loading condition catalog: %w", err)
	}

	reply := s.machine.Advance(sess, text, conditions)

	now := time.Now().UTC()
	sess.Append(SenderUser, text, now)
	sess.Append(SenderAssistant, reply, now)
	sess.UpdatedAt = now

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, "", err
	}

	return sess, reply, nil
}

// History returns the transcript; users without a session get an empty one.
func (s *Service) History(ctx context.Context, userID string) ([]Message, error) {
	sess, err := s.store.Get(ctx, userID)
	if errors.Is(err, ErrSessionNotFound) {
		return []Message{}, nil
	}
	if err != nil {
		return nil, err
	}
	return sess.Messages, nil
}
