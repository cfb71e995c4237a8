package usecase

import (
	"sync"
	"time"

	"wondershop/internal/domain/entities"
)

// sessionSlot guards one user's dialogue instance. Every event for the user
// runs with mu held, so a double-submitted button is processed one at a time.
type sessionSlot struct {
	mu      sync.Mutex
	refs    int
	session *entities.Session
}

// sessionTable maps user id to slot.
//
// Lock order is table then slot. A slot is dropped once no event holds it and
// it carries no live session.
type sessionTable struct {
	mu    sync.Mutex
	slots map[string]*sessionSlot
}

func newSessionTable() *sessionTable {
	return &sessionTable{slots: make(map[string]*sessionSlot)}
}

func (t *sessionTable) acquire(userID string) *sessionSlot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.slots[userID]
	if !ok {
		s = &sessionSlot{}
		t.slots[userID] = s
	}
	s.refs++
	return s
}

func (t *sessionTable) release(userID string, s *sessionSlot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s.refs--
	if s.refs > 0 {
		return
	}
	s.mu.Lock()
	idle := s.session == nil
	s.mu.Unlock()
	if idle && t.slots[userID] == s {
		delete(t.slots, userID)
	}
}

func (t *sessionTable) peek(userID string) (entities.Session, bool) {
	t.mu.Lock()
	s, ok := t.slots[userID]
	t.mu.Unlock()
	if !ok {
		return entities.Session{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return entities.Session{}, false
	}
	return *s.session, true
}

// sweep drops sessions idle for longer than ttl and returns how many it evicted.
// Slots currently held by an event are left alone.
func (t *sessionTable) sweep(now time.Time, ttl time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	evicted := 0
	for userID, s := range t.slots {
		if s.refs > 0 {
			continue
		}
		s.mu.Lock()
		live := s.session != nil
		stale := !live || expired(s.session, now, ttl)
		s.mu.Unlock()
		if !stale {
			continue
		}
		if live {
			evicted++
		}
		delete(t.slots, userID)
	}
	return evicted
}

func (t *sessionTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}

func expired(s *entities.Session, now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.UpdatedAt) > ttl
}
