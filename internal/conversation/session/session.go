// Package session keeps one conversation context per chat and serializes the
// turns of each chat.
package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-assistant/internal/conversation"
)

type entry struct {
	mu sync.Mutex
	cc conversation.Context

	// guarded by Store.mu
	refs    int
	dropped bool
}

// Store is an in-memory, size-bounded session store. Sessions idle longer
// than the TTL are dropped. Sessions with a turn in flight are tracked
// outside the LRU so eviction never splits one session in two.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *entry]
	active   map[string]*entry
}

// New creates a store holding at most size sessions.
func New(size int, ttl time.Duration) *Store {
	return &Store{
		sessions: expirable.NewLRU[string, *entry](size, nil, ttl),
		active:   make(map[string]*entry),
	}
}

func (s *Store) acquire(key string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.active[key]
	if !ok {
		if e, ok = s.sessions.Get(key); !ok {
			e = &entry{}
			s.sessions.Add(key, e)
		}
		s.active[key] = e
	}
	e.refs++
	return e
}

func (s *Store) release(key string, e *entry, save bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.refs--
	if save && !e.dropped {
		s.sessions.Add(key, e)
	}
	if e.refs == 0 && s.active[key] == e {
		delete(s.active, key)
	}
}

func (s *Store) isDropped(e *entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return e.dropped
}

// Run calls fn with the current context of key and stores the context it
// returns. Calls for the same key never overlap. A Reset while a call is
// waiting makes it start from an empty context.
func (s *Store) Run(key string, fn func(cc conversation.Context) conversation.Context) conversation.Context {
	for {
		if out, ok := s.runOnce(key, fn); ok {
			return out
		}
	}
}

// runOnce reports false when the session was reset while waiting.
func (s *Store) runOnce(key string, fn func(cc conversation.Context) conversation.Context) (conversation.Context, bool) {
	e := s.acquire(key)
	saved := false
	defer func() { s.release(key, e, saved) }()

	e.mu.Lock()
	defer e.mu.Unlock()
	if s.isDropped(e) {
		return conversation.Context{}, false
	}

	e.cc = fn(e.cc.Clone())
	saved = true
	return e.cc.Clone(), true
}

// Get returns a copy of the context stored for key.
func (s *Store) Get(key string) (conversation.Context, bool) {
	s.mu.Lock()
	e, ok := s.active[key]
	if !ok {
		e, ok = s.sessions.Peek(key)
	}
	s.mu.Unlock()
	if !ok {
		return conversation.Context{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cc.Clone(), true
}

// Reset forgets key. It reports whether a session existed. A turn in
// flight for key finishes but its result is not stored.
func (s *Store) Reset(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existed := s.sessions.Remove(key)
	if e, ok := s.active[key]; ok {
		e.dropped = true
		delete(s.active, key)
		existed = true
	}
	return existed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
