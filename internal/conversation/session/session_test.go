package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/conversation"
)

func TestStore_RunKeepsContext(t *testing.T) {
	s := New(10, time.Hour)

	s.Run("chat-1", func(cc conversation.Context) conversation.Context {
		cc.LastTaskTitle = "Buy milk"
		return cc
	})

	got, ok := s.Get("chat-1")
	require.True(t, ok)
	assert.Equal(t, "Buy milk", got.LastTaskTitle)

	_, ok = s.Get("chat-2")
	assert.False(t, ok)
}

func TestStore_RunSerializesTurns(t *testing.T) {
	s := New(10, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Run("chat", func(cc conversation.Context) conversation.Context {
				cc.History = append(cc.History, conversation.Message{Role: conversation.RoleUser, Content: "x"})
				return cc
			})
		}()
	}
	wg.Wait()

	got, ok := s.Get("chat")
	require.True(t, ok)
	assert.Len(t, got.History, 50)
}

func TestStore_Reset(t *testing.T) {
	s := New(10, time.Hour)
	s.Run("chat", func(cc conversation.Context) conversation.Context { return cc })

	assert.True(t, s.Reset("chat"))
	assert.False(t, s.Reset("chat"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_EvictsOldestSession(t *testing.T) {
	s := New(2, time.Hour)
	for _, key := range []string{"a", "b", "c"} {
		s.Run(key, func(cc conversation.Context) conversation.Context { return cc })
	}

	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := New(10, time.Hour)
	s.Run("chat", func(cc conversation.Context) conversation.Context {
		cc.PendingAction = &conversation.PendingAction{Type: conversation.PendingSelectTask}
		return cc
	})

	got, _ := s.Get("chat")
	got.PendingAction.Type = conversation.PendingSelectStatus

	again, _ := s.Get("chat")
	assert.Equal(t, conversation.PendingSelectTask, again.PendingAction.Type)
}

func appendTurn(cc conversation.Context, text string) conversation.Context {
	cc.History = append(cc.History, conversation.Message{Role: conversation.RoleUser, Content: text})
	return cc
}

func TestStore_EvictionDuringTurnKeepsTurnsSerialized(t *testing.T) {
	s := New(1, time.Hour)

	entered := make(chan struct{})
	release := make(chan struct{})
	secondEntered := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Run("a", func(cc conversation.Context) conversation.Context {
			close(entered)
			<-release
			return appendTurn(cc, "first")
		})
	}()
	<-entered

	// "b" pushes "a" out of the LRU while its turn is still running.
	s.Run("b", func(cc conversation.Context) conversation.Context { return cc })

	go func() {
		defer wg.Done()
		s.Run("a", func(cc conversation.Context) conversation.Context {
			close(secondEntered)
			return appendTurn(cc, "second")
		})
	}()

	select {
	case <-secondEntered:
		t.Fatal("second turn started while the first was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	wg.Wait()

	got, ok := s.Get("a")
	require.True(t, ok)
	require.Len(t, got.History, 2)
	assert.Equal(t, "first", got.History[0].Content)
	assert.Equal(t, "second", got.History[1].Content)
}

func TestStore_ResetDuringTurnIsNotUndone(t *testing.T) {
	s := New(10, time.Hour)
	s.Run("a", func(cc conversation.Context) conversation.Context {
		cc.LastTaskTitle = "old"
		return cc
	})

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run("a", func(cc conversation.Context) conversation.Context {
			close(entered)
			<-release
			return appendTurn(cc, "in flight")
		})
	}()
	<-entered

	assert.True(t, s.Reset("a"))
	close(release)
	<-done

	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	out := s.Run("a", func(cc conversation.Context) conversation.Context { return cc })
	assert.Empty(t, out.LastTaskTitle)
	assert.Empty(t, out.History)
}

func TestStore_WaitingTurnStartsFreshAfterReset(t *testing.T) {
	s := New(10, time.Hour)
	s.Run("a", func(cc conversation.Context) conversation.Context {
		cc.LastTaskTitle = "old"
		return cc
	})

	entered := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Run("a", func(cc conversation.Context) conversation.Context {
			close(entered)
			<-release
			return cc
		})
	}()
	<-entered

	var seen string
	go func() {
		defer wg.Done()
		s.Run("a", func(cc conversation.Context) conversation.Context {
			seen = cc.LastTaskTitle
			return appendTurn(cc, "after reset")
		})
	}()
	time.Sleep(20 * time.Millisecond)

	s.Reset("a")
	close(release)
	wg.Wait()

	assert.Empty(t, seen)
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Len(t, got.History, 1)
}

func TestStore_PanicReleasesSession(t *testing.T) {
	s := New(10, time.Hour)

	assert.Panics(t, func() {
		s.Run("a", func(cc conversation.Context) conversation.Context { panic("boom") })
	})

	out := s.Run("a", func(cc conversation.Context) conversation.Context { return appendTurn(cc, "next") })
	assert.Len(t, out.History, 1)
}
