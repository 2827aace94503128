package pusher

import (
	"errors"
	"testing"
	"time"
)

func TestPushAllDrainsBuffer(t *testing.T) {
	var got []string
	p := NewPusher(WithPushLogic(func(messages ...string) error {
		got = append(got, messages...)
		return nil
	}))

	p.AddMessages("a", "b")
	p.AddMessages("c")
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}

	if err := p.PushAll(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("pushed %v, want [a b c]", got)
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d after PushAll, want 0", p.Len())
	}
}

func TestPushAllEmptyBufferSkipsPushLogic(t *testing.T) {
	called := false
	p := NewPusher(WithPushLogic(func(...string) error {
		called = true
		return nil
	}))

	if err := p.PushAll(); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Fatal("PushLogic called with an empty buffer")
	}
}

func TestPushAllKeepsBufferOnError(t *testing.T) {
	pushErr := errors.New("push failed")
	p := NewPusher(WithPushLogic(func(...int) error {
		return pushErr
	}))

	p.AddMessages(1, 2)
	if err := p.PushAll(); !errors.Is(err, pushErr) {
		t.Fatalf("PushAll() error = %v, want %v", err, pushErr)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d after failed push, want 2", p.Len())
	}
}

func TestStartPushesPeriodically(t *testing.T) {
	pushed := make(chan string, 8)
	p := NewPusher(
		WithPushLogic(func(messages ...string) error {
			for _, m := range messages {
				pushed <- m
			}
			return nil
		}),
		WithPushInterval[string](10*time.Millisecond),
	)

	p.AddMessages("tick")
	p.Start()
	defer p.Stop()

	select {
	case m := <-pushed:
		if m != "tick" {
			t.Fatalf("pushed %q, want %q", m, "tick")
		}
	case <-time.After(time.Second):
		t.Fatal("message never pushed")
	}
}
