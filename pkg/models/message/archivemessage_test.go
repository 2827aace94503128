package message

import (
	"testing"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
)

func TestArchiveMessageWireRoundTrip(t *testing.T) {
	sent := ArchiveMessage{
		TimeStamp:   Now(),
		SessionUid:  NewSessionUid(),
		Kind:        KindMove,
		Step:        3,
		Player:      "Left",
		Color:       "Blue",
		MoveEdge:    "(0, 0, V)",
		Destroyed:   []board.Square{board.NewSquare(0, 0), board.NewSquare(0, 1)},
		ActiveAfter: 2,
	}

	got, err := NewArchiveMessage(sent.String())
	if err != nil {
		t.Fatal(err)
	}

	if got.SessionUid != sent.SessionUid || got.Kind != sent.Kind || got.Step != sent.Step {
		t.Fatalf("round trip changed the message: %+v", got)
	}
	if len(got.Destroyed) != 2 || got.Destroyed[0] != sent.Destroyed[0] {
		t.Fatalf("Destroyed = %v, want %v", got.Destroyed, sent.Destroyed)
	}
}

func TestNewArchiveMessageRejectsGarbage(t *testing.T) {
	if _, err := NewArchiveMessage("not json"); err == nil {
		t.Fatal("garbage payload decoded without error")
	}
}

func TestArchivedKeyDistinguishesEvents(t *testing.T) {
	uid := NewSessionUid()

	keys := []ArchivedKey{
		{SessionUid: uid, Kind: KindGameStart},
		{SessionUid: uid, Kind: KindMove, Step: 1, MoveEdge: "(0, 0, H)"},
		{SessionUid: uid, Kind: KindMove, Step: 2, MoveEdge: "(0, 0, V)"},
		{SessionUid: uid, Kind: KindGameEnd, Step: 2},
	}

	seen := make(map[string]struct{})
	for _, k := range keys {
		s := k.String()
		if _, c := seen[s]; c {
			t.Fatalf("duplicate archived key %s", s)
		}
		seen[s] = struct{}{}
	}
}
