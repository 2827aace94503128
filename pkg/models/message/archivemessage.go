package message

import (
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/bytedance/sonic"
)

type Kind string

const (
	KindGameStart Kind = "GameStart"
	KindMove      Kind = "Move"
	KindGameEnd   Kind = "GameEnd"
)

// ArchiveMessage carries one session event from the serving layer to the
// archive worker. Move fields are only set for KindMove, Winner only for
// KindGameEnd.
type ArchiveMessage struct {
	TimeStamp
	SessionUid
	Kind        Kind
	Shape       string         `json:",omitempty"`
	SquareCount int            `json:",omitempty"`
	EdgeCount   int            `json:",omitempty"`
	Step        int            `json:",omitempty"`
	Player      string         `json:",omitempty"`
	Color       string         `json:",omitempty"`
	MoveEdge    string         `json:",omitempty"`
	Destroyed   []board.Square `json:",omitempty"`
	ActiveAfter int            `json:",omitempty"`
	Winner      string         `json:",omitempty"`
}

func NewArchiveMessage(str string) (newArchiveMessage ArchiveMessage, err error) {
	err = sonic.UnmarshalString(str, &newArchiveMessage)
	return
}

func (m ArchiveMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

// ArchivedKey marks a session event as already written to mongo, so a
// re-queued message is dropped instead of inserted twice.
type ArchivedKey struct {
	SessionUid
	Kind     Kind
	Step     int
	MoveEdge string `json:",omitempty"`
}

func (k ArchivedKey) String() string {
	s, _ := sonic.MarshalString(k)
	return s
}
