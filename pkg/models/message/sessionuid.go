package message

import "github.com/google/uuid"

type SessionUid string

func NewSessionUid() SessionUid {
	return SessionUid(uuid.New().String())
}
