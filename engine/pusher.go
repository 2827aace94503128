package main

import (
	"context"
	"time"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message/moverecord"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/pusher"
)

type ArchiveTask struct {
	message.ArchiveMessage
	RollBackFunc func()
}

var Pusher = pusher.NewPusher(pusher.WithPushInterval[ArchiveTask](time.Second), pusher.WithPushLogic(func(tasks ...ArchiveTask) error {
	for _, task := range tasks {
		if err := insertRecord(task.ArchiveMessage); err != nil {
			task.RollBackFunc()
			return err
		}
	}

	return nil
}))

// insertRecord writes one archived event into the session's collection.
func insertRecord(m message.ArchiveMessage) error {
	ctx := context.Background()
	MongoUrl := c.MongoConf.Url
	MongoDataBaseName := c.MongoConf.DataBaseName
	collection := string(m.SessionUid)

	switch m.Kind {
	case message.KindGameStart:
		record := &moverecord.GameStartRecord{
			SessionUid:  m.SessionUid,
			Shape:       m.Shape,
			SquareCount: m.SquareCount,
			EdgeCount:   m.EdgeCount,
		}
		return moverecord.NewGameStartRecordModel(MongoUrl, MongoDataBaseName, collection).Insert(ctx, record)

	case message.KindMove:
		record := &moverecord.MoveRecord{
			Step:        m.Step,
			Player:      m.Player,
			Color:       m.Color,
			MoveEdge:    m.MoveEdge,
			Destroyed:   m.Destroyed,
			ActiveAfter: m.ActiveAfter,
		}
		return moverecord.NewMoveRecordModel(MongoUrl, MongoDataBaseName, collection).Insert(ctx, record)

	case message.KindGameEnd:
		record := &moverecord.GameEndRecord{
			Winner:    m.Winner,
			StepCount: m.Step,
		}
		return moverecord.NewGameEndRecordModel(MongoUrl, MongoDataBaseName, collection).Insert(ctx, record)
	}

	return nil
}
