package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ GameEndRecordModel = (*defaultGameEndRecordModel)(nil)

type GameEndRecordModel interface {
	Insert(ctx context.Context, data *GameEndRecord) error
}

type defaultGameEndRecordModel struct {
	conn *mon.Model
}

// NewGameEndRecordModel returns a model for the mongo.
func NewGameEndRecordModel(url, db, collection string) GameEndRecordModel {
	return &defaultGameEndRecordModel{
		conn: mon.MustNewModel(url, db, collection),
	}
}

func (m *defaultGameEndRecordModel) Insert(ctx context.Context, data *GameEndRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}
