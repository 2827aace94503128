package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ MoveRecordModel = (*defaultMoveRecordModel)(nil)

type MoveRecordModel interface {
	Insert(ctx context.Context, data *MoveRecord) error
}

type defaultMoveRecordModel struct {
	conn *mon.Model
}

// NewMoveRecordModel returns a model for the mongo. Each session archives into
// its own collection named by the session uid.
func NewMoveRecordModel(url, db, collection string) MoveRecordModel {
	return &defaultMoveRecordModel{
		conn: mon.MustNewModel(url, db, collection),
	}
}

func (m *defaultMoveRecordModel) Insert(ctx context.Context, data *MoveRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}
