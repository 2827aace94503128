package moverecord

import (
	"time"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	SessionUid  message.SessionUid
	Shape       string
	SquareCount int
	EdgeCount   int
}
