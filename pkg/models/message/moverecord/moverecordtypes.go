package moverecord

import (
	"time"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	Step        int
	Player      string
	Color       string
	MoveEdge    string
	Destroyed   []board.Square
	ActiveAfter int
}
