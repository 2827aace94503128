package logic

import (
	"context"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/svc"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type NewSessionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewNewSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewSessionLogic {
	return &NewSessionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *NewSessionLogic) NewSession(_ *types.NewSessionRequest) (*types.SessionState, error) {
	sess := l.svcCtx.Sessions.New()

	var state types.SessionState
	var startMessage message.ArchiveMessage
	_ = sess.Do(func(g *board.Game) error {
		state = stateOf(sess.Uid, l.svcCtx.Config.Shape, g)
		startMessage = message.ArchiveMessage{
			TimeStamp:   message.Now(),
			SessionUid:  sess.Uid,
			Kind:        message.KindGameStart,
			Shape:       l.svcCtx.Config.Shape,
			SquareCount: g.ActiveCount(),
			EdgeCount:   g.Graph.EdgeCount(),
		}
		return nil
	})

	l.Infof("new session %s: %d squares, %d edges", sess.Uid, state.ActiveSquareCount, len(state.Edges))

	if err := MarkSessionStep(l.svcCtx.RedisClient, sess.Uid, 0); err != nil {
		l.Errorf("mark session step: %v", err)
	}

	if err := PushArchiveMessages(l.svcCtx.RedisClient, l.svcCtx.PartitionPusher, startMessage); err != nil {
		l.Errorf("push archive messages: %v", err)
	}

	return &state, nil
}
