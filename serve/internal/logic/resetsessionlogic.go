package logic

import (
	"context"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/svc"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ResetSessionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewResetSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetSessionLogic {
	return &ResetSessionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// ResetSession rebuilds the session's board from the same shape with a fresh
// random coloring and hands the first turn back to Left.
func (l *ResetSessionLogic) ResetSession(req *types.ResetSessionRequest) (*types.SessionState, error) {
	sess, err := l.svcCtx.Sessions.Reset(message.SessionUid(req.SessionUid))
	if err != nil {
		return nil, err
	}

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

	l.Infof("reset session %s", sess.Uid)

	if err := MarkSessionStep(l.svcCtx.RedisClient, sess.Uid, 0); err != nil {
		l.Errorf("mark session step: %v", err)
	}

	if err := PushArchiveMessages(l.svcCtx.RedisClient, l.svcCtx.PartitionPusher, startMessage); err != nil {
		l.Errorf("push archive messages: %v", err)
	}

	return &state, nil
}
