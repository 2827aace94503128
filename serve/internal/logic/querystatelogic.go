package logic

import (
	"context"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/svc"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type QueryStateLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewQueryStateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *QueryStateLogic {
	return &QueryStateLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *QueryStateLogic) QueryState(req *types.QueryStateRequest) (*types.SessionState, error) {
	sess, err := l.svcCtx.Sessions.Get(message.SessionUid(req.SessionUid))
	if err != nil {
		return nil, err
	}

	var state types.SessionState
	_ = sess.Do(func(g *board.Game) error {
		state = stateOf(sess.Uid, l.svcCtx.Config.Shape, g)
		return nil
	})

	return &state, nil
}
