package logic

import (
	"context"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/svc"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type LegalMovesLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLegalMovesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LegalMovesLogic {
	return &LegalMovesLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// LegalMoves lists every edge the current player may remove, typically used
// by clients to highlight candidate moves. A decided game has none.
func (l *LegalMovesLogic) LegalMoves(req *types.LegalMovesRequest) (*types.LegalMovesResponse, error) {
	sess, err := l.svcCtx.Sessions.Get(message.SessionUid(req.SessionUid))
	if err != nil {
		return nil, err
	}

	resp := &types.LegalMovesResponse{}
	_ = sess.Do(func(g *board.Game) error {
		resp.CurrentPlayer = g.NowPlayer.String()
		for _, e := range g.LegalMoves() {
			resp.Edges = append(resp.Edges, edgeParam(e))
		}
		return nil
	})

	return resp, nil
}
