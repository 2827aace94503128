package logic

import (
	"context"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/svc"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type SubmitMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSubmitMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitMoveLogic {
	return &SubmitMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// SubmitMove applies a single edge removal. An illegal move leaves the session
// untouched and comes back as accepted=false with the reason; only an unknown
// session uid is a transport-level error.
func (l *SubmitMoveLogic) SubmitMove(req *types.SubmitMoveRequest) (*types.SubmitMoveResponse, error) {
	sess, err := l.svcCtx.Sessions.Get(message.SessionUid(req.SessionUid))
	if err != nil {
		return nil, err
	}

	edge, err := parseEdge(req.Edge)
	if err != nil {
		return &types.SubmitMoveResponse{Accepted: false, Reason: err.Error()}, nil
	}

	var res board.MoveResult
	var step int
	var moveMessage message.ArchiveMessage
	moveErr := sess.Do(func(g *board.Game) error {
		r, err := g.Move(edge)
		if err != nil {
			return err
		}

		res = r
		step = g.StepCount()
		last := g.History[len(g.History)-1]
		moveMessage = message.ArchiveMessage{
			TimeStamp:   message.Now(),
			SessionUid:  sess.Uid,
			Kind:        message.KindMove,
			Step:        step,
			Player:      last.Player.String(),
			Color:       last.Color.String(),
			MoveEdge:    last.Edge.String(),
			Destroyed:   last.Destroyed,
			ActiveAfter: last.ActiveAfter,
		}
		return nil
	})

	if moveErr != nil {
		l.Infof("session %s: rejected %s: %v", sess.Uid, edge, moveErr)
		return &types.SubmitMoveResponse{Accepted: false, Reason: moveErr.Error()}, nil
	}

	l.Infof("session %s: %s removed %s, destroyed %d square(s)", sess.Uid, moveMessage.Player, edge, len(res.Destroyed))

	messages := []message.ArchiveMessage{moveMessage}
	if res.GameOver {
		messages = append(messages, message.ArchiveMessage{
			TimeStamp:  message.Now(),
			SessionUid: sess.Uid,
			Kind:       message.KindGameEnd,
			Step:       step,
			Winner:     res.Winner.String(),
		})

		if err := ClearSession(l.svcCtx.RedisClient, sess.Uid); err != nil {
			l.Errorf("clear session: %v", err)
		}
	} else {
		if err := MarkSessionStep(l.svcCtx.RedisClient, sess.Uid, step); err != nil {
			l.Errorf("mark session step: %v", err)
		}
	}

	if err := PushArchiveMessages(l.svcCtx.RedisClient, l.svcCtx.PartitionPusher, messages...); err != nil {
		l.Errorf("push archive messages: %v", err)
	}

	return &types.SubmitMoveResponse{
		Accepted:  true,
		Destroyed: squareParams(res.Destroyed),
		GameOver:  res.GameOver,
		Winner:    winnerName(res.Winner),
	}, nil
}
