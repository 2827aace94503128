package logic

import (
	"errors"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
	"github.com/Spyder-19/Fragmented-Squares/serve/internal/types"
)

var ErrBadOrientation = errors.New(`orientation must be "H" or "V"`)

func parseEdge(p types.EdgeParam) (board.Edge, error) {
	switch p.O {
	case board.Horizontal.String():
		return board.NewEdge(p.R, p.C, board.Horizontal), nil
	case board.Vertical.String():
		return board.NewEdge(p.R, p.C, board.Vertical), nil
	}
	return board.Edge{}, ErrBadOrientation
}

func edgeParam(e board.Edge) types.EdgeParam {
	return types.EdgeParam{R: e.R, C: e.C, O: e.Orientation.String()}
}

func squareParams(squares []board.Square) (params []types.SquareParam) {
	for _, sq := range squares {
		params = append(params, types.SquareParam{R: sq.R, C: sq.C})
	}
	return
}

func winnerName(p board.Player) string {
	if p == 0 {
		return ""
	}
	return p.String()
}

func stateOf(uid message.SessionUid, shapeName string, g *board.Game) (state types.SessionState) {
	state = types.SessionState{
		SessionUid:        string(uid),
		Shape:             shapeName,
		CurrentPlayer:     g.NowPlayer.String(),
		Winner:            winnerName(g.Winner),
		GameOver:          g.Over(),
		ActiveSquareCount: g.ActiveCount(),
		ActiveSquares:     squareParams(g.ActiveSquares()),
		StepCount:         g.StepCount(),
	}

	for _, es := range g.EdgeStates() {
		state.Edges = append(state.Edges, types.EdgeStateParam{
			R:      es.Edge.R,
			C:      es.Edge.C,
			O:      es.Edge.Orientation.String(),
			Color:  es.Color.String(),
			Exists: es.Exists,
		})
	}

	minR, minC, maxR, maxC := g.Graph.Shape.BoundingBox()
	state.BoundingBox = types.BoundingBox{MinR: minR, MinC: minC, MaxR: maxR, MaxC: maxC}
	return
}
