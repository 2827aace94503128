package board

import (
	"errors"
	"math/rand"
)

var (
	ErrGameOver    = errors.New("game already decided")
	ErrUnknownEdge = errors.New("edge is not part of the board")
	ErrEdgeRemoved = errors.New("edge already removed")
	ErrWrongColor  = errors.New("edge color does not match the player")
	ErrDeadEdge    = errors.New("edge borders no active square")
)

// Move is one committed history entry.
type Move struct {
	Player      Player
	Edge        Edge
	Color       Color
	Destroyed   []Square
	ActiveAfter int
	GameOver    bool
	Winner      Player
}

// MoveResult reports the outcome of a single accepted move.
type MoveResult struct {
	Destroyed []Square
	GameOver  bool
	Winner    Player
}

// EdgeState is one entry of a full-board snapshot.
type EdgeState struct {
	Edge   Edge
	Color  Color
	Exists bool
}

// Game holds the mutable state of one Fragmented Squares session. Left removes
// blue edges, Right removes red ones; removing an edge destroys every active
// square it borders. Destroying the last square wins, and a player left
// without a legal move loses.
type Game struct {
	Graph     Graph
	Removed   map[Edge]struct{}
	Active    map[Square]struct{}
	NowPlayer Player
	Winner    Player
	History   []Move
}

func NewGame(shape Shape, r *rand.Rand) *Game {
	g := &Game{
		Graph:     NewGraph(shape, r),
		Removed:   make(map[Edge]struct{}),
		Active:    make(map[Square]struct{}, len(shape)),
		NowPlayer: LeftPlayer,
	}

	for sq := range shape {
		g.Active[sq] = struct{}{}
	}

	// A coloring may leave the opening player with no edge of their color.
	if !g.HasLegalMove(g.NowPlayer) {
		g.Winner = g.NowPlayer.Opponent()
	}

	return g
}

func (g *Game) Over() bool {
	return g.Winner != 0
}

func (g *Game) ActiveCount() int {
	return len(g.Active)
}

func (g *Game) StepCount() int {
	return len(g.History)
}

func (g *Game) Exists(e Edge) bool {
	if !g.Graph.Contains(e) {
		return false
	}
	_, removed := g.Removed[e]
	return !removed
}

func (g *Game) ActiveSquares() (squares []Square) {
	for sq := range g.Active {
		squares = append(squares, sq)
	}
	sortSquares(squares)
	return
}

func (g *Game) EdgeStates() (states []EdgeState) {
	for _, e := range g.Graph.Edges() {
		_, removed := g.Removed[e]
		states = append(states, EdgeState{
			Edge:   e,
			Color:  g.Graph.Colors[e],
			Exists: !removed,
		})
	}
	return
}

func (g *Game) checkFor(e Edge, p Player) error {
	if g.Over() {
		return ErrGameOver
	}

	color, c := g.Graph.Colors[e]
	if !c {
		return ErrUnknownEdge
	}

	if _, removed := g.Removed[e]; removed {
		return ErrEdgeRemoved
	}

	if color != p.Color() {
		return ErrWrongColor
	}

	if !g.bordersActive(e) {
		return ErrDeadEdge
	}

	return nil
}

func (g *Game) bordersActive(e Edge) bool {
	for _, sq := range g.Graph.NearSquares(e) {
		if _, active := g.Active[sq]; active {
			return true
		}
	}
	return false
}

// Check reports why e is not a legal move for the current player, nil if it is.
func (g *Game) Check(e Edge) error {
	return g.checkFor(e, g.NowPlayer)
}

func (g *Game) IsLegal(e Edge) bool {
	return g.Check(e) == nil
}

// HasLegalMove reports whether p still owns a removable edge that borders an
// active square.
func (g *Game) HasLegalMove(p Player) bool {
	for e, color := range g.Graph.Colors {
		if color != p.Color() {
			continue
		}

		if _, removed := g.Removed[e]; removed {
			continue
		}

		if g.bordersActive(e) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal edge for the current player in a stable order.
func (g *Game) LegalMoves() (legal []Edge) {
	for _, e := range g.Graph.Edges() {
		if g.IsLegal(e) {
			legal = append(legal, e)
		}
	}
	return
}

// Move removes e for the current player and cascades square destruction. An
// illegal move returns an error without touching any state. The mover wins by
// destroying the last active square; otherwise the turn passes, and if the
// opponent has no legal move left the opponent loses.
func (g *Game) Move(e Edge) (MoveResult, error) {
	if err := g.Check(e); err != nil {
		return MoveResult{}, err
	}

	mover := g.NowPlayer
	g.Removed[e] = struct{}{}

	var destroyed []Square
	for _, sq := range g.Graph.NearSquares(e) {
		if _, active := g.Active[sq]; active {
			delete(g.Active, sq)
			destroyed = append(destroyed, sq)
		}
	}
	sortSquares(destroyed)

	if len(g.Active) == 0 {
		g.Winner = mover
	} else {
		g.NowPlayer = mover.Opponent()
		if !g.HasLegalMove(g.NowPlayer) {
			g.Winner = mover
		}
	}

	g.History = append(g.History, Move{
		Player:      mover,
		Edge:        e,
		Color:       g.Graph.Colors[e],
		Destroyed:   destroyed,
		ActiveAfter: len(g.Active),
		GameOver:    g.Over(),
		Winner:      g.Winner,
	})

	return MoveResult{
		Destroyed: destroyed,
		GameOver:  g.Over(),
		Winner:    g.Winner,
	}, nil
}
