package board

import (
	"errors"
	"math/rand"
	"testing"
)

// paintAll overrides the random coloring for scripted scenarios, then redoes
// the opening stall check NewGame performs.
func paintAll(g *Game, color Color) {
	for e := range g.Graph.Colors {
		g.Graph.Colors[e] = color
	}

	g.Winner = 0
	if !g.HasLegalMove(g.NowPlayer) {
		g.Winner = g.NowPlayer.Opponent()
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame(MustShape("two-by-two"), rand.New(rand.NewSource(1)))

	if g.NowPlayer != LeftPlayer {
		t.Errorf("NowPlayer = %v, want %v", g.NowPlayer, LeftPlayer)
	}
	if g.Over() {
		// The only way a fresh game can be decided is an all-red coloring.
		if g.HasLegalMove(LeftPlayer) || g.Winner != RightPlayer {
			t.Errorf("fresh game decided for %v with Left still able to move", g.Winner)
		}
	}
	if g.ActiveCount() != 4 {
		t.Errorf("ActiveCount() = %d, want 4", g.ActiveCount())
	}
	if g.StepCount() != 0 {
		t.Errorf("StepCount() = %d, want 0", g.StepCount())
	}
}

func TestMoveDestroysBothBorderingSquares(t *testing.T) {
	g := NewGame(MustShape("two-by-two"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)

	shared := NewEdge(0, 0, Vertical)
	res, err := g.Move(shared)
	if err != nil {
		t.Fatal(err)
	}

	want := []Square{NewSquare(0, 0), NewSquare(0, 1)}
	if len(res.Destroyed) != 2 || res.Destroyed[0] != want[0] || res.Destroyed[1] != want[1] {
		t.Fatalf("Destroyed = %v, want %v", res.Destroyed, want)
	}
	if g.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, want 2", g.ActiveCount())
	}
}

func TestMoveRejectsWrongColor(t *testing.T) {
	g := NewGame(MustShape("two-by-two"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)

	red := NewEdge(0, 0, Horizontal)
	g.Graph.Colors[red] = Red

	if _, err := g.Move(red); !errors.Is(err, ErrWrongColor) {
		t.Fatalf("Move(red edge) by Left: error = %v, want %v", err, ErrWrongColor)
	}
}

func TestMoveRejectsUnknownAndRemoved(t *testing.T) {
	g := NewGame(MustShape("two-by-two"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)
	g.Graph.Colors[NewEdge(-1, 0, Horizontal)] = Red
	g.Graph.Colors[NewEdge(-1, 1, Horizontal)] = Red

	if _, err := g.Move(NewEdge(9, 9, Horizontal)); !errors.Is(err, ErrUnknownEdge) {
		t.Fatalf("Move(unknown) error = %v, want %v", err, ErrUnknownEdge)
	}

	e := NewEdge(1, 0, Horizontal)
	if _, err := g.Move(e); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Move(e); !errors.Is(err, ErrEdgeRemoved) {
		t.Fatalf("second Move(%v) error = %v, want %v", e, err, ErrEdgeRemoved)
	}
}

func TestMoveRejectsDeadEdge(t *testing.T) {
	g := NewGame(MustShape("two-by-two"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)
	// Right keeps a live red edge so the game continues after Left's move.
	g.Graph.Colors[NewEdge(0, 1, Vertical)] = Red
	dead := NewEdge(0, -1, Vertical)
	g.Graph.Colors[dead] = Red

	// Destroys (0, 0) and (1, 0), leaving dead bordering no active square.
	if _, err := g.Move(NewEdge(0, 0, Horizontal)); err != nil {
		t.Fatal(err)
	}
	if g.Over() {
		t.Fatal("game ended before the dead edge could be tried")
	}

	if _, err := g.Move(dead); !errors.Is(err, ErrDeadEdge) {
		t.Fatalf("Move(dead edge) error = %v, want %v", err, ErrDeadEdge)
	}
}

func TestIllegalMoveLeavesStateUntouched(t *testing.T) {
	g := NewGame(MustShape("two-by-two"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)
	red := NewEdge(0, 0, Horizontal)
	g.Graph.Colors[red] = Red

	active := g.ActiveCount()
	steps := g.StepCount()
	player := g.NowPlayer

	if _, err := g.Move(red); err == nil {
		t.Fatal("illegal move accepted")
	}

	if g.ActiveCount() != active || g.StepCount() != steps || g.NowPlayer != player {
		t.Error("illegal move mutated game state")
	}
	if _, removed := g.Removed[red]; removed {
		t.Error("illegal move removed the edge")
	}
}

func TestLastSquareDestroyerWins(t *testing.T) {
	g := NewGame(MustShape("single"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)

	res, err := g.Move(NewEdge(0, 0, Horizontal))
	if err != nil {
		t.Fatal(err)
	}

	if !res.GameOver || res.Winner != LeftPlayer {
		t.Fatalf("result = %+v, want game over with winner %v", res, LeftPlayer)
	}
	if g.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, want 0", g.ActiveCount())
	}
}

func TestStalledOpponentLoses(t *testing.T) {
	g := NewGame(MustShape("long-strip"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)

	// Right holds no red edge at all, so any Left move that leaves squares
	// standing still decides the game without a further removal.
	res, err := g.Move(NewEdge(-1, 0, Horizontal))
	if err != nil {
		t.Fatal(err)
	}

	if !res.GameOver || res.Winner != LeftPlayer {
		t.Fatalf("result = %+v, want Left winning by stalling Right", res)
	}
	if g.ActiveCount() == 0 {
		t.Fatal("expected active squares to survive the deciding move")
	}
	if g.StepCount() != 1 {
		t.Errorf("StepCount() = %d, want 1", g.StepCount())
	}
}

func TestMoveAfterGameOver(t *testing.T) {
	g := NewGame(MustShape("single"), rand.New(rand.NewSource(1)))
	paintAll(g, Blue)

	if _, err := g.Move(NewEdge(0, 0, Horizontal)); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Move(NewEdge(0, 0, Vertical)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Move after game over: error = %v, want %v", err, ErrGameOver)
	}
}

func TestRandomPlayoutsTerminate(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		for _, name := range ShapeNames() {
			g := NewGame(MustShape(name), r)
			limit := g.Graph.EdgeCount()

			for !g.Over() {
				legal := g.LegalMoves()
				if len(legal) == 0 {
					t.Fatalf("%s seed %d: game not over with no legal moves", name, seed)
				}

				before := g.ActiveCount()
				res, err := g.Move(legal[r.Intn(len(legal))])
				if err != nil {
					t.Fatalf("%s seed %d: %v", name, seed, err)
				}
				if g.ActiveCount() != before-len(res.Destroyed) {
					t.Fatalf("%s seed %d: active count out of step with destroyed squares", name, seed)
				}
				if len(res.Destroyed) > 2 {
					t.Fatalf("%s seed %d: one edge destroyed %d squares", name, seed, len(res.Destroyed))
				}
				if g.StepCount() > limit {
					t.Fatalf("%s seed %d: game exceeded %d moves", name, seed, limit)
				}
			}

			if g.Winner != LeftPlayer && g.Winner != RightPlayer {
				t.Fatalf("%s seed %d: finished game has no winner", name, seed)
			}
			last := g.History[len(g.History)-1]
			if last.Winner != g.Winner || !last.GameOver {
				t.Fatalf("%s seed %d: final history entry %+v disagrees with game", name, seed, last)
			}
		}
	}
}

func TestPlayerOpponentAndColor(t *testing.T) {
	if LeftPlayer.Opponent() != RightPlayer || RightPlayer.Opponent() != LeftPlayer {
		t.Error("Opponent() does not flip players")
	}
	if LeftPlayer.Color() != Blue || RightPlayer.Color() != Red {
		t.Error("player colors are crossed")
	}
	if Blue.Player() != LeftPlayer || Red.Player() != RightPlayer {
		t.Error("color owners are crossed")
	}
}
