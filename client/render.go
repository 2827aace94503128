package main

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

type edgeKey struct {
	R int
	C int
	O string
}

// PrintBoard draws the current board in the terminal: blue and red lines for
// remaining edges, shaded cells for squares not yet destroyed.
func PrintBoard(state SessionState) {
	edges := make(map[edgeKey]EdgeState)
	for _, e := range state.Edges {
		edges[edgeKey{R: e.R, C: e.C, O: e.O}] = e
	}

	active := make(map[Square]struct{})
	for _, sq := range state.ActiveSquares {
		active[sq] = struct{}{}
	}

	box := state.BoundingBox
	var b strings.Builder

	for r := box.MinR; r <= box.MaxR+1; r++ {
		for c := box.MinC; c <= box.MaxC; c++ {
			b.WriteString("+")
			b.WriteString(horizontalCell(edges, r-1, c))
		}
		b.WriteString("+\n")

		if r > box.MaxR {
			break
		}

		for c := box.MinC; c <= box.MaxC; c++ {
			b.WriteString(verticalCell(edges, r, c-1))
			if _, c := active[Square{R: r, C: c}]; c {
				b.WriteString("░░░")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(verticalCell(edges, r, box.MaxC))
		b.WriteString("\n")
	}

	fmt.Print(b.String())

	if state.GameOver {
		fmt.Printf("Winner: %s\n\n", playerName(state.Winner))
	} else {
		fmt.Printf("Turn: %s, %d active square(s)\n\n", playerName(state.CurrentPlayer), state.ActiveSquareCount)
	}
}

func horizontalCell(edges map[edgeKey]EdgeState, r, c int) string {
	e, ok := edges[edgeKey{R: r, C: c, O: "H"}]
	if !ok || !e.Exists {
		return "   "
	}
	return colorize(e.Color, "───")
}

func verticalCell(edges map[edgeKey]EdgeState, r, c int) string {
	e, ok := edges[edgeKey{R: r, C: c, O: "V"}]
	if !ok || !e.Exists {
		return " "
	}
	return colorize(e.Color, "│")
}

func colorize(color, s string) string {
	switch color {
	case "Blue":
		return aurora.Blue(s).String()
	case "Red":
		return aurora.Red(s).String()
	}
	return s
}

func playerName(player string) string {
	switch player {
	case "Left":
		return aurora.Blue("Left").String()
	case "Right":
		return aurora.Red("Right").String()
	}
	return player
}
