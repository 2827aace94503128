package main

import (
	"fmt"
	"math/rand"
	"time"
)

// PlayOneGame drives a full random playout against the serve API and returns
// the winner's name and the number of accepted moves.
func PlayOneGame(r *rand.Rand) (winner string, steps int, err error) {
	state, err := NewSession()
	if err != nil {
		return "", 0, err
	}

	uid := state.SessionUid
	if Verbose {
		fmt.Printf("Session %s, shape %q\n", uid, state.Shape)
		PrintBoard(state)
	}

	for {
		legal, err := LegalMoves(uid)
		if err != nil {
			return "", steps, err
		}

		if len(legal.Edges) == 0 {
			state, err = QueryState(uid)
			if err != nil {
				return "", steps, err
			}
			return state.Winner, steps, nil
		}

		move := legal.Edges[r.Intn(len(legal.Edges))]
		res, err := SubmitMove(uid, move)
		if err != nil {
			return "", steps, err
		}

		if !res.Accepted {
			return "", steps, fmt.Errorf("move %v rejected: %s", move, res.Reason)
		}

		steps++

		if Verbose {
			state, err = QueryState(uid)
			if err != nil {
				return "", steps, err
			}
			PrintBoard(state)
		}

		if res.GameOver {
			return res.Winner, steps, nil
		}

		if *MoveDelay > 0 {
			time.Sleep(*MoveDelay)
		}
	}
}
