// A scripted agent that plays Fragmented Squares against the serve API with
// uniformly random legal moves. One game prints the board after every move;
// batch mode tallies winners over many games.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/model"
	"github.com/logrusorgru/aurora"
)

func main() {
	initConfig()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if *Games <= 1 {
		winner, steps, err := PlayOneGame(r)
		if err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("%s wins after %d move(s)\n", playerName(winner), steps)
		return
	}

	bar := model.NewBar(*Games, "Simulating games...")
	wins := make(map[string]int)

	for range *Games {
		winner, _, err := PlayOneGame(r)
		if err != nil {
			log.Fatalln(err)
		}

		wins[winner]++
		bar.Add(1)
	}

	bar.Close()
	fmt.Println()
	fmt.Printf("%s %d : %d %s\n", aurora.Blue("Left"), wins["Left"], wins["Right"], aurora.Red("Right"))
}
