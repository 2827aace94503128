package main

// Wire mirrors of the serve API payloads.

type Square struct {
	R int `json:"r"`
	C int `json:"c"`
}

type Edge struct {
	R int    `json:"r"`
	C int    `json:"c"`
	O string `json:"o"`
}

type EdgeState struct {
	R      int    `json:"r"`
	C      int    `json:"c"`
	O      string `json:"o"`
	Color  string `json:"color"`
	Exists bool   `json:"exists"`
}

type BoundingBox struct {
	MinR int `json:"minR"`
	MinC int `json:"minC"`
	MaxR int `json:"maxR"`
	MaxC int `json:"maxC"`
}

type SessionState struct {
	SessionUid        string      `json:"sessionUid"`
	Shape             string      `json:"shape"`
	CurrentPlayer     string      `json:"currentPlayer"`
	Winner            string      `json:"winner"`
	GameOver          bool        `json:"gameOver"`
	ActiveSquareCount int         `json:"activeSquareCount"`
	ActiveSquares     []Square    `json:"activeSquares"`
	Edges             []EdgeState `json:"edges"`
	BoundingBox       BoundingBox `json:"boundingBox"`
	StepCount         int         `json:"stepCount"`
}

type ResetSessionRequest struct {
	SessionUid string `json:"sessionUid"`
}

type SubmitMoveRequest struct {
	SessionUid string `json:"sessionUid"`
	Edge       Edge   `json:"edge"`
}

type SubmitMoveResponse struct {
	Accepted  bool     `json:"accepted"`
	Reason    string   `json:"reason"`
	Destroyed []Square `json:"destroyed"`
	GameOver  bool     `json:"gameOver"`
	Winner    string   `json:"winner"`
}

type LegalMovesResponse struct {
	CurrentPlayer string `json:"currentPlayer"`
	Edges         []Edge `json:"edges"`
}
