package types

type SquareParam struct {
	R int `json:"r"`
	C int `json:"c"`
}

type EdgeParam struct {
	R int    `json:"r"`
	C int    `json:"c"`
	O string `json:"o"`
}

type EdgeStateParam struct {
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
	SessionUid        string           `json:"sessionUid"`
	Shape             string           `json:"shape"`
	CurrentPlayer     string           `json:"currentPlayer"`
	Winner            string           `json:"winner,omitempty"`
	GameOver          bool             `json:"gameOver"`
	ActiveSquareCount int              `json:"activeSquareCount"`
	ActiveSquares     []SquareParam    `json:"activeSquares"`
	Edges             []EdgeStateParam `json:"edges"`
	BoundingBox       BoundingBox      `json:"boundingBox"`
	StepCount         int              `json:"stepCount"`
}

type NewSessionRequest struct {
}

type ResetSessionRequest struct {
	SessionUid string `json:"sessionUid"`
}

type SubmitMoveRequest struct {
	SessionUid string    `json:"sessionUid"`
	Edge       EdgeParam `json:"edge"`
}

type SubmitMoveResponse struct {
	Accepted  bool          `json:"accepted"`
	Reason    string        `json:"reason,omitempty"`
	Destroyed []SquareParam `json:"destroyed"`
	GameOver  bool          `json:"gameOver"`
	Winner    string        `json:"winner,omitempty"`
}

type QueryStateRequest struct {
	SessionUid string `form:"uid"`
}

type LegalMovesRequest struct {
	SessionUid string `form:"uid"`
}

type LegalMovesResponse struct {
	CurrentPlayer string      `json:"currentPlayer"`
	Edges         []EdgeParam `json:"edges"`
}
