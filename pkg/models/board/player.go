package board

type Player int8

const (
	LeftPlayer  Player = 1
	RightPlayer Player = -1
)

func (p Player) String() string {
	switch p {
	case LeftPlayer:
		return "Left"
	case RightPlayer:
		return "Right"
	}
	return ""
}

func (p Player) Opponent() Player {
	return -p
}

func (p Player) Color() Color {
	switch p {
	case LeftPlayer:
		return Blue
	case RightPlayer:
		return Red
	}
	return 0
}

type Color int8

const (
	Blue Color = 1
	Red  Color = -1
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	}
	return ""
}

func (c Color) Player() Player {
	switch c {
	case Blue:
		return LeftPlayer
	case Red:
		return RightPlayer
	}
	return 0
}
