package game

// State is the authoritative game phase owned by the loop.
type State int32

const (
	StateMenu State = iota
	StatePlaying
	StateWin
	StateLose
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Direction is the player's steering intent.
type Direction int32

const (
	DirStop  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "stop"
	}
}
