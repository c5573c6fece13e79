package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows hosts to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, H, Left arrow - steer ship left
	ActionRight        // D, L, Right arrow - steer ship right
	ActionStop         // S, J, Down arrow - stop the ship
	ActionShoot        // Space, W, Up arrow - fire
	ActionStart        // Enter - start or restart from a menu/result screen
	ActionHelp         // ? - show or hide the key help in the HUD
	ActionQuit         // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionShoot:
		return "Shoot"
	case ActionStart:
		return "Start"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
