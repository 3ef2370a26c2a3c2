package core

// Action represents a semantic game action, abstracted from physical key presses.
// Backends translate their key events into actions; the game never sees keys.
type Action int

const (
	ActionNone                Action = iota
	ActionTurnLeft                   // Left arrow - rotate heading one sector counter-clockwise
	ActionTurnRight                  // Right arrow - rotate heading one sector clockwise
	ActionAccelerate                 // Up arrow - speed +0.1
	ActionDecelerate                 // Down arrow - speed -0.1
	ActionToggleNoClip               // N - walk through walls
	ActionToggleSpeedLimit           // S - clamp speed to [0, 1]
	ActionToggleInvincibility        // U - ignore damage
	ActionQuit                       // Q, Esc, Ctrl+C - end the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionAccelerate:
		return "Accelerate"
	case ActionDecelerate:
		return "Decelerate"
	case ActionToggleNoClip:
		return "ToggleNoClip"
	case ActionToggleSpeedLimit:
		return "ToggleSpeedLimit"
	case ActionToggleInvincibility:
		return "ToggleInvincibility"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey maps a normalized key name to an action. Key names follow the
// Bubble Tea convention ("left", "esc", "ctrl+c", "n"). Unknown keys map to
// ActionNone.
func ActionForKey(key string) Action {
	switch key {
	case "left":
		return ActionTurnLeft
	case "right":
		return ActionTurnRight
	case "up":
		return ActionAccelerate
	case "down":
		return ActionDecelerate
	case "n":
		return ActionToggleNoClip
	case "s":
		return ActionToggleSpeedLimit
	case "u":
		return ActionToggleInvincibility
	case "q", "esc", "ctrl+c":
		return ActionQuit
	}
	return ActionNone
}
