package input

import (
	"fmt"
	"sort"
	"strings"

	"gallerycrawl/pkg/engine/world"
)

// Action represents a high-level intent of the viewer
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionResetLevel
	ActionNextLevel
	ActionQuit
)

// Intent is the high-level description of what the viewer wants to do
type Intent struct {
	Action Action
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (arrows, compass, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	"r":     ActionResetLevel,
	"reset": ActionResetLevel,
	">":     ActionNextLevel,
	"next":  ActionNextLevel,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the bindings to a key code
func MapToIntent(code string) Intent {
	if act, ok := bindings[strings.ToLower(code)]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Direction returns the movement direction of a move action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	}
	return 0, false
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionResetLevel:
		return "Reset Level"
	case ActionNextLevel:
		return "Next Level"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action, codes sorted
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// ParseRoute turns a route such as "nneew" or "north,north,east" into
// directions. Every token must be bound to a move action.
func ParseRoute(route string) ([]world.Direction, error) {
	var tokens []string
	if strings.ContainsAny(route, ", ") {
		tokens = strings.FieldsFunc(route, func(r rune) bool { return r == ',' || r == ' ' })
	} else {
		for _, r := range route {
			tokens = append(tokens, string(r))
		}
	}

	dirs := make([]world.Direction, 0, len(tokens))
	for _, tok := range tokens {
		dir, ok := MapToIntent(tok).Action.Direction()
		if !ok {
			return nil, fmt.Errorf("route step %q is not a direction", tok)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}
