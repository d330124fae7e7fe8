// Package game runs the interactive battle planner.
package game

// State is the view the planner is showing.
type State int

const (
	// StateBestMoves ranks the roster's moves against the defender.
	StateBestMoves State = iota
	// StateDefensive shows team multipliers per attacking type.
	StateDefensive
	// StateOffensive shows team scores per defending type combination.
	StateOffensive
	stateCount
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateBestMoves:
		return "best_moves"
	case StateDefensive:
		return "defensive"
	case StateOffensive:
		return "offensive"
	default:
		return "unknown"
	}
}

// Title is the heading shown for the view.
func (s State) Title() string {
	switch s {
	case StateBestMoves:
		return "Best moves"
	case StateDefensive:
		return "Defensive coverage"
	case StateOffensive:
		return "Offensive coverage"
	default:
		return ""
	}
}

// Next returns the view after s, wrapping around.
func (s State) Next() State {
	return (s + 1) % stateCount
}
