package maze

// Role tells a step observer what just happened to a cell.
type Role int

const (
	RoleCarved    Role = iota // Cleared by the generator.
	RoleCurrent               // Occupied by a walker.
	RoleVisited               // Closed by a search or left behind by a walker.
	RoleFrontier              // Added to a search's open set.
	RoleFinalPath             // Part of the returned route.
)

func (r Role) String() string {
	switch r {
	case RoleCarved:
		return "carved"
	case RoleCurrent:
		return "current"
	case RoleVisited:
		return "visited"
	case RoleFrontier:
		return "frontier"
	case RoleFinalPath:
		return "final-path"
	default:
		return "unknown"
	}
}

// StepFunc receives a copy of a cell after the algorithm changed its logical state.
// It must return promptly and cannot alter the maze through the copy.
type StepFunc func(cell Cell, role Role)

// Observer delivers step notifications either as they happen (animated) or only for the
// end state (batched).
type Observer struct {
	fn      StepFunc
	animate bool
}

// NewObserver wraps fn. A nil fn yields an observer that drops everything.
func NewObserver(fn StepFunc, animate bool) Observer {
	return Observer{fn: fn, animate: animate}
}

// Animated reports whether intermediate steps are delivered.
func (o Observer) Animated() bool {
	return o.fn != nil && o.animate
}

// Step reports an intermediate state change. Dropped in batched mode.
func (o Observer) Step(c *Cell, role Role) {
	if o.Animated() {
		o.fn(*c, role)
	}
}

// Final reports end-state cells. Delivered in both modes.
func (o Observer) Final(c *Cell, role Role) {
	if o.fn != nil {
		o.fn(*c, role)
	}
}
