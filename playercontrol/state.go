package playercontrol

// StateKind enumerates the player states.
type StateKind int

const (
	Walking StateKind = iota
	Shooting
	Jumping
)

func (k StateKind) String() string {
	switch k {
	case Walking:
		return "walking"
	case Shooting:
		return "shooting"
	case Jumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// State is the active player state. Gap is only set while Jumping.
type State struct {
	Kind StateKind
	Gap  Gap
}

func walking() State        { return State{Kind: Walking} }
func shooting() State       { return State{Kind: Shooting} }
func jumping(gap Gap) State { return State{Kind: Jumping, Gap: gap} }

func (s State) String() string { return s.Kind.String() }
