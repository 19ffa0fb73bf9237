package dropdown

// Phase is the lifecycle position of the widget.
type Phase int

const (
	// PhaseClosed is the initial phase; the listbox is hidden.
	PhaseClosed Phase = iota
	// PhaseOpenIdle shows the listbox while focus stays on the trigger.
	PhaseOpenIdle
	// PhaseOpenSearching shows the listbox with input focus in the search field.
	PhaseOpenSearching
)

func (p Phase) String() string {
	switch p {
	case PhaseOpenIdle:
		return "open-idle"
	case PhaseOpenSearching:
		return "open-searching"
	default:
		return "closed"
	}
}

// State is the live model of one widget.
//
// Focused indexes the filtered list, not the catalog, and is -1 when no row is highlighted.
// Whenever Phase is PhaseClosed, Search is empty, Caret is zero and Focused is -1.
type State struct {
	Phase    Phase
	Selected string
	Search   string
	Caret    int
	Focused  int
	// Origin is the id of the control that held focus when the widget opened.
	Origin string
}

// InitialState returns a closed state mirroring the caller's value.
func InitialState(value string) State {
	return State{Phase: PhaseClosed, Selected: value, Focused: -1}
}

// Open reports whether the listbox is visible.
func (s State) Open() bool {
	return s.Phase != PhaseClosed
}

func (s State) closed() State {
	s.Phase = PhaseClosed
	s.Search = ""
	s.Caret = 0
	s.Focused = -1
	s.Origin = ""
	return s
}

// clampFocus keeps index within [-1, n-1].
func clampFocus(index, n int) int {
	if index >= n {
		index = n - 1
	}
	if index < -1 {
		index = -1
	}
	return index
}
