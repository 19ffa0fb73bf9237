package dropdown

import (
	"github.com/alexisbeaulieu97/facet/internal/logger"
)

// Outcome reports what a dispatched event changed outside the state itself.
type Outcome struct {
	// Changed is true when the event committed a value, including a clear.
	Changed bool
	Value   string
	// Focus holds the sequenced focus moves to apply after the next render.
	Focus []FocusCommand
}

// Machine owns the state of one widget and applies the intents its transitions produce.
type Machine struct {
	props Props
	state State
	focus FocusCoordinator
	log   *logger.Logger
}

// NewMachine creates a closed machine. A nil logger disables tracing.
func NewMachine(props Props, log *logger.Logger) *Machine {
	if log == nil {
		log = logger.Discard()
	}
	return &Machine{
		props: props,
		state: InitialState(props.Value),
		log:   log.WithFields(map[string]any{"dropdown": props.ControlID()}),
	}
}

// Dispatch runs ev through the transition function. OnChange is invoked once per commit.
func (m *Machine) Dispatch(ev Event) Outcome {
	prev := m.state
	next, intents := Transition(m.props.rules(), prev, ev)
	m.state = next

	var out Outcome
	for _, intent := range intents {
		if intent.Kind == IntentCommit {
			out.Changed = true
			out.Value = intent.Value
			m.props.Value = intent.Value
			if m.props.OnChange != nil {
				m.props.OnChange(intent.Value)
			}
			continue
		}
		if target, ok := targetFor(intent); ok {
			out.Focus = append(out.Focus, m.focus.Issue(target))
		}
	}

	m.trace(ev, prev, next, out)
	return out
}

// Sync replaces the props, mirroring the caller's value and re-clamping focus against the new
// catalog. Disabling an open widget closes it and returns focus to its origin.
func (m *Machine) Sync(props Props) Outcome {
	m.props = props
	m.state.Selected = props.Value

	var out Outcome
	if !m.state.Open() {
		return out
	}

	if props.Disabled {
		origin := m.state.Origin
		m.state = m.state.closed()
		out.Focus = append(out.Focus, m.focus.Issue(FocusTarget{Kind: TargetTrigger, Control: origin}))
		return out
	}

	if !props.Searchable && m.state.Phase == PhaseOpenSearching {
		m.state.Phase = PhaseOpenIdle
		m.state.Search = ""
		m.state.Caret = 0
	}
	m.state.Focused = clampFocus(m.state.Focused, len(m.Filtered()))
	return out
}

// Dismiss closes an open widget without moving focus, for hosts that already moved it elsewhere.
// Pending focus commands are invalidated.
func (m *Machine) Dismiss() {
	if !m.state.Open() {
		return
	}
	prev := m.state
	m.state = m.state.closed()
	m.focus.Cancel()
	m.log.Event("dropdown dismissed", map[string]any{"from": prev.Phase.String()})
}

// Accept reports whether cmd may still be applied.
func (m *Machine) Accept(cmd FocusCommand) bool {
	return m.focus.Current(cmd)
}

// State returns a copy of the live state.
func (m *Machine) State() State {
	return m.state
}

// Props returns the props last supplied, with Value tracking commits.
func (m *Machine) Props() Props {
	return m.props
}

// Filtered returns the options matching the current search.
func (m *Machine) Filtered() Catalog {
	return Filter(m.props.Options, m.state.Search)
}

// SelectedOption returns the option matching the selected value, if any.
func (m *Machine) SelectedOption() (Option, bool) {
	opt, _, ok := m.props.Options.Lookup(m.state.Selected)
	return opt, ok
}

// FocusedOption returns the highlighted row, if any.
func (m *Machine) FocusedOption() (Option, bool) {
	filtered := m.Filtered()
	if m.state.Focused < 0 || m.state.Focused >= len(filtered) {
		return Option{}, false
	}
	return filtered[m.state.Focused], true
}

// Clearable reports whether the clear affordance is available.
func (m *Machine) Clearable() bool {
	if !m.props.Clearable || m.props.Error || m.props.Disabled {
		return false
	}
	_, ok := m.SelectedOption()
	return ok
}

func (m *Machine) trace(ev Event, prev, next State, out Outcome) {
	if !m.log.DebugEnabled() {
		return
	}
	m.log.Event("dropdown transition", map[string]any{
		"event":    ev.Kind.String(),
		"from":     prev.Phase.String(),
		"to":       next.Phase.String(),
		"focused":  next.Focused,
		"filtered": len(Filter(m.props.Options, next.Search)),
		"changed":  out.Changed,
		"commands": len(out.Focus),
	})
}
