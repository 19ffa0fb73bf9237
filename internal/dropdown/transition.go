package dropdown

import "unicode"

// Rules is the read-only context a transition is evaluated against.
type Rules struct {
	Options    Catalog
	Searchable bool
	Clearable  bool
	Disabled   bool
	Invalid    bool
	// TriggerID is used as the focus origin when an opening event does not name one.
	TriggerID string
}

// IntentKind enumerates the side effects a transition asks for.
type IntentKind int

const (
	// IntentCommit reports a new selected value; an empty value is a clear.
	IntentCommit IntentKind = iota
	// IntentFocusSearch moves input focus into the search field at Caret.
	IntentFocusSearch
	// IntentFocusRow scrolls the row at Index into view and makes it the active descendant.
	IntentFocusRow
	// IntentRestoreFocus returns focus to Control. Advance asks the host to move on from it.
	IntentRestoreFocus
)

func (k IntentKind) String() string {
	switch k {
	case IntentCommit:
		return "commit"
	case IntentFocusSearch:
		return "focus-search"
	case IntentFocusRow:
		return "focus-row"
	case IntentRestoreFocus:
		return "restore-focus"
	default:
		return "unknown"
	}
}

// Intent is a side effect requested by Transition and carried out by Machine.
type Intent struct {
	Kind    IntentKind
	Value   string
	Index   int
	Caret   int
	Control string
	Advance bool
	Reverse bool
}

type seedPosition int

const (
	seedFirst seedPosition = iota
	seedLast
)

// Transition computes the next state for ev. It never mutates its inputs and emits at most one
// focus intent per call.
func Transition(rules Rules, s State, ev Event) (State, []Intent) {
	if rules.Disabled {
		return s, nil
	}
	if !s.Open() {
		return transitionClosed(rules, s, ev)
	}
	return transitionOpen(rules, s, ev)
}

func transitionClosed(rules Rules, s State, ev Event) (State, []Intent) {
	switch ev.Kind {
	case EventActivate, EventEnter, EventSpace, EventArrowDown:
		return open(rules, s, ev.Origin, "", seedFirst)
	case EventArrowUp:
		return open(rules, s, ev.Origin, "", seedLast)
	case EventCharacter:
		if !rules.Searchable || !unicode.IsPrint(ev.Rune) {
			return s, nil
		}
		return open(rules, s, ev.Origin, string(ev.Rune), seedFirst)
	case EventClear:
		return clearSelection(rules, s)
	}
	return s, nil
}

func transitionOpen(rules Rules, s State, ev Event) (State, []Intent) {
	filtered := Filter(rules.Options, s.Search)
	n := len(filtered)
	s.Focused = clampFocus(s.Focused, n)

	switch ev.Kind {
	case EventArrowDown:
		if n == 0 {
			return s, nil
		}
		return moveFocus(s, (s.Focused+1)%n)
	case EventArrowUp:
		if n == 0 {
			return s, nil
		}
		if s.Focused <= 0 {
			return moveFocus(s, n-1)
		}
		return moveFocus(s, s.Focused-1)
	case EventHome:
		if n == 0 {
			return s, nil
		}
		return moveFocus(s, 0)
	case EventEnd:
		if n == 0 {
			return s, nil
		}
		return moveFocus(s, n-1)
	case EventEnter, EventSpace:
		return commitAt(s, filtered, s.Focused)
	case EventClickRow:
		return commitAt(s, filtered, ev.Index)
	case EventEscape, EventClickOutside, EventActivate:
		return closeAndRestore(s, false, false)
	case EventTab:
		return closeAndRestore(s, true, ev.Reverse)
	case EventCharacter:
		if s.Phase != PhaseOpenSearching || !unicode.IsPrint(ev.Rune) {
			return s, nil
		}
		runes := []rune(s.Search)
		caret := clampCaret(s.Caret, len(runes))
		text := string(runes[:caret]) + string(ev.Rune) + string(runes[caret:])
		return search(rules, s, text, caret+1)
	case EventInput:
		if s.Phase != PhaseOpenSearching {
			return s, nil
		}
		return search(rules, s, ev.Text, clampCaret(ev.Caret, len([]rune(ev.Text))))
	case EventClear:
		return clearSelection(rules, s)
	}
	return s, nil
}

func open(rules Rules, s State, origin, seed string, pos seedPosition) (State, []Intent) {
	next := s
	next.Phase = PhaseOpenIdle
	if rules.Searchable {
		next.Phase = PhaseOpenSearching
	}
	next.Search = seed
	next.Caret = len([]rune(seed))
	next.Origin = origin
	if next.Origin == "" {
		next.Origin = rules.TriggerID
	}

	next.Focused = -1
	if n := len(Filter(rules.Options, seed)); n > 0 {
		next.Focused = 0
		if pos == seedLast {
			next.Focused = n - 1
		}
	}

	if rules.Searchable {
		return next, []Intent{{Kind: IntentFocusSearch, Caret: next.Caret}}
	}
	if next.Focused >= 0 {
		return next, []Intent{{Kind: IntentFocusRow, Index: next.Focused}}
	}
	return next, nil
}

func moveFocus(s State, index int) (State, []Intent) {
	s.Focused = index
	return s, []Intent{{Kind: IntentFocusRow, Index: index}}
}

func search(rules Rules, s State, text string, caret int) (State, []Intent) {
	s.Search = text
	s.Caret = caret
	s.Focused = clampFocus(s.Focused, len(Filter(rules.Options, text)))
	return s, nil
}

func commitAt(s State, filtered Catalog, index int) (State, []Intent) {
	if index < 0 || index >= len(filtered) {
		return s, nil
	}
	opt := filtered[index]
	if opt.Disabled {
		return s, nil
	}

	origin := s.Origin
	next := s.closed()
	next.Selected = opt.Value
	return next, []Intent{
		{Kind: IntentCommit, Value: opt.Value},
		{Kind: IntentRestoreFocus, Control: origin},
	}
}

func closeAndRestore(s State, advance, reverse bool) (State, []Intent) {
	origin := s.Origin
	return s.closed(), []Intent{{Kind: IntentRestoreFocus, Control: origin, Advance: advance, Reverse: reverse}}
}

func clearSelection(rules Rules, s State) (State, []Intent) {
	if !rules.Clearable || rules.Invalid {
		return s, nil
	}
	if _, _, ok := rules.Options.Lookup(s.Selected); !ok {
		return s, nil
	}
	s.Selected = ""
	return s, []Intent{{Kind: IntentCommit, Value: ""}}
}

func clampCaret(caret, n int) int {
	if caret < 0 {
		return 0
	}
	if caret > n {
		return n
	}
	return caret
}
