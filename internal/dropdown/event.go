package dropdown

// EventKind enumerates the inputs the state machine reacts to.
type EventKind int

const (
	// EventActivate is a click on the trigger.
	EventActivate EventKind = iota
	EventArrowDown
	EventArrowUp
	EventHome
	EventEnd
	EventEnter
	EventSpace
	EventEscape
	EventTab
	// EventCharacter is a single printable rune typed on the widget.
	EventCharacter
	// EventInput replaces the search text with the search field's content.
	EventInput
	// EventClickRow is a click on a row; Index refers to the filtered list.
	EventClickRow
	EventClickOutside
	// EventClear is activation of the clear affordance.
	EventClear
)

var eventNames = map[EventKind]string{
	EventActivate:     "activate",
	EventArrowDown:    "arrow-down",
	EventArrowUp:      "arrow-up",
	EventHome:         "home",
	EventEnd:          "end",
	EventEnter:        "enter",
	EventSpace:        "space",
	EventEscape:       "escape",
	EventTab:          "tab",
	EventCharacter:    "character",
	EventInput:        "input",
	EventClickRow:     "click-row",
	EventClickOutside: "click-outside",
	EventClear:        "clear",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one discrete input delivered by the host.
type Event struct {
	Kind EventKind
	// Rune is set for EventCharacter.
	Rune rune
	// Text and Caret are set for EventInput.
	Text  string
	Caret int
	// Index is set for EventClickRow.
	Index int
	// Origin names the control holding focus when an opening event arrives.
	Origin string
	// Reverse marks a shift+tab.
	Reverse bool
}

// KeyEvent builds an event for a key without payload.
func KeyEvent(kind EventKind) Event {
	return Event{Kind: kind}
}

// ActivateEvent builds a trigger click coming from the given control.
func ActivateEvent(origin string) Event {
	return Event{Kind: EventActivate, Origin: origin}
}

// CharacterEvent builds a typed-character event.
func CharacterEvent(r rune) Event {
	return Event{Kind: EventCharacter, Rune: r}
}

// InputEvent builds a search text replacement with the caret at the end of text.
func InputEvent(text string) Event {
	return Event{Kind: EventInput, Text: text, Caret: len([]rune(text))}
}

// ClickRowEvent builds a click on the row at index in the filtered list.
func ClickRowEvent(index int) Event {
	return Event{Kind: EventClickRow, Index: index}
}
