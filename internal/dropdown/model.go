package dropdown

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/facet/internal/logger"
)

const defaultWidth = 32

// PointerTarget identifies the part of the widget a pointer press landed on.
type PointerTarget int

const (
	PointerTrigger PointerTarget = iota
	PointerClear
	PointerRow
	// PointerInside is a press inside the widget that has no action, such as the search field.
	PointerInside
	PointerOutside
)

// PointerMsg delivers a pointer press resolved by the host, usually through HitTest.
type PointerMsg struct {
	ID     string
	Target PointerTarget
	// Index is the filtered row for PointerRow.
	Index int
	// Origin is the control that held focus before the press.
	Origin string
}

// ChangeMsg is emitted after every commit, including clears.
type ChangeMsg struct {
	ID    string
	Value string
}

// FocusReturnedMsg asks the host to focus Control. When Advance is set the host should move focus
// on from Control, backwards if Reverse is set.
type FocusReturnedMsg struct {
	ID      string
	Control string
	Advance bool
	Reverse bool
}

type focusMsg struct {
	id  string
	cmd FocusCommand
}

// Model is the bubbletea component wrapping a Machine.
type Model struct {
	machine  *Machine
	search   textinput.Model
	keys     KeyMap
	renderer RowRenderer
	focused  bool
	width    int
	offset   int
}

// New creates a closed dropdown. A nil logger disables tracing.
func New(props Props, log *logger.Logger) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Type to filter"
	_ = search.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		machine:  NewMachine(props, log),
		search:   search,
		keys:     DefaultKeyMap(),
		renderer: DefaultRowRenderer(),
	}
	m.SetWidth(defaultWidth)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ID returns the widget id.
func (m Model) ID() string {
	return m.machine.Props().ControlID()
}

// Machine exposes the underlying state machine.
func (m Model) Machine() *Machine {
	return m.machine
}

// State returns the current state.
func (m Model) State() State {
	return m.machine.State()
}

// Open reports whether the listbox is visible.
func (m Model) Open() bool {
	return m.machine.State().Open()
}

// Value returns the selected value.
func (m Model) Value() string {
	return m.machine.State().Selected
}

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// SetKeyMap replaces the bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// SetRenderer replaces the row renderer. A nil renderer restores the default.
func (m *Model) SetRenderer(renderer RowRenderer) {
	if renderer == nil {
		renderer = DefaultRowRenderer()
	}
	m.renderer = renderer
}

// SetWidth sets the total rendered width.
func (m *Model) SetWidth(width int) {
	if width < 8 {
		width = 8
	}
	m.width = width
	m.search.Width = width - len(m.search.Prompt) - 2
}

// Width returns the total rendered width.
func (m Model) Width() int {
	return m.width
}

// Focused reports whether the host has given the trigger focus.
func (m Model) Focused() bool {
	return m.focused
}

// Focus gives the trigger focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus. An open widget closes without committing.
func (m *Model) Blur() {
	m.focused = false
	m.machine.Dismiss()
	m.syncSearch()
}

// Sync pushes new props, typically after the host stored a ChangeMsg value.
func (m *Model) Sync(props Props) tea.Cmd {
	out := m.machine.Sync(props)
	m.syncSearch()
	return m.commands(out)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		cmd := m.handleKey(msg)
		return m, cmd
	case PointerMsg:
		if msg.ID != m.ID() {
			return m, nil
		}
		cmd := m.handlePointer(msg)
		return m, cmd
	case focusMsg:
		if msg.id != m.ID() {
			return m, nil
		}
		cmd := m.applyFocus(msg.cmd)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := m.machine.State()

	switch {
	case key.Matches(msg, m.keys.Down):
		return m.dispatch(KeyEvent(EventArrowDown))
	case key.Matches(msg, m.keys.Up):
		return m.dispatch(KeyEvent(EventArrowUp))
	case key.Matches(msg, m.keys.Home):
		return m.dispatch(KeyEvent(EventHome))
	case key.Matches(msg, m.keys.End):
		return m.dispatch(KeyEvent(EventEnd))
	case key.Matches(msg, m.keys.Select):
		return m.dispatch(KeyEvent(EventEnter))
	case key.Matches(msg, m.keys.Close):
		return m.dispatch(KeyEvent(EventEscape))
	case key.Matches(msg, m.keys.Next):
		return m.dispatch(KeyEvent(EventTab))
	case key.Matches(msg, m.keys.Prev):
		return m.dispatch(Event{Kind: EventTab, Reverse: true})
	case key.Matches(msg, m.keys.Clear):
		return m.dispatch(KeyEvent(EventClear))
	case key.Matches(msg, m.keys.Toggle) && st.Phase != PhaseOpenSearching:
		return m.dispatch(KeyEvent(EventSpace))
	}

	if st.Phase == PhaseOpenSearching {
		return m.editSearch(msg)
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return m.dispatch(CharacterEvent(msg.Runes[0]))
	}
	return nil
}

// editSearch forwards a key to the search field. A key can arrive before the deferred focus
// command, so the field is focused first.
func (m *Model) editSearch(msg tea.KeyMsg) tea.Cmd {
	var cmds []tea.Cmd
	if !m.search.Focused() {
		cmds = append(cmds, m.search.Focus())
	}

	value, pos := m.search.Value(), m.search.Position()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)

	if m.search.Value() != value || m.search.Position() != pos {
		cmds = append(cmds, m.dispatch(Event{
			Kind:  EventInput,
			Text:  m.search.Value(),
			Caret: m.search.Position(),
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handlePointer(msg PointerMsg) tea.Cmd {
	switch msg.Target {
	case PointerTrigger:
		m.focused = true
		return m.dispatch(ActivateEvent(msg.Origin))
	case PointerClear:
		return m.dispatch(KeyEvent(EventClear))
	case PointerRow:
		return m.dispatch(ClickRowEvent(msg.Index))
	case PointerOutside:
		return m.dispatch(KeyEvent(EventClickOutside))
	}
	return nil
}

func (m *Model) dispatch(ev Event) tea.Cmd {
	out := m.machine.Dispatch(ev)
	m.syncSearch()
	return m.commands(out)
}

// syncSearch mirrors the state into the search field. Focus is left to applyFocus.
func (m *Model) syncSearch() {
	st := m.machine.State()
	if st.Phase != PhaseOpenSearching {
		m.search.Blur()
		m.search.SetValue("")
		if !st.Open() {
			m.offset = 0
		}
		return
	}
	if m.search.Value() != st.Search {
		m.search.SetValue(st.Search)
	}
	if m.search.Position() != st.Caret {
		m.search.SetCursor(st.Caret)
	}
}

// commands defers focus moves by one message round trip so they run after the next render.
func (m *Model) commands(out Outcome) tea.Cmd {
	id := m.ID()
	cmds := make([]tea.Cmd, 0, len(out.Focus)+1)
	for _, fc := range out.Focus {
		cmds = append(cmds, func() tea.Msg {
			return focusMsg{id: id, cmd: fc}
		})
	}
	if out.Changed {
		value := out.Value
		cmds = append(cmds, func() tea.Msg {
			return ChangeMsg{ID: id, Value: value}
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyFocus(cmd FocusCommand) tea.Cmd {
	if !m.machine.Accept(cmd) {
		m.machine.log.Event("dropping stale focus command", map[string]any{
			"seq":    cmd.Seq,
			"latest": m.machine.focus.Latest(),
			"target": cmd.Target.Kind.String(),
		})
		return nil
	}

	st := m.machine.State()
	switch cmd.Target.Kind {
	case TargetSearch:
		if st.Phase != PhaseOpenSearching {
			return nil
		}
		focusCmd := m.search.Focus()
		m.search.SetCursor(st.Caret)
		return focusCmd
	case TargetRow:
		m.scrollTo(cmd.Target.Index)
		return nil
	default:
		m.search.Blur()
		if cmd.Target.Control == m.machine.Props().TriggerID() {
			m.focused = true
		}
		returned := FocusReturnedMsg{
			ID:      m.ID(),
			Control: cmd.Target.Control,
			Advance: cmd.Target.Advance,
			Reverse: cmd.Target.Reverse,
		}
		return func() tea.Msg { return returned }
	}
}

func (m *Model) scrollTo(index int) {
	maxRows := m.machine.Props().maxRows()
	switch {
	case index < m.offset:
		m.offset = index
	case index >= m.offset+maxRows:
		m.offset = index - maxRows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
