// Package form hosts a dropdown in a small focus ring with a submit button.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/facet/internal/components"
	"github.com/alexisbeaulieu97/facet/internal/dropdown"
	"github.com/alexisbeaulieu97/facet/internal/logger"
)

const (
	doneControl     = "done"
	requiredMessage = "A selection is required"
	defaultWidth    = 40
)

// Options configures a form.
type Options struct {
	Title  string
	Props  dropdown.Props
	Width  int
	Logger *logger.Logger
}

// Result is what the form ended with.
type Result struct {
	Value     string
	Submitted bool
}

type keyMap struct {
	dropdown dropdown.KeyMap
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		dropdown: dropdown.DefaultKeyMap(),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Submit:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "done")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.dropdown.ShortHelp(), k.Next, k.Cancel)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.dropdown.FullHelp(), []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel})
}

// Model is a bubbletea program presenting one dropdown and a Done button.
type Model struct {
	title    string
	props    dropdown.Props
	dropdown dropdown.Model
	done     *components.Button
	help     help.Model
	keys     keyMap
	ring     []string
	focus    int
	// requiredError is set while the error state comes from a failed submit.
	requiredError bool
	result        Result
	finished      bool
	log           *logger.Logger
}

// New builds a form with focus on the dropdown.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	dd := dropdown.New(opts.Props, log)
	dd.SetWidth(width)
	dd.Focus()

	return Model{
		title:    opts.Title,
		props:    opts.Props,
		dropdown: dd,
		done:     components.PrimaryButton("Done"),
		help:     help.New(),
		keys:     defaultKeyMap(),
		ring:     []string{opts.Props.TriggerID(), doneControl},
		log:      log.WithFields(map[string]any{"form": opts.Props.ControlID()}),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the outcome once the program has quit.
func (m Model) Result() Result {
	return m.result
}

// Focused returns the id of the control holding focus.
func (m Model) Focused() string {
	return m.ring[m.focus]
}

// Dropdown returns the hosted dropdown.
func (m Model) Dropdown() dropdown.Model {
	return m.dropdown
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd
	case dropdown.ChangeMsg:
		cmd := m.handleChange(msg)
		return m, cmd
	case dropdown.FocusReturnedMsg:
		m.focusControl(msg.Control)
		if msg.Advance {
			m.move(msg.Reverse)
		}
		return m, nil
	}

	cmd := m.forward(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return m.cancel()
	}

	if m.Focused() == m.props.TriggerID() {
		if !m.dropdown.Open() {
			switch {
			case key.Matches(msg, m.keys.Next):
				m.move(false)
				return nil
			case key.Matches(msg, m.keys.Prev):
				m.move(true)
				return nil
			case key.Matches(msg, m.keys.Cancel):
				return m.cancel()
			}
		}
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.move(false)
	case key.Matches(msg, m.keys.Prev):
		m.move(true)
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancel()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	top := m.titleHeight()
	hit, inside := m.dropdown.HitTest(msg.X, msg.Y-top)
	if inside {
		hit.Origin = m.Focused()
		if hit.Target == dropdown.PointerTrigger {
			m.focusControl(m.props.TriggerID())
			hit.Origin = m.props.TriggerID()
		}
		return m.forward(hit)
	}

	var cmds []tea.Cmd
	if m.dropdown.Open() {
		cmds = append(cmds, m.forward(hit))
	}

	buttonTop := top + lipgloss.Height(m.dropdown.View())
	if msg.Y >= buttonTop && msg.Y < buttonTop+lipgloss.Height(m.done.View()) && msg.X < lipgloss.Width(m.done.View()) {
		m.focusControl(doneControl)
		cmds = append(cmds, m.submit())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleChange(msg dropdown.ChangeMsg) tea.Cmd {
	m.props.Value = msg.Value
	if m.requiredError && msg.Value != "" {
		m.requiredError = false
		m.props.Error = false
		m.props.ErrorMessage = ""
	}
	m.log.Event("value changed", map[string]any{"value": msg.Value})
	return m.dropdown.Sync(m.props)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	updated, cmd := m.dropdown.Update(msg)
	m.dropdown = updated.(dropdown.Model)
	return cmd
}

func (m *Model) move(reverse bool) {
	step := 1
	if reverse {
		step = len(m.ring) - 1
	}
	m.setFocus((m.focus + step) % len(m.ring))
}

func (m *Model) focusControl(id string) {
	for i, control := range m.ring {
		if control == id {
			m.setFocus(i)
			return
		}
	}
}

func (m *Model) setFocus(index int) {
	m.focus = index
	if m.ring[index] == m.props.TriggerID() {
		m.dropdown.Focus()
	} else {
		m.dropdown.Blur()
	}
	m.done.WithFocus(m.ring[index] == doneControl)
}

func (m *Model) submit() tea.Cmd {
	if m.props.Required && m.props.Value == "" {
		m.requiredError = true
		m.props.Error = true
		m.props.ErrorMessage = requiredMessage
		m.focusControl(m.props.TriggerID())
		m.log.Warn("submit rejected: selection required")
		return m.dropdown.Sync(m.props)
	}

	m.result = Result{Value: m.props.Value, Submitted: true}
	m.finished = true
	m.log.Info("selection submitted")
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	m.result = Result{}
	m.finished = true
	m.log.Info("selection cancelled")
	return tea.Quit
}

func (m Model) titleHeight() int {
	if m.title == "" {
		return 0
	}
	return lipgloss.Height(m.viewTitle())
}

func (m Model) viewTitle() string {
	return components.TypographyStyle(components.TypographyVariantTitle).Render(m.title)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.finished {
		return ""
	}

	var sections []string
	if m.title != "" {
		sections = append(sections, m.viewTitle())
	}
	sections = append(sections,
		m.dropdown.View(),
		m.done.View(),
		m.help.View(m.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
