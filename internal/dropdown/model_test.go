package dropdown

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(mutate func(*Props)) Model {
	props := sampleProps()
	if mutate != nil {
		mutate(&props)
	}
	m := New(props, nil)
	m.Focus()
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// collect flattens cmd into the messages it produces without feeding them back.
func collect(cmd tea.Cmd) []tea.Msg {
	var msgs []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// drain runs cmd, feeding internal focus messages back into m and returning everything else.
func drain(m Model, cmd tea.Cmd) (Model, []tea.Msg) {
	var emitted []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case focusMsg:
			updated, follow := m.Update(msg)
			m = updated.(Model)
			queue = append(queue, follow)
		default:
			emitted = append(emitted, msg)
		}
	}
	return m, emitted
}

func send(m Model, msgs ...tea.Msg) (Model, []tea.Msg) {
	var all []tea.Msg
	for _, msg := range msgs {
		updated, cmd := m.Update(msg)
		var emitted []tea.Msg
		m, emitted = drain(updated.(Model), cmd)
		all = append(all, emitted...)
	}
	return m, all
}

func TestModelIgnoresKeysWhenUnfocused(t *testing.T) {
	t.Parallel()

	m := New(sampleProps(), nil)
	m, emitted := send(m, keyMsg(tea.KeyDown))

	assert.False(t, m.Open())
	assert.Empty(t, emitted)
}

func TestModelKeyboardCommit(t *testing.T) {
	t.Parallel()

	var changed []string
	m := newTestModel(func(p *Props) {
		p.OnChange = func(v string) { changed = append(changed, v) }
	})

	m, _ = send(m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
	require.True(t, m.Open())
	require.Equal(t, 1, m.State().Focused)

	m, emitted := send(m, keyMsg(tea.KeyEnter))
	assert.True(t, m.Open(), "disabled row is not committed")
	assert.Empty(t, emitted)

	m, emitted = send(m, keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	assert.False(t, m.Open())
	assert.Equal(t, "c", m.Value())
	assert.Equal(t, []string{"c"}, changed)
	assert.ElementsMatch(t, []tea.Msg{
		ChangeMsg{ID: "fruit", Value: "c"},
		FocusReturnedMsg{ID: "fruit", Control: "fruit-trigger"},
	}, emitted)
	assert.True(t, m.Focused())
}

func TestModelSpaceOpensIdleWidget(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, PhaseOpenIdle, m.State().Phase)
	assert.Equal(t, 0, m.State().Focused)
}

func TestModelTypingSeedsAndFiltersSearch(t *testing.T) {
	t.Parallel()

	m := newTestModel(func(p *Props) { p.Searchable = true })

	m, _ = send(m, keyRunes("g"))
	require.Equal(t, PhaseOpenSearching, m.State().Phase)
	assert.Equal(t, "g", m.search.Value())
	assert.True(t, m.search.Focused())

	m, _ = send(m, keyRunes("a"))
	assert.Equal(t, "ga", m.State().Search)
	assert.Equal(t, 2, m.State().Caret)
	assert.Equal(t, []string{"c"}, m.Machine().Filtered().Values())
	assert.Equal(t, 0, m.State().Focused)

	m, _ = send(m, keyMsg(tea.KeyBackspace))
	assert.Equal(t, "g", m.State().Search)
	assert.Equal(t, "g", m.search.Value())
}

func TestModelSpaceIsTextWhileSearching(t *testing.T) {
	t.Parallel()

	m := newTestModel(func(p *Props) { p.Searchable = true })
	m, _ = send(m, keyRunes("a"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.True(t, m.Open())
	assert.Equal(t, "a ", m.State().Search)
}

func TestModelKeystrokeBeforeDeferredFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel(func(p *Props) { p.Searchable = true })

	updated, pending := m.Update(keyRunes("g"))
	m = updated.(Model)
	require.False(t, m.search.Focused(), "focus is deferred")

	updated, _ = m.Update(keyRunes("a"))
	m = updated.(Model)
	assert.True(t, m.search.Focused())
	assert.Equal(t, "ga", m.State().Search)

	m, _ = drain(m, pending)
	assert.True(t, m.search.Focused())
	assert.Equal(t, 2, m.search.Position())
}

func TestModelDropsStaleFocusCommands(t *testing.T) {
	t.Parallel()

	m := newTestModel(func(p *Props) { p.Searchable = true })
	trigger := PointerMsg{ID: "fruit", Target: PointerTrigger}

	var pending []tea.Msg
	for range 3 {
		updated, cmd := m.Update(trigger)
		m = updated.(Model)
		pending = append(pending, collect(cmd)...)
	}
	require.Len(t, pending, 3)
	require.True(t, m.Open())

	updated, cmd := m.Update(pending[0])
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.search.Focused())

	updated, cmd = m.Update(pending[1])
	m = updated.(Model)
	assert.Nil(t, cmd, "stale restore must not hand focus back to the host")

	updated, _ = m.Update(pending[2])
	m = updated.(Model)
	assert.True(t, m.search.Focused())
}

func TestModelTabClosesAndAdvances(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil)
	m, _ = send(m, keyMsg(tea.KeyDown))
	m, emitted := send(m, keyMsg(tea.KeyTab))

	assert.False(t, m.Open())
	assert.Equal(t, []tea.Msg{FocusReturnedMsg{ID: "fruit", Control: "fruit-trigger", Advance: true}}, emitted)

	m, _ = send(m, keyMsg(tea.KeyDown))
	_, emitted = send(m, keyMsg(tea.KeyShiftTab))
	assert.Equal(t, []tea.Msg{FocusReturnedMsg{ID: "fruit", Control: "fruit-trigger", Advance: true, Reverse: true}}, emitted)
}

func TestModelTabWhileClosedIsLeftToHost(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil)
	m, emitted := send(m, keyMsg(tea.KeyTab))
	assert.False(t, m.Open())
	assert.Empty(t, emitted)
}

func TestModelClearKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(func(p *Props) {
		p.Value = "c"
		p.Clearable = true
	})
	m, emitted := send(m, keyMsg(tea.KeyCtrlX))

	assert.False(t, m.Open())
	assert.Empty(t, m.Value())
	assert.Equal(t, []tea.Msg{ChangeMsg{ID: "fruit", Value: ""}}, emitted)
}

func TestModelPointerSelection(t *testing.T) {
	t.Parallel()

	m := New(sampleProps(), nil)
	m, _ = send(m, PointerMsg{ID: "fruit", Target: PointerTrigger, Origin: "host-list"})
	require.True(t, m.Open())
	require.True(t, m.Focused())

	m, emitted := send(m, PointerMsg{ID: "fruit", Target: PointerRow, Index: 1})
	assert.True(t, m.Open())
	assert.Empty(t, emitted)

	m, emitted = send(m, PointerMsg{ID: "fruit", Target: PointerRow, Index: 0})
	assert.Equal(t, "a", m.Value())
	assert.ElementsMatch(t, []tea.Msg{
		ChangeMsg{ID: "fruit", Value: "a"},
		FocusReturnedMsg{ID: "fruit", Control: "host-list"},
	}, emitted)
}

func TestModelPointerOutsideCloses(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil)
	m, _ = send(m, keyMsg(tea.KeyDown))
	m, emitted := send(m, PointerMsg{ID: "fruit", Target: PointerOutside})

	assert.False(t, m.Open())
	assert.Len(t, emitted, 1)
}

func TestModelIgnoresOtherWidgets(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil)
	m, _ = send(m, PointerMsg{ID: "other", Target: PointerTrigger})
	assert.False(t, m.Open())

	m, _ = send(m, keyMsg(tea.KeyDown))
	out := m.Machine().Dispatch(KeyEvent(EventArrowDown))
	updated, cmd := m.Update(focusMsg{id: "other", cmd: out.Focus[0]})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, updated.(Model).offset)
}

func TestModelBlurClosesWithoutReturningFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel(func(p *Props) { p.Searchable = true })
	updated, pending := m.Update(keyRunes("g"))
	m = updated.(Model)

	m.Blur()
	assert.False(t, m.Open())
	assert.False(t, m.Focused())
	assert.Empty(t, m.search.Value())

	m, emitted := drain(m, pending)
	assert.Empty(t, emitted)
	assert.False(t, m.search.Focused())
}

func TestModelSync(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil)
	props := m.Machine().Props()
	props.Value = "a"
	cmd := m.Sync(props)

	assert.Nil(t, cmd)
	assert.Equal(t, "a", m.Value())
}

func TestModelScrollsFocusedRowIntoView(t *testing.T) {
	t.Parallel()

	m := newTestModel(func(p *Props) {
		p.MaxRows = 2
		p.Options = Catalog{
			{Value: "1", Label: "One"},
			{Value: "2", Label: "Two"},
			{Value: "3", Label: "Three"},
			{Value: "4", Label: "Four"},
		}
	})

	m, _ = send(m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
	assert.Equal(t, 2, m.State().Focused)
	assert.Equal(t, 1, m.offset)

	m, _ = send(m, keyMsg(tea.KeyHome))
	assert.Equal(t, 0, m.offset)

	m, _ = send(m, keyMsg(tea.KeyEsc))
	assert.Equal(t, 0, m.offset)
}
