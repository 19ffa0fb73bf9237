package dropdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/facet/internal/logger"
)

func sampleProps() Props {
	return Props{
		ID:          "fruit",
		Options:     sampleCatalog(),
		Placeholder: "Pick one",
	}
}

func TestMachineCommitInvokesOnChangeOnce(t *testing.T) {
	t.Parallel()

	var calls []string
	props := sampleProps()
	props.OnChange = func(value string) { calls = append(calls, value) }
	m := NewMachine(props, nil)

	out := m.Dispatch(KeyEvent(EventArrowDown))
	require.False(t, out.Changed)
	require.Len(t, out.Focus, 1)
	assert.Equal(t, TargetRow, out.Focus[0].Target.Kind)

	m.Dispatch(KeyEvent(EventEnd))
	out = m.Dispatch(KeyEvent(EventEnter))

	assert.True(t, out.Changed)
	assert.Equal(t, "c", out.Value)
	assert.Equal(t, []string{"c"}, calls)
	assert.Equal(t, "c", m.State().Selected)
	assert.Equal(t, "c", m.Props().Value)
	require.Len(t, out.Focus, 1)
	assert.Equal(t, FocusTarget{Kind: TargetTrigger, Control: "fruit-trigger"}, out.Focus[0].Target)
}

func TestMachineClearNotifiesWithEmptyValue(t *testing.T) {
	t.Parallel()

	var calls []string
	props := sampleProps()
	props.Value = "c"
	props.Clearable = true
	props.OnChange = func(value string) { calls = append(calls, value) }
	m := NewMachine(props, nil)

	require.True(t, m.Clearable())
	out := m.Dispatch(KeyEvent(EventClear))

	assert.True(t, out.Changed)
	assert.Empty(t, out.Focus)
	assert.Equal(t, []string{""}, calls)
	assert.False(t, m.State().Open())
	assert.False(t, m.Clearable())
}

func TestMachineAcceptRejectsStaleCommands(t *testing.T) {
	t.Parallel()

	m := NewMachine(sampleProps(), nil)
	opened := m.Dispatch(ActivateEvent(""))
	closed := m.Dispatch(KeyEvent(EventEscape))

	require.Len(t, opened.Focus, 1)
	require.Len(t, closed.Focus, 1)
	assert.False(t, m.Accept(opened.Focus[0]))
	assert.True(t, m.Accept(closed.Focus[0]))
}

func TestMachineSyncMirrorsValueAndClampsFocus(t *testing.T) {
	t.Parallel()

	m := NewMachine(sampleProps(), nil)
	m.Dispatch(KeyEvent(EventArrowUp))
	require.Equal(t, 2, m.State().Focused)

	props := sampleProps()
	props.Value = "a"
	props.Options = sampleCatalog()[:1]
	out := m.Sync(props)

	assert.Empty(t, out.Focus)
	assert.Equal(t, "a", m.State().Selected)
	assert.Equal(t, 0, m.State().Focused)
	assert.True(t, m.State().Open())
}

func TestMachineSyncDisabledClosesOpenWidget(t *testing.T) {
	t.Parallel()

	m := NewMachine(sampleProps(), nil)
	m.Dispatch(ActivateEvent("elsewhere"))

	props := sampleProps()
	props.Disabled = true
	out := m.Sync(props)

	assert.False(t, m.State().Open())
	require.Len(t, out.Focus, 1)
	assert.Equal(t, "elsewhere", out.Focus[0].Target.Control)
	assert.True(t, m.Accept(out.Focus[0]))
}

func TestMachineDismissInvalidatesPendingFocus(t *testing.T) {
	t.Parallel()

	m := NewMachine(sampleProps(), nil)
	out := m.Dispatch(KeyEvent(EventArrowDown))
	m.Dispatch(KeyEvent(EventArrowDown))
	m.Dismiss()

	assert.False(t, m.State().Open())
	assert.Equal(t, -1, m.State().Focused)
	assert.False(t, m.Accept(out.Focus[0]))
}

func TestMachineUnknownValueRendersPlaceholderSemantics(t *testing.T) {
	t.Parallel()

	props := sampleProps()
	props.Value = "nope"
	m := NewMachine(props, nil)

	_, ok := m.SelectedOption()
	assert.False(t, ok)
	assert.Equal(t, "Pick one", m.Accessibility().Label)
}

func TestMachineAccessibility(t *testing.T) {
	t.Parallel()

	props := sampleProps()
	props.Value = "a"
	props.Required = true
	props.Error = true
	m := NewMachine(props, nil)

	a := m.Accessibility()
	assert.Equal(t, "combobox", a.Role)
	assert.Equal(t, "listbox", a.HasPopup)
	assert.False(t, a.Expanded)
	assert.True(t, a.Invalid)
	assert.True(t, a.Required)
	assert.False(t, a.Disabled)
	assert.Equal(t, "fruit-listbox", a.Controls)
	assert.Empty(t, a.ActiveDescendant)
	assert.Equal(t, "Alpha", a.Label)
	assert.Nil(t, m.Rows())

	m.Dispatch(KeyEvent(EventArrowUp))
	a = m.Accessibility()
	assert.True(t, a.Expanded)
	assert.Equal(t, "fruit-option-c", a.ActiveDescendant)

	rows := m.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, RowAccessibility{ID: "fruit-option-a", Role: "option", Label: "Alpha", Selected: true}, rows[0])
	assert.True(t, rows[1].Disabled)
	assert.True(t, rows[2].Active)
}

func TestMachineTracesTransitionsAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	m := NewMachine(sampleProps(), log)
	m.Dispatch(KeyEvent(EventArrowDown))

	out := buf.String()
	assert.Contains(t, out, `"message":"dropdown transition"`)
	assert.Contains(t, out, `"dropdown":"fruit"`)
	assert.Contains(t, out, `"event":"arrow-down"`)
	assert.Contains(t, out, `"from":"closed"`)
	assert.Contains(t, out, `"to":"open-idle"`)
}
