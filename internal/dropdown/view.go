package dropdown

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/facet/internal/components"
)

const (
	emptyLabel    = "No options"
	clearGlyph    = "×"
	closedGlyph   = "▾"
	expandedGlyph = "▴"
	ellipsis      = "…"
)

// Row is what a RowRenderer receives for one visible option.
type Row struct {
	Option   Option
	ID       string
	Active   bool
	Selected bool
}

// RowRenderer draws a single listbox row into exactly width cells.
type RowRenderer interface {
	RenderRow(row Row, width int) string
}

// RowRendererFunc adapts a function to RowRenderer.
type RowRendererFunc func(row Row, width int) string

func (f RowRendererFunc) RenderRow(row Row, width int) string {
	return f(row, width)
}

// DefaultRowRenderer renders rows with the theme's dropdown tokens.
func DefaultRowRenderer() RowRenderer {
	return RowRendererFunc(renderRow)
}

func renderRow(row Row, width int) string {
	styles := components.GetTheme().Dropdown

	style := styles.Row
	switch {
	case row.Active && row.Option.Disabled:
		style = styles.RowActive.Faint(true)
	case row.Active:
		style = styles.RowActive
	case row.Option.Disabled:
		style = styles.RowDisabled
	}

	lead := " "
	if row.Active {
		lead = styles.ActiveMark
	}
	mark := " "
	if row.Selected {
		mark = styles.SelectedMark
	}

	labelWidth := width - style.GetHorizontalFrameSize() - runewidth.StringWidth(lead) - runewidth.StringWidth(mark) - 2
	return style.Render(lead + " " + fit(row.Option.Label, labelWidth) + " " + mark)
}

// fit truncates s to width display cells and pads it to exactly width.
func fit(s string, width int) string {
	if width < 1 {
		width = 1
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ellipsis), width)
}

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{m.viewTrigger()}

	st := m.machine.State()
	if st.Open() {
		if st.Phase == PhaseOpenSearching {
			sections = append(sections, m.viewSearch())
		}
		sections = append(sections, m.viewListbox())
	}

	props := m.machine.Props()
	if props.Error && props.ErrorMessage != "" {
		sections = append(sections, components.FieldError(props.ErrorMessage).View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) triggerStyle() lipgloss.Style {
	props := m.machine.Props()

	state := components.InputStateDefault
	switch {
	case props.Disabled:
		state = components.InputStateDisabled
	case props.Error:
		state = components.InputStateInvalid
	case m.focused:
		state = components.InputStateFocus
	}

	return components.Style(components.InputStyle(state), components.SizePadding(props.Size)...)
}

type triggerLayout struct {
	style      lipgloss.Style
	labelWidth int
	clearable  bool
	// clearX is the column of the clear glyph relative to the widget's left edge.
	clearX int
}

func (m Model) layoutTrigger() triggerLayout {
	style := m.triggerStyle()
	clearable := m.machine.Clearable()

	reserved := 2
	if clearable {
		reserved += 2
	}
	labelWidth := m.width - style.GetHorizontalFrameSize() - reserved
	if labelWidth < 1 {
		labelWidth = 1
	}

	return triggerLayout{
		style:      style,
		labelWidth: labelWidth,
		clearable:  clearable,
		clearX:     style.GetBorderLeftSize() + style.GetPaddingLeft() + labelWidth + 1,
	}
}

func (m Model) viewTrigger() string {
	styles := components.GetTheme().Dropdown
	layout := m.layoutTrigger()

	var label string
	if opt, ok := m.machine.SelectedOption(); ok {
		label = fit(opt.Label, layout.labelWidth)
	} else {
		label = styles.Placeholder.Render(fit(m.machine.Props().Placeholder, layout.labelWidth))
	}

	indicator := closedGlyph
	if m.Open() {
		indicator = expandedGlyph
	}

	content := label
	if layout.clearable {
		content += " " + styles.Clear.Render(clearGlyph)
	}
	content += " " + styles.Indicator.Render(indicator)

	return layout.style.Render(content)
}

func (m Model) viewSearch() string {
	return lipgloss.NewStyle().PaddingLeft(1).Render(m.search.View())
}

func (m Model) viewListbox() string {
	styles := components.GetTheme().Dropdown
	rowWidth := m.width - styles.Listbox.GetHorizontalFrameSize()

	filtered := m.machine.Filtered()
	if len(filtered) == 0 {
		return styles.Listbox.Render(styles.Empty.Render(fit(emptyLabel, rowWidth-styles.Empty.GetHorizontalFrameSize())))
	}

	st := m.machine.State()
	props := m.machine.Props()
	start, end := m.window(len(filtered))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		opt := filtered[i]
		rows = append(rows, m.renderer.RenderRow(Row{
			Option:   opt,
			ID:       props.RowID(opt.Value),
			Active:   i == st.Focused,
			Selected: opt.Value == st.Selected,
		}, rowWidth))
	}

	return styles.Listbox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// window returns the visible row range, keeping the focused row inside it.
func (m Model) window(n int) (int, int) {
	maxRows := m.machine.Props().maxRows()
	if n <= maxRows {
		return 0, n
	}

	start := m.offset
	if focused := m.machine.State().Focused; focused >= 0 {
		if focused < start {
			start = focused
		}
		if focused >= start+maxRows {
			start = focused - maxRows + 1
		}
	}
	if start > n-maxRows {
		start = n - maxRows
	}
	if start < 0 {
		start = 0
	}
	return start, start + maxRows
}

// HitTest resolves a pointer press at (x, y), relative to the widget's top-left corner. The
// boolean is false when the press falls outside the widget.
func (m Model) HitTest(x, y int) (PointerMsg, bool) {
	id := m.ID()
	outside := PointerMsg{ID: id, Target: PointerOutside}
	if x < 0 || x >= m.width || y < 0 {
		return outside, false
	}

	layout := m.layoutTrigger()
	triggerHeight := lipgloss.Height(m.viewTrigger())
	if y < triggerHeight {
		if layout.clearable && (x == layout.clearX || x == layout.clearX-1) {
			return PointerMsg{ID: id, Target: PointerClear}, true
		}
		return PointerMsg{ID: id, Target: PointerTrigger}, true
	}

	st := m.machine.State()
	if !st.Open() {
		return outside, false
	}

	y -= triggerHeight
	if st.Phase == PhaseOpenSearching {
		if y == 0 {
			return PointerMsg{ID: id, Target: PointerInside}, true
		}
		y--
	}

	if y >= lipgloss.Height(m.viewListbox()) {
		return outside, false
	}

	filtered := m.machine.Filtered()
	row := y - components.GetTheme().Dropdown.Listbox.GetBorderTopSize()
	start, end := m.window(len(filtered))
	if len(filtered) > 0 && row >= 0 && start+row < end {
		return PointerMsg{ID: id, Target: PointerRow, Index: start + row}, true
	}
	return PointerMsg{ID: id, Target: PointerInside}, true
}
