package dropdown

// Accessibility describes the trigger the way an assistive technology sees it.
type Accessibility struct {
	Role             string
	HasPopup         string
	Expanded         bool
	Invalid          bool
	Required         bool
	Disabled         bool
	Controls         string
	ActiveDescendant string
	// Label is the selected option label, or the placeholder.
	Label string
}

// RowAccessibility describes one listbox row.
type RowAccessibility struct {
	ID       string
	Role     string
	Label    string
	Selected bool
	Disabled bool
	Active   bool
}

// Accessibility returns the trigger semantics for the current state.
func (m *Machine) Accessibility() Accessibility {
	a := Accessibility{
		Role:     "combobox",
		HasPopup: "listbox",
		Expanded: m.state.Open(),
		Invalid:  m.props.Error,
		Required: m.props.Required,
		Disabled: m.props.Disabled,
		Controls: m.props.ListboxID(),
		Label:    m.props.Placeholder,
	}
	if opt, ok := m.SelectedOption(); ok {
		a.Label = opt.Label
	}
	if a.Expanded {
		if opt, ok := m.FocusedOption(); ok {
			a.ActiveDescendant = m.props.RowID(opt.Value)
		}
	}
	return a
}

// Rows returns row semantics for the filtered list. A closed widget has no rows.
func (m *Machine) Rows() []RowAccessibility {
	if !m.state.Open() {
		return nil
	}
	filtered := m.Filtered()
	rows := make([]RowAccessibility, len(filtered))
	for i, opt := range filtered {
		rows[i] = RowAccessibility{
			ID:       m.props.RowID(opt.Value),
			Role:     "option",
			Label:    opt.Label,
			Selected: opt.Value == m.state.Selected,
			Disabled: opt.Disabled,
			Active:   i == m.state.Focused,
		}
	}
	return rows
}
