package dropdown

import (
	"fmt"

	"github.com/alexisbeaulieu97/facet/internal/components"
	faceterrors "github.com/alexisbeaulieu97/facet/pkg/errors"
)

const (
	defaultID      = "dropdown"
	defaultMaxRows = 6
)

// Props configures one dropdown. The caller owns Value and pushes changes back with Sync.
type Props struct {
	ID           string `validate:"omitempty,control_id"`
	Options      Catalog
	Value        string
	Placeholder  string
	Disabled     bool
	Required     bool
	Error        bool
	ErrorMessage string
	Searchable   bool
	Clearable    bool
	Size         components.Size `validate:"gte=0,lte=2"`
	// MaxRows caps the visible listbox height; zero uses the default.
	MaxRows  int `validate:"gte=0"`
	OnChange func(value string) `validate:"-"`
}

// Validate checks the props for mistakes the widget would otherwise render around.
func (p Props) Validate() error {
	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}

	if err := ValidateCatalog(p.Options); err != nil {
		return err
	}

	if p.Value != "" {
		opt, _, ok := p.Options.Lookup(p.Value)
		if !ok {
			return faceterrors.NewValidationError("value", fmt.Sprintf("references unknown option %q", p.Value), nil)
		}
		if opt.Disabled {
			return faceterrors.NewValidationError("value", fmt.Sprintf("references disabled option %q", p.Value), nil)
		}
	}

	return nil
}

// ControlID returns the widget id, defaulting when unset.
func (p Props) ControlID() string {
	if p.ID == "" {
		return defaultID
	}
	return p.ID
}

// TriggerID is the focusable trigger control.
func (p Props) TriggerID() string {
	return p.ControlID() + "-trigger"
}

// ListboxID is the popup element.
func (p Props) ListboxID() string {
	return p.ControlID() + "-listbox"
}

// RowID identifies the row for value.
func (p Props) RowID(value string) string {
	return p.ControlID() + "-option-" + value
}

func (p Props) maxRows() int {
	if p.MaxRows <= 0 {
		return defaultMaxRows
	}
	return p.MaxRows
}

func (p Props) rules() Rules {
	return Rules{
		Options:    p.Options,
		Searchable: p.Searchable,
		Clearable:  p.Clearable,
		Disabled:   p.Disabled,
		Invalid:    p.Error,
		TriggerID:  p.TriggerID(),
	}
}
