package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Size     Size
	Disabled bool
	Focus    bool
}

// Button is a focusable action control. It renders only; hosts decide what activation does.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size Size) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// Focused reports whether the button currently renders as focused.
func (b *Button) Focused() bool {
	return b.options.Focus
}

// View renders the button
func (b *Button) View() string {
	return b.buildStyle().Render(b.label)
}

func (b *Button) buildStyle() lipgloss.Style {
	appliers := cloneAppliers(buttonVariantAppliers(b.options.Variant), SizePadding(b.options.Size)...)
	style := Style(lipgloss.NewStyle(), appliers...)

	switch {
	case b.options.Disabled:
		style = Style(style, Border(BorderVariantNormal), Foreground(PaletteNeutral))
		style = style.Faint(true).BorderForeground(GetTheme().Palette.Neutral.Muted)
	case b.options.Focus:
		style = Style(style, Border(BorderVariantThick))
		style = style.BorderForeground(GetTheme().Palette.Primary.Base)
	}

	return style
}

func buttonVariantAppliers(variant ButtonVariant) []StyleApplier {
	switch variant {
	case ButtonVariantSecondary:
		return []StyleApplier{
			Background(PaletteSecondary),
			Border(BorderVariantRounded),
			Typography(TypographyVariantEmphasis),
		}
	case ButtonVariantMuted:
		return []StyleApplier{
			Background(PaletteNeutral),
			Border(BorderVariantRounded),
			Typography(TypographyVariantEmphasis),
		}
	default:
		return []StyleApplier{
			Background(PalettePrimary),
			Border(BorderVariantRounded),
			Typography(TypographyVariantEmphasis),
		}
	}
}

// PrimaryButton creates a medium primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label, ButtonOptions{Variant: ButtonVariantPrimary, Size: SizeMedium})
}
