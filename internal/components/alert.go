package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant AlertVariant
	Title   string
	// Inline renders the message as coloured text without the boxed background,
	// for field-level messages under a control.
	Inline bool
}

// Alert represents a message alert component
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{
		message: message,
		options: opts,
	}
}

// WithTitle sets the alert title
func (a *Alert) WithTitle(title string) *Alert {
	a.options.Title = title
	return a
}

// View renders the alert. An alert with neither title nor message renders nothing.
func (a *Alert) View() string {
	if a.options.Title == "" && a.message == "" {
		return ""
	}

	if a.options.Inline {
		text := a.message
		if a.options.Title != "" {
			text = a.options.Title + ": " + text
		}
		return Style(lipgloss.NewStyle(), Foreground(alertSlot(a.options.Variant))).Render(text)
	}

	var content []string
	if a.options.Title != "" {
		titleStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis))
		content = append(content, titleStyle.Render(a.options.Title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}

	style := Style(lipgloss.NewStyle(),
		Background(alertSlot(a.options.Variant)),
		Border(BorderVariantNormal),
		PaddingX(SpacingSizeSmall),
	)
	return style.Render(strings.Join(content, "\n"))
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantError:
		return PaletteDanger
	case AlertVariantWarning:
		return PaletteWarning
	default:
		return PaletteInfo
	}
}

// FieldError creates the inline error message shown beneath an invalid control.
func FieldError(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Inline: true})
}

// ErrorAlert creates a boxed error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Title: "Error"})
}
