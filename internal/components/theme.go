package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Size is the shared size token for controls such as buttons and dropdown triggers.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// String returns the lowercase token name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// ParseSize maps a token name to a Size. Unknown and empty names resolve to medium.
func ParseSize(name string) (Size, bool) {
	switch name {
	case "small":
		return SizeSmall, true
	case "medium", "":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	default:
		return SizeMedium, false
	}
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantEmphasis
	TypographyVariantMuted
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantMuted
)

type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
	InputStateDisabled
)

// ColourSet represents a semantic color set with base, on-base and muted tones.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// InputStyles describes the frame of text-like controls in each interaction state.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Invalid  lipgloss.Style
	Disabled lipgloss.Style
}

// DropdownStyles holds the tokens the dropdown listbox renders with.
type DropdownStyles struct {
	Placeholder  lipgloss.Style
	Indicator    lipgloss.Style
	Clear        lipgloss.Style
	Listbox      lipgloss.Style
	Row          lipgloss.Style
	RowActive    lipgloss.Style
	RowDisabled  lipgloss.Style
	SelectedMark string
	ActiveMark   string
	Empty        lipgloss.Style
}

// Theme represents the global styling theme for components
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Dropdown   DropdownStyles
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	if spacingTableIsZero(theme.Spacing.Padding) {
		theme.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(theme.Spacing.Margin) {
		theme.Spacing.Margin = defaultSpacingTable()
	}
	if theme.Dropdown.SelectedMark == "" {
		theme.Dropdown.SelectedMark = "✓"
	}
	if theme.Dropdown.ActiveMark == "" {
		theme.Dropdown.ActiveMark = "›"
	}
	return theme
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

// DefaultTheme returns the default theme for components
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Secondary: ColourSet{
			Base:   ac("#a855f7", "#c084fc"),
			OnBase: ac("#f8fafc", "#1f2937"),
			Muted:  ac("#7c3aed", "#6b21a8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Success: ColourSet{
			Base:   ac("#22c55e", "#4ade80"),
			OnBase: ac("#052e16", "#022c22"),
			Muted:  ac("#16a34a", "#15803d"),
		},
		Warning: ColourSet{
			Base:   ac("#eab308", "#facc15"),
			OnBase: ac("#422006", "#422006"),
			Muted:  ac("#ca8a04", "#a16207"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Info: ColourSet{
			Base:   ac("#06b6d4", "#22d3ee"),
			OnBase: ac("#083344", "#04121a"),
			Muted:  ac("#0891b2", "#0e7490"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	theme := Theme{
		Palette:    palette,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: defaultTypography(palette),
		Input:      defaultInputStyles(palette, borders),
		Dropdown:   defaultDropdownStyles(palette, borders),
	}

	return normalizeTheme(theme)
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base).Faint(true),
	}
}

func defaultInputStyles(p Palette, b BorderSet) InputStyles {
	frame := lipgloss.NewStyle().
		BorderStyle(b.Rounded).
		BorderForeground(p.Neutral.Muted).
		Padding(0, 1).
		Foreground(p.Surface.OnBase)

	return InputStyles{
		Default:  frame,
		Focus:    frame.BorderStyle(b.Thick).BorderForeground(p.Primary.Base),
		Invalid:  frame.BorderForeground(p.Danger.Base),
		Disabled: frame.BorderForeground(p.Neutral.Muted).Faint(true),
	}
}

func defaultDropdownStyles(p Palette, b BorderSet) DropdownStyles {
	row := lipgloss.NewStyle().Foreground(p.Surface.OnBase).Padding(0, 1)

	return DropdownStyles{
		Placeholder: lipgloss.NewStyle().Foreground(p.Neutral.Base).Faint(true),
		Indicator:   lipgloss.NewStyle().Foreground(p.Neutral.Base),
		Clear:       lipgloss.NewStyle().Foreground(p.Danger.Muted).Bold(true),
		Listbox: lipgloss.NewStyle().
			BorderStyle(b.Normal).
			BorderForeground(p.Neutral.Muted),
		Row:          row,
		RowActive:    row.Background(p.Primary.Base).Foreground(p.Primary.OnBase).Bold(true),
		RowDisabled:  row.Foreground(p.Neutral.Base).Faint(true).Strikethrough(true),
		SelectedMark: "✓",
		ActiveMark:   "›",
		Empty:        row.Foreground(p.Neutral.Base).Italic(true),
	}
}

// DarkTheme returns a dark theme variant
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}

	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:  lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	theme.Input = defaultInputStyles(theme.Palette, theme.Borders)
	theme.Dropdown = defaultDropdownStyles(theme.Palette, theme.Borders)
	return normalizeTheme(theme)
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

func PaddingValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Padding, size)
}

func MarginValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	return typographyFor(GetTheme(), variant)
}

func typographyFor(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// InputStyle returns the frame for a text-like control in the given state.
func InputStyle(state InputState) lipgloss.Style {
	input := GetTheme().Input
	switch state {
	case InputStateFocus:
		return input.Focus
	case InputStateInvalid:
		return input.Invalid
	case InputStateDisabled:
		return input.Disabled
	default:
		return input.Default
	}
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to create a final style
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant))
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(typographyFor(theme, variant))
	}
}

// SizePadding maps a control Size onto horizontal and vertical padding.
func SizePadding(size Size) []StyleApplier {
	switch size {
	case SizeSmall:
		return []StyleApplier{PaddingX(SpacingSizeNone), PaddingY(SpacingSizeNone)}
	case SizeLarge:
		return []StyleApplier{PaddingX(SpacingSizeMedium), PaddingY(SpacingSizeSmall)}
	default:
		return []StyleApplier{PaddingX(SpacingSizeSmall), PaddingY(SpacingSizeNone)}
	}
}

func cloneAppliers(base []StyleApplier, extras ...StyleApplier) []StyleApplier {
	cloned := make([]StyleApplier, len(base)+len(extras))
	copy(cloned, base)
	copy(cloned[len(base):], extras)
	return cloned
}
