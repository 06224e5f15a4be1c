// Package theme provides the typed design-token system used by every petal
// component: semantic colour slots, border and spacing scales, typography
// presets and a variant registry that maps component variants to styles.
//
// Themes are plain values. A process-wide theme is held by a Manager so
// widgets can render without explicit theme plumbing, and can be swapped at
// runtime to restyle the whole application.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups the colours for one semantic slot.
type ColourSet struct {
	// Base is the slot's main colour, used for fills.
	Base lipgloss.AdaptiveColor
	// OnBase is a colour readable on top of Base.
	OnBase lipgloss.AdaptiveColor
	// Muted is a de-emphasised companion of Base.
	Muted lipgloss.AdaptiveColor
	// Contrast is an accent that stands out against Base.
	Contrast lipgloss.AdaptiveColor
}

// Palette holds the semantic colour slots components style themselves with.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Accent    ColourSet
	Neutral   ColourSet
	Surface   ColourSet
	Info      ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
}

// Slot selects a semantic colour set from a palette.
type Slot func(Palette) ColourSet

var (
	Primary   Slot = func(p Palette) ColourSet { return p.Primary }
	Secondary Slot = func(p Palette) ColourSet { return p.Secondary }
	Accent    Slot = func(p Palette) ColourSet { return p.Accent }
	Neutral   Slot = func(p Palette) ColourSet { return p.Neutral }
	Surface   Slot = func(p Palette) ColourSet { return p.Surface }
	Info      Slot = func(p Palette) ColourSet { return p.Info }
	Success   Slot = func(p Palette) ColourSet { return p.Success }
	Warning   Slot = func(p Palette) ColourSet { return p.Warning }
	Danger    Slot = func(p Palette) ColourSet { return p.Danger }
)

// BorderVariant is a strongly-typed border token.
type BorderVariant int

const (
	BorderNone BorderVariant = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

// BorderSet groups the reusable border definitions of a theme.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

func (b BorderSet) ForVariant(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderNormal:
		return b.Normal
	case BorderRounded:
		return b.Rounded
	case BorderThick:
		return b.Thick
	case BorderDouble:
		return b.Double
	default:
		return b.None
	}
}

// SpacingSize enumerates the spacing scale tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXS
	SpacingSM
	SpacingMD
	SpacingLG
	SpacingXL
	Spacing2XL
)

const spacingSizeCount = int(Spacing2XL) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct scales for padding and margin.
type SpacingConfig struct {
	Padding spacingTable
	Margin  spacingTable
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingNone: 0,
		SpacingXS:   1,
		SpacingSM:   1,
		SpacingMD:   2,
		SpacingLG:   3,
		SpacingXL:   4,
		Spacing2XL:  6,
	}
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingMD)
	}
	return table[index]
}

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyBase TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyBody
	TypographyCode
	TypographyEmphasis
	TypographyCaption
)

// TypographyScale contains the semantic typography presets of a theme.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Caption  lipgloss.Style
}

func (t TypographyScale) ForVariant(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyTitle:
		return t.Title
	case TypographySubtitle:
		return t.Subtitle
	case TypographyBody:
		return t.Body
	case TypographyCode:
		return t.Code
	case TypographyEmphasis:
		return t.Emphasis
	case TypographyCaption:
		return t.Caption
	default:
		return t.Base
	}
}

// Theme is the complete design-token set used to style components.
type Theme struct {
	Name       string
	Palette    Palette
	Colors     ColorPalette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *Variants
}

// Normalize fills zero-valued sections of a theme with defaults so partial
// themes still render sensibly.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Variants == nil {
		t.Variants = DefaultVariants()
	}
	return t
}

// Manager coordinates concurrent access to a theme.
type Manager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewManager allocates a Manager holding the provided theme.
func NewManager(theme Theme) *Manager {
	return &Manager{theme: theme.Normalize()}
}

// Set replaces the managed theme.
func (m *Manager) Set(theme Theme) {
	m.mu.Lock()
	m.theme = theme.Normalize()
	m.mu.Unlock()
}

// Theme returns the managed theme.
func (m *Manager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

var defaultManager = NewManager(Light())

// SetCurrent replaces the process-wide theme.
func SetCurrent(theme Theme) {
	defaultManager.Set(theme)
}

// Current returns the process-wide theme.
func Current() Theme {
	return defaultManager.Theme()
}

// Helper lookups against the current theme.

// BorderStyle returns the border definition for a variant.
func BorderStyle(variant BorderVariant) lipgloss.Border {
	return Current().Borders.ForVariant(variant)
}

// PaddingValue returns the padding cell count for a spacing token.
func PaddingValue(size SpacingSize) int {
	return spacingLookup(Current().Spacing.Padding, size)
}

// MarginValue returns the margin cell count for a spacing token.
func MarginValue(size SpacingSize) int {
	return spacingLookup(Current().Spacing.Margin, size)
}

// TypographyStyle returns the typography preset for a variant.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	return Current().Typography.ForVariant(variant)
}
