package theme

import "github.com/charmbracelet/lipgloss"

// Kind identifies a component family in the variant registry.
type Kind int

const (
	KindText Kind = iota
	KindBadge
	KindButton
	KindAlert
	KindCard
	KindTabs
	KindDropdown
	KindAccordion
	KindSwap
	KindTooltip
	KindModal
	KindCarousel
	KindTable
	KindNavbar
	KindProgress
	KindLoading
)

// Variant is the semantic colour variant of a component instance.
type Variant int

const (
	VariantNeutral Variant = iota
	VariantPrimary
	VariantSecondary
	VariantAccent
	VariantInfo
	VariantSuccess
	VariantWarning
	VariantError
	VariantGhost
)

// SlotFor maps a variant to the palette slot it draws from.
func (v Variant) SlotFor() Slot {
	switch v {
	case VariantPrimary:
		return Primary
	case VariantSecondary:
		return Secondary
	case VariantAccent:
		return Accent
	case VariantInfo:
		return Info
	case VariantSuccess:
		return Success
	case VariantWarning:
		return Warning
	case VariantError:
		return Danger
	case VariantGhost:
		return Surface
	default:
		return Neutral
	}
}

// State is the interaction state of a component instance.
type State int

const (
	StateNormal State = iota
	StateFocused
	StateActive
	StateDisabled
)

type variantKey struct {
	kind    Kind
	variant Variant
	state   State
}

// Variants resolves (kind, variant, state) triples to style appliers, letting
// a theme restyle every widget without touching widget code.
type Variants struct {
	entries map[variantKey][]StyleApplier
}

// NewVariants allocates an empty registry.
func NewVariants() *Variants {
	return &Variants{entries: make(map[variantKey][]StyleApplier)}
}

// Register stores the appliers for a (kind, variant, state) triple.
func (v *Variants) Register(kind Kind, variant Variant, state State, appliers ...StyleApplier) {
	v.entries[variantKey{kind, variant, state}] = appliers
}

// Resolve returns the appliers for a triple, falling back first to the
// variant's normal state, then to the neutral variant in the requested
// state, and finally to the kind's neutral baseline. The neutral-state step
// keeps state styling (focus rings, active highlights) alive for kinds that
// only register neutral entries.
func (v *Variants) Resolve(kind Kind, variant Variant, state State) []StyleApplier {
	if v == nil || v.entries == nil {
		return nil
	}
	if appliers, ok := v.entries[variantKey{kind, variant, state}]; ok {
		return appliers
	}
	if appliers, ok := v.entries[variantKey{kind, variant, StateNormal}]; ok {
		return appliers
	}
	if appliers, ok := v.entries[variantKey{kind, VariantNeutral, state}]; ok {
		return appliers
	}
	if appliers, ok := v.entries[variantKey{kind, VariantNeutral, StateNormal}]; ok {
		return appliers
	}
	return nil
}

// Apply resolves and applies a triple against a base style using theme t.
func (t Theme) Apply(base lipgloss.Style, kind Kind, variant Variant, state State) lipgloss.Style {
	return StyleWith(t, base, t.Variants.Resolve(kind, variant, state)...)
}

// DefaultVariants returns the registry shipped with the built-in themes.
func DefaultVariants() *Variants {
	v := NewVariants()

	colourVariants := []Variant{
		VariantNeutral, VariantPrimary, VariantSecondary, VariantAccent,
		VariantInfo, VariantSuccess, VariantWarning, VariantError,
	}

	for _, cv := range colourVariants {
		slot := cv.SlotFor()

		v.Register(KindText, cv, StateNormal, Foreground(slot))

		v.Register(KindBadge, cv, StateNormal,
			Background(slot), PaddingX(SpacingXS), Bold())

		v.Register(KindButton, cv, StateNormal,
			Background(slot), Border(BorderRounded),
			PaddingX(SpacingMD), Typography(TypographyEmphasis))
		v.Register(KindButton, cv, StateFocused,
			Background(slot), Border(BorderThick), BorderForeground(slot),
			PaddingX(SpacingMD), Typography(TypographyEmphasis))
		v.Register(KindButton, cv, StateDisabled,
			MutedForeground(Neutral), Border(BorderNormal),
			PaddingX(SpacingMD), Faint())

		v.Register(KindAlert, cv, StateNormal,
			Background(slot), Border(BorderNormal), PaddingX(SpacingSM))

		v.Register(KindProgress, cv, StateNormal, Foreground(slot))
		v.Register(KindLoading, cv, StateNormal, Foreground(slot))
	}

	v.Register(KindBadge, VariantGhost, StateNormal,
		MutedForeground(Surface), PaddingX(SpacingXS))
	v.Register(KindButton, VariantGhost, StateNormal,
		Foreground(Surface), PaddingX(SpacingMD))
	v.Register(KindButton, VariantGhost, StateFocused,
		Foreground(Primary), Border(BorderThick), BorderForeground(Primary),
		PaddingX(SpacingMD))

	v.Register(KindCard, VariantNeutral, StateNormal,
		Background(Surface), Border(BorderRounded), Padding(SpacingSM))

	v.Register(KindTabs, VariantNeutral, StateNormal,
		MutedForeground(Surface), PaddingX(SpacingSM))
	v.Register(KindTabs, VariantNeutral, StateActive,
		Foreground(Primary), Bold(), PaddingX(SpacingSM))
	v.Register(KindTabs, VariantNeutral, StateDisabled,
		MutedForeground(Neutral), Faint(), PaddingX(SpacingSM))

	v.Register(KindDropdown, VariantNeutral, StateNormal,
		Border(BorderRounded), BorderForeground(Neutral), PaddingX(SpacingSM))
	v.Register(KindDropdown, VariantNeutral, StateFocused,
		Border(BorderRounded), BorderForeground(Primary), PaddingX(SpacingSM))
	v.Register(KindDropdown, VariantNeutral, StateActive,
		Background(Primary), PaddingX(SpacingSM))

	v.Register(KindAccordion, VariantNeutral, StateNormal,
		Foreground(Surface), Bold())
	v.Register(KindAccordion, VariantNeutral, StateFocused,
		Foreground(Primary), Bold())

	v.Register(KindTooltip, VariantNeutral, StateNormal,
		Background(Neutral), PaddingX(SpacingXS))

	v.Register(KindModal, VariantNeutral, StateNormal,
		Background(Surface), Border(BorderRounded), BorderForeground(Primary),
		Padding(SpacingSM))

	v.Register(KindNavbar, VariantNeutral, StateNormal,
		Background(Surface), PaddingX(SpacingSM))
	v.Register(KindNavbar, VariantNeutral, StateFocused,
		Background(Primary), Bold(), PaddingX(SpacingSM))
	v.Register(KindNavbar, VariantNeutral, StateActive,
		Foreground(Primary), Bold(), PaddingX(SpacingSM))
	v.Register(KindNavbar, VariantNeutral, StateDisabled,
		MutedForeground(Neutral), Faint(), PaddingX(SpacingSM))

	v.Register(KindTable, VariantNeutral, StateNormal,
		Foreground(Surface))
	v.Register(KindTable, VariantNeutral, StateFocused,
		Foreground(Primary))
	v.Register(KindTable, VariantNeutral, StateActive,
		Background(Primary), Bold())

	v.Register(KindSwap, VariantNeutral, StateNormal, Foreground(Surface))
	v.Register(KindSwap, VariantNeutral, StateFocused, Foreground(Primary))

	v.Register(KindCarousel, VariantNeutral, StateNormal,
		Border(BorderRounded), BorderForeground(Neutral), Padding(SpacingSM))

	return v
}
