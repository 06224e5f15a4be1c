package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestVariantSlotFor(t *testing.T) {
	t.Parallel()

	p := Light().Palette

	require.Equal(t, p.Primary, VariantPrimary.SlotFor()(p))
	require.Equal(t, p.Danger, VariantError.SlotFor()(p))
	require.Equal(t, p.Neutral, VariantNeutral.SlotFor()(p))
}

func TestVariantsExactMatch(t *testing.T) {
	t.Parallel()

	v := NewVariants()
	v.Register(KindButton, VariantPrimary, StateFocused, Bold())

	appliers := v.Resolve(KindButton, VariantPrimary, StateFocused)

	require.Len(t, appliers, 1)
}

func TestVariantsFallBackToNormalState(t *testing.T) {
	t.Parallel()

	v := NewVariants()
	v.Register(KindButton, VariantPrimary, StateNormal, Bold())

	appliers := v.Resolve(KindButton, VariantPrimary, StateActive)

	require.Len(t, appliers, 1)
}

func TestVariantsFallBackToNeutralState(t *testing.T) {
	t.Parallel()

	v := NewVariants()
	v.Register(KindTable, VariantNeutral, StateNormal, Faint())
	v.Register(KindTable, VariantNeutral, StateActive, Bold())

	appliers := v.Resolve(KindTable, VariantPrimary, StateActive)

	require.Len(t, appliers, 1)
	require.True(t, StyleWith(Light(), lipgloss.NewStyle(), appliers...).GetBold())
}

func TestVariantsFallBackToNeutral(t *testing.T) {
	t.Parallel()

	v := NewVariants()
	v.Register(KindBadge, VariantNeutral, StateNormal, Faint())

	appliers := v.Resolve(KindBadge, VariantWarning, StateDisabled)

	require.Len(t, appliers, 1)
}

func TestThemeApplyKeepsStateHighlights(t *testing.T) {
	t.Parallel()

	th := Light()

	selected := th.Apply(lipgloss.NewStyle(), KindTable, VariantPrimary, StateActive)
	baseline := th.Apply(lipgloss.NewStyle(), KindTable, VariantNeutral, StateNormal)

	require.True(t, selected.GetBold())
	require.NotEqual(t, baseline.GetForeground(), selected.GetBackground())

	active := th.Apply(lipgloss.NewStyle(), KindNavbar, VariantPrimary, StateActive)
	require.True(t, active.GetBold())

	focused := th.Apply(lipgloss.NewStyle(), KindNavbar, VariantPrimary, StateFocused)
	require.True(t, focused.GetBold())
}

func TestVariantsUnknownKindResolvesNil(t *testing.T) {
	t.Parallel()

	v := NewVariants()

	require.Nil(t, v.Resolve(KindModal, VariantPrimary, StateNormal))
}

func TestDefaultVariantsCoverAllKinds(t *testing.T) {
	t.Parallel()

	v := DefaultVariants()
	kinds := []Kind{
		KindText, KindBadge, KindButton, KindAlert, KindCard, KindTabs,
		KindDropdown, KindAccordion, KindSwap, KindTooltip, KindModal,
		KindCarousel, KindTable, KindNavbar, KindProgress, KindLoading,
	}

	for _, kind := range kinds {
		require.NotEmpty(t, v.Resolve(kind, VariantNeutral, StateNormal), kind)
	}
}

func TestThemeApplyUsesRegisteredStyle(t *testing.T) {
	t.Parallel()

	th := Light()

	styled := th.Apply(lipgloss.NewStyle(), KindButton, VariantPrimary, StateNormal)

	left, right := styled.GetPaddingLeft(), styled.GetPaddingRight()
	require.Greater(t, left, 0)
	require.Equal(t, left, right)
}
