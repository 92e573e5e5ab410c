package calctests

import (
	"github.com/factoriolab/calc-test-harness/framework/caltest"
	"github.com/factoriolab/calc-test-harness/mockcalc"
)

// doDropdownTests asserts the enlarged dropdown styling, informally: the current rule
// set must be strictly bigger than the legacy one and scrollable so the longer item
// list stays usable.
func doDropdownTests(t *caltest.T) {
	t.Run("enlarged style values", func(t *caltest.T) {
		style := mockcalc.NewDropdown().Style
		t.AssertEquals(style.MaxHeightPx, 480)
		t.AssertEquals(style.FontSizePt, 14)
		t.AssertHolds(style.Scrollable, "an enlarged dropdown must scroll")
	})

	t.Run("larger than the legacy style", func(t *caltest.T) {
		legacy := mockcalc.LegacyDropdownStyle()
		current := mockcalc.DefaultDropdownStyle()
		heightMessage := "max height did not grow: %d -> %d"
		t.AssertHolds(current.MaxHeightPx > legacy.MaxHeightPx,
			heightMessage, legacy.MaxHeightPx, current.MaxHeightPx)
		fontMessage := "font size did not grow: %d -> %d"
		t.AssertHolds(current.FontSizePt > legacy.FontSizePt,
			fontMessage, legacy.FontSizePt, current.FontSizePt)
	})
}
