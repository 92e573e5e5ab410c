package mockcalc

// DropdownStyle models the stylesheet rules that govern the item dropdown. The
// application enlarged the dropdown at some point; both the legacy and the enlarged
// rule sets are kept here so the suite can assert the change took effect.
type DropdownStyle struct {
	MaxHeightPx int
	FontSizePt  int
	Scrollable  bool
}

// LegacyDropdownStyle is the rule set before the dropdown was enlarged.
func LegacyDropdownStyle() DropdownStyle {
	return DropdownStyle{MaxHeightPx: 240, FontSizePt: 10, Scrollable: false}
}

// DefaultDropdownStyle is the current (enlarged) rule set.
func DefaultDropdownStyle() DropdownStyle {
	return DropdownStyle{MaxHeightPx: 480, FontSizePt: 14, Scrollable: true}
}

// Dropdown is the item-picker UI collaborator, reduced to the state the suite asserts
// against.
type Dropdown struct {
	Style DropdownStyle
}

func NewDropdown() *Dropdown {
	return &Dropdown{Style: DefaultDropdownStyle()}
}
