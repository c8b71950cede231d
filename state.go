package iconic

// State selects the visual state an icon is rendered in.
// States mirror the rendering modes of desktop widget toolkits: a
// widget's icon is drawn differently when the widget is disabled,
// hovered (active), or selected.
type State int

const (
	// StateNormal renders the icon with its base options.
	StateNormal State = iota

	// StateDisabled renders the icon for a disabled widget.
	StateDisabled

	// StateActive renders the icon for a hovered or pressed widget.
	StateActive

	// StateSelected renders the icon for a selected widget.
	StateSelected
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateDisabled:
		return "Disabled"
	case StateActive:
		return "Active"
	case StateSelected:
		return "Selected"
	default:
		return "Unknown"
	}
}
