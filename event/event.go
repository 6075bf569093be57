// Package event defines the joystick event carried on the wire and its codec.
package event

// Kind is the raw event type code reported by the Linux joystick interface.
// Codes other than button/axis are carried through untouched; consumers decide
// what to do with them.
type Kind int

const (
	KindButton Kind = 0x01
	KindAxis   Kind = 0x02

	// KindInit is OR'd into the type code for synthetic events emitted when a
	// device is first opened, describing its initial state.
	KindInit Kind = 0x80
)

// IsButton reports whether the kind is a button event, init-flagged or not.
func (k Kind) IsButton() bool { return k&^KindInit == KindButton }

// IsAxis reports whether the kind is an axis event, init-flagged or not.
func (k Kind) IsAxis() bool { return k&^KindInit == KindAxis }

func (k Kind) String() string {
	switch k &^ KindInit {
	case KindButton:
		return "button"
	case KindAxis:
		return "axis"
	default:
		return "other"
	}
}

// Event is one joystick state change. Events are self-contained: decoding one
// never depends on any other datagram.
type Event struct {
	Kind Kind
	// Time is the source's timestamp in milliseconds. Datagrams reorder and
	// drop, so it is display-only and never drives protocol decisions.
	Time   uint32
	Number int
	Value  int32
}
