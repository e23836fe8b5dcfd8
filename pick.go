package glui

import "strconv"

// PickKind is the class of control captured by a mouse press.
type PickKind uint8

const (
	PickNone PickKind = iota
	PickSlider
	PickButton
	PickMover
	PickAimer
	PickTextField
	// PickCamera is a press that hit no control and drags the view instead.
	PickCamera
)

func (k PickKind) String() string {
	switch k {
	case PickNone:
		return "none"
	case PickSlider:
		return "slider"
	case PickButton:
		return "button"
	case PickMover:
		return "mover"
	case PickAimer:
		return "aimer"
	case PickTextField:
		return "textfield"
	case PickCamera:
		return "camera"
	}
	return "PickKind(" + strconv.Itoa(int(k)) + ")"
}

// Pick identifies a control held by a [Context]: its kind and the ID returned
// when it was added. ID is meaningless for PickNone and PickCamera.
type Pick struct {
	Kind PickKind
	ID   int
}

// IsNone reports whether p refers to nothing.
func (p Pick) IsNone() bool { return p.Kind == PickNone }

// IsControl reports whether p refers to a widget, as opposed to nothing or the camera.
func (p Pick) IsControl() bool { return p.Kind != PickNone && p.Kind != PickCamera }

func (p Pick) String() string {
	if !p.IsControl() {
		return p.Kind.String()
	}
	return p.Kind.String() + "[" + strconv.Itoa(p.ID) + "]"
}
