package input

import (
	"slices"

	"chosenoffset.com/dotsandboxes/internal/render"
)

// EventType is the kind of pointer event.
type EventType int

const (
	EventDown EventType = iota
	EventMove
	EventUp
)

// Pointer identifies the device an event came from.
type Pointer int

const (
	PointerMouse Pointer = iota
	PointerTouch
)

// Event is a pointer event in pixel coordinates.
type Event struct {
	Type    EventType
	Pointer Pointer
	X, Y    float64
}

// PointerSource polls an InputManager once per tick and reports changes as
// events. Only the left mouse button and the first touch in contact are
// tracked; mouse input is ignored while a touch is active.
type PointerSource struct {
	input render.InputManager

	mouseDown      bool
	mouseX, mouseY int
	mouseSeen      bool
	touchID        render.TouchID
	touchActive    bool
	touchX, touchY int
	ids            []render.TouchID
}

// NewPointerSource creates a source reading from input.
func NewPointerSource(input render.InputManager) *PointerSource {
	return &PointerSource{input: input}
}

// Poll appends the events since the previous call to events. Moves come
// before presses and releases from the same tick.
func (s *PointerSource) Poll(events []Event) []Event {
	events = s.pollTouch(events)
	if s.touchActive {
		return events
	}
	return s.pollMouse(events)
}

func (s *PointerSource) pollTouch(events []Event) []Event {
	s.ids = s.input.AppendTouchIDs(s.ids[:0])

	if s.touchActive {
		if !slices.Contains(s.ids, s.touchID) {
			// Released touches have no position; end where it was last seen.
			s.touchActive = false
			return append(events, Event{Type: EventUp, Pointer: PointerTouch, X: float64(s.touchX), Y: float64(s.touchY)})
		}
		x, y := s.input.TouchPosition(s.touchID)
		if x != s.touchX || y != s.touchY {
			s.touchX, s.touchY = x, y
			events = append(events, Event{Type: EventMove, Pointer: PointerTouch, X: float64(x), Y: float64(y)})
		}
		return events
	}

	if len(s.ids) == 0 {
		return events
	}
	s.touchID = s.ids[0]
	s.touchActive = true
	s.touchX, s.touchY = s.input.TouchPosition(s.touchID)
	return append(events, Event{Type: EventDown, Pointer: PointerTouch, X: float64(s.touchX), Y: float64(s.touchY)})
}

func (s *PointerSource) pollMouse(events []Event) []Event {
	x, y := s.input.GetCursorPosition()
	if s.mouseSeen && (x != s.mouseX || y != s.mouseY) {
		events = append(events, Event{Type: EventMove, Pointer: PointerMouse, X: float64(x), Y: float64(y)})
	}
	s.mouseX, s.mouseY = x, y
	s.mouseSeen = true

	// Detect press and release edges (pressed this tick but not last tick).
	pressed := s.input.IsMouseButtonPressed(render.MouseButtonLeft)
	switch {
	case pressed && !s.mouseDown:
		events = append(events, Event{Type: EventDown, Pointer: PointerMouse, X: float64(x), Y: float64(y)})
	case !pressed && s.mouseDown:
		events = append(events, Event{Type: EventUp, Pointer: PointerMouse, X: float64(x), Y: float64(y)})
	}
	s.mouseDown = pressed
	return events
}
