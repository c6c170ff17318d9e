package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/dotsandboxes/internal/render"
)

// InputManager implements render.InputManager from tcell events. The engine
// feeds it events between ticks; key presses last for one tick.
type InputManager struct {
	mouseX, mouseY int
	buttons        tcell.ButtonMask
	pressed        map[render.Key]bool
}

// NewInputManager creates an input manager with no keys pressed.
func NewInputManager() *InputManager {
	return &InputManager{pressed: make(map[render.Key]bool)}
}

// IsKeyJustPressed returns whether the key was pressed since the last tick.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.pressed[key]
}

// GetCursorPosition returns the last mouse position in logical pixels.
func (m *InputManager) GetCursorPosition() (x, y int) {
	return m.mouseX, m.mouseY
}

// IsMouseButtonPressed returns whether the button is held.
func (m *InputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	return m.buttons&buttonMask(button) != 0
}

// AppendTouchIDs returns ids unchanged; terminals have no touch input.
func (m *InputManager) AppendTouchIDs(ids []render.TouchID) []render.TouchID {
	return ids
}

// TouchPosition always returns (0, 0).
func (m *InputManager) TouchPosition(render.TouchID) (x, y int) {
	return 0, 0
}

// beginTick forgets the keys pressed during the previous tick.
func (m *InputManager) beginTick() {
	clear(m.pressed)
}

// HandleEvent applies ev. It reports whether the mouse buttons changed, so
// that a press and a release are never seen in the same tick.
func (m *InputManager) HandleEvent(ev tcell.Event) (buttonsChanged bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		m.mouseX, m.mouseY = x/xScale, y
		b := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		buttonsChanged = b != m.buttons
		m.buttons = b
	case *tcell.EventKey:
		if key, ok := keyFromEvent(ev); ok {
			m.pressed[key] = true
		}
	}
	return buttonsChanged
}

func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'c':
			return render.KeyC, true
		case 'h':
			return render.KeyH, true
		case 'p':
			return render.KeyP, true
		case 'q':
			return render.KeyEscape, true
		}
	}
	return 0, false
}

func buttonMask(button render.MouseButton) tcell.ButtonMask {
	switch button {
	case render.MouseButtonRight:
		return tcell.Button2
	case render.MouseButtonMiddle:
		return tcell.Button3
	default:
		return tcell.Button1
	}
}

var _ render.InputManager = (*InputManager)(nil)
