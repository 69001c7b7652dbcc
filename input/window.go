package input

// Window is the primary window's state as seen by systems. Backends copy
// size and focus in each frame and apply cursor changes back to the OS.
type Window struct {
	Width         float32
	Height        float32
	Focused       bool
	CursorLocked  bool
	CursorVisible bool
}

// NewWindow returns an unlocked window with a visible cursor.
func NewWindow(width, height float32) Window {
	return Window{
		Width:         width,
		Height:        height,
		Focused:       true,
		CursorVisible: true,
	}
}

// ToggleGrab flips cursor lock and visibility together.
func (w *Window) ToggleGrab() {
	w.CursorLocked = !w.CursorLocked
	w.CursorVisible = !w.CursorVisible
}

// SetGrab locks and hides the cursor, or releases and shows it.
func (w *Window) SetGrab(grab bool) {
	w.CursorLocked = grab
	w.CursorVisible = !grab
}

// Scale is the smaller window dimension, used to keep horizontal and vertical
// look sensitivity equal.
func (w *Window) Scale() float32 {
	return min(w.Width, w.Height)
}

// UICapture is set by overlay UIs that are consuming input this frame.
type UICapture struct {
	Mouse    bool
	Keyboard bool
}
