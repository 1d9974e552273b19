package systems

// PointerSource reports the current pointer position in screen pixels.
// ebiten.CursorPosition and touch positions are adapted to this.
type PointerSource interface {
	CursorPosition() (int, int)
}

// PointerInputSystem turns a polled pointer into move events: the listener
// only runs when the position differs from the last poll.
type PointerInputSystem struct {
	source   PointerSource
	lastX    int
	lastY    int
	havePrev bool
}

// NewPointerInputSystem creates an input system polling source.
func NewPointerInputSystem(source PointerSource) *PointerInputSystem {
	return &PointerInputSystem{source: source}
}

// Poll reads the source and calls onMove when the pointer moved.
// It reports whether a move was emitted.
func (s *PointerInputSystem) Poll(onMove func(x, y float64)) bool {
	if s.source == nil {
		return false
	}

	x, y := s.source.CursorPosition()
	if s.havePrev && x == s.lastX && y == s.lastY {
		return false
	}

	s.lastX, s.lastY = x, y
	s.havePrev = true
	if onMove != nil {
		onMove(float64(x), float64(y))
	}
	return true
}
