package reorder

// DefaultThreshold is the vertical displacement, in pixels, below which a
// press is treated as a plain selection click
const DefaultThreshold float32 = 5

// Move relocates the item at From to To
type Move struct {
	From int
	To   int
}

// Gesture tracks one press -> drag -> release sequence.
//
// It holds no list data; callers translate pointer positions into indexes
// (see IndexAt) and apply the resulting Move themselves.
type Gesture struct {
	threshold float32

	pressed   bool
	dragging  bool
	start     int
	startY    float32
	highlight int
}

// NewGesture creates a gesture tracker. A non-positive threshold selects
// DefaultThreshold.
func NewGesture(threshold float32) *Gesture {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Gesture{threshold: threshold, start: -1, highlight: -1}
}

// Press records the index under the pointer as the gesture start
func (g *Gesture) Press(index int, y float32) {
	g.pressed = true
	g.dragging = false
	g.start = index
	g.startY = y
	g.highlight = index
}

// Drag reports the index to highlight and whether the gesture is a drag.
// Until the displacement first reaches the threshold the highlight stays on
// the start index; after that it follows the pointer.
func (g *Gesture) Drag(index int, y float32) (int, bool) {
	if !g.pressed {
		return -1, false
	}

	distance := y - g.startY
	if distance < 0 {
		distance = -distance
	}
	if distance < g.threshold && !g.dragging {
		return g.highlight, false
	}

	g.dragging = true
	if index >= 0 {
		g.highlight = index
	}
	return g.highlight, true
}

// Release ends the gesture. It returns a move only when the gesture was a
// drag that ended on a different index than it started on.
func (g *Gesture) Release(index int) (Move, bool) {
	wasDrag := g.pressed && g.dragging
	start := g.start
	g.reset()

	if !wasDrag || index < 0 || start < 0 || index == start {
		return Move{}, false
	}
	return Move{From: start, To: index}, true
}

// Cancel abandons the gesture without a move
func (g *Gesture) Cancel() {
	g.reset()
}

// Pressed returns true between Press and Release
func (g *Gesture) Pressed() bool {
	return g.pressed
}

// Dragging returns true once the threshold has been exceeded
func (g *Gesture) Dragging() bool {
	return g.dragging
}

// Start returns the index recorded at Press, or -1
func (g *Gesture) Start() int {
	return g.start
}

func (g *Gesture) reset() {
	g.pressed = false
	g.dragging = false
	g.start = -1
	g.startY = 0
	g.highlight = -1
}

// IndexAt maps a vertical offset within a list of count rows, each pitch
// pixels tall, to a row index clamped to the list. It returns -1 for an
// empty list.
func IndexAt(y, pitch float32, count int) int {
	if count <= 0 {
		return -1
	}
	if y <= 0 || pitch <= 0 {
		return 0
	}
	i := int(y / pitch)
	if i >= count {
		return count - 1
	}
	return i
}
