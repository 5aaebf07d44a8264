package reorder

import "testing"

func TestGesture_ClickBelowThresholdIsSelection(t *testing.T) {
	g := NewGesture(DefaultThreshold)
	g.Press(2, 100)

	highlight, dragging := g.Drag(3, 103)
	if dragging {
		t.Error("Expected displacement below threshold not to start a drag")
	}
	if highlight != 2 {
		t.Errorf("Expected highlight to stay on start index 2, got %d", highlight)
	}

	if _, ok := g.Release(3); ok {
		t.Error("Expected no move for a plain click")
	}
}

func TestGesture_DragProducesMove(t *testing.T) {
	g := NewGesture(DefaultThreshold)
	g.Press(0, 10)

	highlight, dragging := g.Drag(1, 40)
	if !dragging || highlight != 1 {
		t.Fatalf("Drag() = (%d, %v), expected (1, true)", highlight, dragging)
	}
	highlight, _ = g.Drag(2, 70)
	if highlight != 2 {
		t.Errorf("Expected highlight to follow pointer to 2, got %d", highlight)
	}

	move, ok := g.Release(2)
	if !ok {
		t.Fatal("Expected a move")
	}
	if move != (Move{From: 0, To: 2}) {
		t.Errorf("Unexpected move %+v", move)
	}
	if g.Pressed() || g.Dragging() || g.Start() != -1 {
		t.Error("Expected gesture state to reset after release")
	}
}

func TestGesture_DragBackToStartIsNoMove(t *testing.T) {
	g := NewGesture(0)
	g.Press(1, 30)
	g.Drag(3, 90)

	if _, ok := g.Release(1); ok {
		t.Error("Expected no move when released on the start index")
	}
}

func TestGesture_StaysDragAfterReturningWithinThreshold(t *testing.T) {
	g := NewGesture(DefaultThreshold)
	g.Press(0, 10)
	g.Drag(2, 70)

	highlight, dragging := g.Drag(0, 12)
	if !dragging {
		t.Error("Expected gesture to remain a drag")
	}
	if highlight != 0 {
		t.Errorf("Expected highlight to follow the pointer back to 0, got %d", highlight)
	}
	if _, ok := g.Release(highlight); ok {
		t.Error("Expected no move when the pointer returned to the start")
	}
}

func TestGesture_DragWithoutPress(t *testing.T) {
	g := NewGesture(DefaultThreshold)

	if highlight, dragging := g.Drag(1, 50); highlight != -1 || dragging {
		t.Errorf("Drag() without press = (%d, %v)", highlight, dragging)
	}
	if _, ok := g.Release(1); ok {
		t.Error("Expected no move without press")
	}
}

func TestGesture_Cancel(t *testing.T) {
	g := NewGesture(DefaultThreshold)
	g.Press(0, 0)
	g.Drag(2, 60)
	g.Cancel()

	if _, ok := g.Release(2); ok {
		t.Error("Expected no move after cancel")
	}
}

func TestIndexAt(t *testing.T) {
	tests := []struct {
		y        float32
		pitch    float32
		count    int
		expected int
	}{
		{10, 30, 0, -1},
		{-5, 30, 4, 0},
		{0, 30, 4, 0},
		{29, 30, 4, 0},
		{30, 30, 4, 1},
		{95, 30, 4, 3},
		{500, 30, 4, 3},
		{50, 0, 4, 0},
	}

	for _, test := range tests {
		result := IndexAt(test.y, test.pitch, test.count)
		if result != test.expected {
			t.Errorf("IndexAt(%v, %v, %d) = %d, expected %d", test.y, test.pitch, test.count, result, test.expected)
		}
	}
}
