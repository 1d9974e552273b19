package systems

import "testing"

type fakePointer struct {
	x, y int
}

func (f *fakePointer) CursorPosition() (int, int) { return f.x, f.y }

// TestPointerInputEmitsOnlyOnMove 只有位置变化时才产生移动事件
func TestPointerInputEmitsOnlyOnMove(t *testing.T) {
	src := &fakePointer{x: 10, y: 20}
	input := NewPointerInputSystem(src)

	var moves [][2]float64
	record := func(x, y float64) { moves = append(moves, [2]float64{x, y}) }

	input.Poll(record) // 首次观察
	input.Poll(record) // 未移动
	src.x = 15
	input.Poll(record)
	input.Poll(record)

	want := [][2]float64{{10, 20}, {15, 20}}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestPointerInputNilSource(t *testing.T) {
	input := NewPointerInputSystem(nil)
	if input.Poll(func(float64, float64) { t.Error("unexpected move") }) {
		t.Error("Poll reported a move without a source")
	}
}
