package museum

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		pos  mgl32.Vec3
		want CellKey
	}{
		{mgl32.Vec3{0, 0, 0}, CellKey{0, 0, 0}},
		{mgl32.Vec3{14.6, 0, -3.2}, CellKey{15, 0, -3}},
		{mgl32.Vec3{-0.4, 2.5, 0.5}, CellKey{0, 3, 1}},
		{mgl32.Vec3{29.9, 0.1, 30.4}, CellKey{30, 0, 30}},
		{mgl32.Vec3{-15.5, 0, -15.4}, CellKey{-16, 0, -15}},
	}

	for _, tt := range tests {
		if got := KeyOf(tt.pos); got != tt.want {
			t.Errorf("KeyOf(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestOccupancyGridLifecycle(t *testing.T) {
	g := NewOccupancyGrid()
	pos := mgl32.Vec3{0, 0, 30}

	if got := g.Get(pos); got != nil {
		t.Fatalf("Get em grade vazia = %v, want nil", got)
	}

	s := &Space{ID: 1, Kind: KindRoom}
	g.Set(pos, s)

	if got := g.Get(mgl32.Vec3{0.2, 0, 29.8}); got != s {
		t.Errorf("Get na mesma célula quantizada = %v, want o ocupante", got)
	}
	if got := g.Get(mgl32.Vec3{0, 0, 31}); got != nil {
		t.Errorf("Get em célula vizinha = %v, want nil", got)
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}

	g.Remove(pos)
	if got := g.Get(pos); got != nil {
		t.Errorf("Get após Remove = %v, want nil", got)
	}
	if g.Len() != 0 {
		t.Errorf("Len após Remove = %d, want 0", g.Len())
	}
}

func TestOccupancyGridRemoveMissing(t *testing.T) {
	g := NewOccupancyGrid()
	g.Remove(mgl32.Vec3{5, 0, 5})
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0", g.Len())
	}
}
