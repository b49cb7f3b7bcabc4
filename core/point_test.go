package core

import "testing"

func TestWrappedStaysInBounds(t *testing.T) {
	const width, height = 10, 10

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			p := NewPoint(uint8(x), uint8(y))
			for d := DirUp; d <= DirLeft; d++ {
				n := p.Wrapped(d, width, height)
				if int(n.X) >= width || int(n.Y) >= height {
					t.Fatalf("Step %v from %v left bounds: %v", d, p, n)
				}
			}
		}
	}
}

func TestWrappedEdges(t *testing.T) {
	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"left edge re-enters right", NewPoint(0, 3), DirLeft, NewPoint(9, 3)},
		{"right edge re-enters left", NewPoint(9, 3), DirRight, NewPoint(0, 3)},
		{"top edge re-enters bottom", NewPoint(4, 0), DirUp, NewPoint(4, 9)},
		{"bottom edge re-enters top", NewPoint(4, 9), DirDown, NewPoint(4, 0)},
		{"interior move", NewPoint(5, 4), DirRight, NewPoint(6, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Wrapped(tt.dir, 10, 10)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWrappedBeyondShrunkBound(t *testing.T) {
	// Head left outside after the arena shrank
	p := NewPoint(20, 2)
	got := p.Wrapped(DirRight, 10, 10)
	if got.X != 0 {
		t.Errorf("Expected overflow to re-enter at 0, got %d", got.X)
	}
}

func TestSibling(t *testing.T) {
	top := NewPoint(3, 4)
	bottom := NewPoint(3, 5)

	if !top.IsTop() || bottom.IsTop() {
		t.Fatal("Expected even Y to be the upper half")
	}
	if top.Sibling() != bottom {
		t.Errorf("Expected sibling of %v to be %v, got %v", top, bottom, top.Sibling())
	}
	if bottom.Sibling() != top {
		t.Errorf("Expected sibling of %v to be %v, got %v", bottom, top, bottom.Sibling())
	}
}

func TestDirectionInverse(t *testing.T) {
	for d := DirUp; d <= DirLeft; d++ {
		if d.Inverse().Inverse() != d {
			t.Errorf("Inverse of inverse of %v is %v", d, d.Inverse().Inverse())
		}
		dx, dy := d.Coords()
		ix, iy := d.Inverse().Coords()
		if dx+ix != 0 || dy+iy != 0 {
			t.Errorf("%v and its inverse do not cancel", d)
		}
	}
}
