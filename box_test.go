package conic

import (
	"errors"
	"math"
	"testing"
)

func TestBoxBasics(t *testing.T) {
	b := NewBox(10, 0, 4, -2)
	diff(t, Box{MinX: 0, MaxX: 10, MinY: -2, MaxY: 4}, b)
	diff(t, 10.0, b.Width())
	diff(t, 6.0, b.Height())
	diff(t, Pt(5, 1), b.Center())

	if !b.Contains(Pt(0, 0)) || !b.Contains(Pt(10, 4)) {
		t.Error("the closed box should contain its corners")
	}
	if b.Contains(Pt(11, 0)) {
		t.Error("point outside the box shouldn't be contained")
	}
	if b.Contains(Pt(math.Inf(1), 0)) {
		t.Error("bounded box shouldn't contain a point at infinity")
	}
	if !InfiniteBox().Contains(Pt(math.Inf(1), 0)) {
		t.Error("infinite box should contain points at infinity")
	}

	diff(t, Box{MinX: -1, MaxX: 3, MinY: 0, MaxY: 5}, BoxFromPoints(Pt(0, 0), Pt(3, 5), Pt(-1, 2)))
	diff(t, Box{MinX: 2, MaxX: 10, MinY: -2, MaxY: 1}, b.Intersect(NewBox(2, 20, -5, 1)))
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(0, 10, 0, 5)
	edges := b.Edges()
	if len(edges) != 4 {
		t.Fatalf("got %d edges, expected 4", len(edges))
	}
	corners := b.Corners()
	for i, e := range edges {
		assertNear(t, e.FirstPoint(), corners[i], 1e-12)
		assertNear(t, e.LastPoint(), corners[(i+1)%4], 1e-12)
		if !e.IsInside(b.Center()) {
			t.Errorf("edge %d should have the interior on its left", i)
		}
	}

	half := Box{MinX: 0, MaxX: math.Inf(1), MinY: 0, MaxY: 5}
	edges = half.Edges()
	if len(edges) != 3 {
		t.Fatalf("got %d edges, expected 3", len(edges))
	}
	diff(t, RayKind, edges[0].Kind())
	diff(t, SegmentKind, edges[2].Kind())
}

func TestBoxBoundaryPosition(t *testing.T) {
	b := NewBox(0, 10, 0, 5)
	tests := []struct {
		pt  Point
		pos float64
	}{
		{Pt(0, 0), 0},
		{Pt(5, 0), 0.5},
		{Pt(10, 0), 1},
		{Pt(10, 2.5), 1.5},
		{Pt(10, 5), 2},
		{Pt(2.5, 5), 2.75},
		{Pt(0, 5), 3},
		{Pt(0, 1), 3.8},
	}
	for _, tt := range tests {
		pos := b.BoundaryPosition(tt.pt)
		assertNearFloat(t, pos, tt.pos, 1e-12)
		assertNear(t, b.BoundaryPoint(pos), tt.pt, 1e-12)
	}
}

func TestBoxBoundary(t *testing.T) {
	b := NewBox(0, 10, 0, 5)
	c, err := b.Boundary()
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsClosed() {
		t.Error("box boundary should be closed")
	}
	assertNearFloat(t, c.Area(2), 50, 1e-9)
	if !c.IsInside(Pt(1, 1)) || c.IsInside(Pt(11, 1)) {
		t.Error("box boundary should contain the interior of the box only")
	}

	if _, err := InfiniteBox().Boundary(); !errors.Is(err, ErrUnbounded) {
		t.Errorf("got error %v, expected ErrUnbounded", err)
	}
}

func TestBoxTransform(t *testing.T) {
	b := NewBox(0, 2, 0, 1)
	diff(t, NewBox(-1, 0, 0, 2), b.Transform(Rotate(math.Pi/2)), approx(1e-12))
	diff(t, Box{MinX: 1, MaxX: math.Inf(1), MinY: 0, MaxY: 2},
		Box{MinX: 0, MaxX: math.Inf(1), MinY: 0, MaxY: 1}.Transform(Scale(1, 2).Then(Translate(Vec(1, 0)))))
}
