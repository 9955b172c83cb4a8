// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/rect_test.go
// Summary: Rectangle algebra and coalescing-set behavior.

package grid

import "testing"

func TestNewRectNormalizesBounds(t *testing.T) {
	r := NewRect(5, 2, 9, 3)
	if r.Top != 2 || r.Bot != 5 || r.Left != 3 || r.Right != 9 {
		t.Fatalf("bounds not normalized: %+v", r)
	}
}

func TestContains(t *testing.T) {
	outer := NewRect(0, 9, 0, 9)
	if !outer.Contains(NewRect(1, 8, 1, 8)) {
		t.Fatalf("inner rect should be contained")
	}
	if !outer.Contains(outer) {
		t.Fatalf("rect should contain itself")
	}
	if outer.Contains(NewRect(0, 10, 0, 9)) {
		t.Fatalf("taller rect should not be contained")
	}
}

func TestTouches(t *testing.T) {
	base := NewRect(2, 4, 2, 4)

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(3, 5, 3, 5), true},
		{"row adjacent overlapping cols", NewRect(5, 6, 2, 4), true},
		{"col adjacent overlapping rows", NewRect(2, 4, 5, 6), true},
		{"diagonal corner only", NewRect(5, 6, 5, 6), false},
		{"disjoint", NewRect(8, 9, 8, 9), false},
		{"row adjacent disjoint cols", NewRect(5, 6, 7, 9), false},
	}
	for _, tc := range cases {
		if got := base.Touches(tc.other); got != tc.want {
			t.Errorf("%s: Touches = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.other.Touches(base); got != tc.want {
			t.Errorf("%s: Touches not symmetric", tc.name)
		}
	}
}

func TestUnion(t *testing.T) {
	got := NewRect(1, 2, 1, 2).Union(NewRect(3, 5, 0, 4))
	want := NewRect(1, 5, 0, 4)
	if got != want {
		t.Fatalf("Union = %+v, want %+v", got, want)
	}
}

func TestRectVecMergesAdjacentPoints(t *testing.T) {
	v := NewRectVec(Point(0, 0))
	v.Join(Point(1, 0))
	if len(v.List) != 1 {
		t.Fatalf("adjacent points should merge, got %d entries", len(v.List))
	}
	if want := NewRect(0, 1, 0, 0); v.List[0] != want {
		t.Fatalf("merged rect = %+v, want %+v", v.List[0], want)
	}

	v.Join(Point(5, 5))
	if len(v.List) != 2 {
		t.Fatalf("disjoint point should append, got %d entries", len(v.List))
	}
}

func TestRectVecJoinIdempotent(t *testing.T) {
	v := NewRectVec(NewRect(0, 2, 0, 2))
	v.Join(NewRect(0, 2, 0, 2))
	if len(v.List) != 1 || v.List[0] != NewRect(0, 2, 0, 2) {
		t.Fatalf("joining an identical rect changed the set: %+v", v.List)
	}
}

func TestRectVecJoinVecAndClone(t *testing.T) {
	a := NewRectVec(Point(0, 0))
	b := NewRectVec(Point(0, 1))
	b.Join(Point(9, 9))

	a.JoinVec(b)
	if len(a.List) != 2 {
		t.Fatalf("expected merged point plus disjoint entry, got %+v", a.List)
	}

	c := a.Clone()
	c.Join(Point(3, 3))
	if len(a.List) == len(c.List) {
		t.Fatalf("clone should be independent of the original")
	}
}

func TestToAreaFromAreaRoundTrip(t *testing.T) {
	r := NewRect(1, 3, 2, 5)
	area := r.ToArea(16, 8)
	if area.X != 16 || area.Y != 16 || area.Width != 32 || area.Height != 48 {
		t.Fatalf("unexpected area: %+v", area)
	}

	back := FromArea(16, 8,
		float64(area.X), float64(area.Y),
		float64(area.X+area.Width), float64(area.Y+area.Height))
	if back != r {
		t.Fatalf("round trip = %+v, want %+v", back, r)
	}
}
