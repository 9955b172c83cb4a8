// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/rectvec.go
// Summary: Coalescing sets of changed-region rectangles.
// Notes: Merging is bounding-box, not exact region algebra; over-covering is
//        fine, under-covering is a correctness bug.

package grid

// RectVec is a small set of rectangles kept coalesced: joining a rectangle
// either merges it into a touching entry's bounding box or appends it as a
// new disjoint entry. Insert cost is linear in the (expected small) entry
// count.
type RectVec struct {
	List []Rect
}

// NewRectVec starts a set with one rectangle.
func NewRectVec(first Rect) *RectVec {
	return &RectVec{List: []Rect{first}}
}

func (v *RectVec) findNeighbor(r Rect) int {
	for i := range v.List {
		if v.List[i].Touches(r) {
			return i
		}
	}
	return -1
}

// Join adds a rectangle, merging it into the first touching entry.
func (v *RectVec) Join(r Rect) {
	if i := v.findNeighbor(r); i >= 0 {
		v.List[i] = v.List[i].Union(r)
		return
	}
	v.List = append(v.List, r)
}

// JoinVec adds every rectangle of other.
func (v *RectVec) JoinVec(other *RectVec) {
	if other == nil {
		return
	}
	for _, r := range other.List {
		v.Join(r)
	}
}

// Clone returns an independent copy.
func (v *RectVec) Clone() *RectVec {
	out := &RectVec{List: make([]Rect, len(v.List))}
	copy(out.List, v.List)
	return out
}
