package layout

import (
	"maps"
	"slices"
)

// Item is the layout input for one widget: its minimum size in pixels.
type Item struct {
	Width, Height int
}

// Line is a half-open range [Start, End) of item positions placed on the
// same horizontal band.
type Line struct {
	Start, End int
}

// Len returns the number of items on the line.
func (l Line) Len() int { return l.End - l.Start }

// Contains reports whether the item at position i belongs to the line.
func (l Line) Contains(i int) bool { return i >= l.Start && i < l.End }

// BreakSet records item positions after which a new line must start.
// The zero value is ready to use only after [NewBreakSet]; a nil BreakSet
// behaves as an empty set for reads.
type BreakSet map[int]struct{}

// NewBreakSet creates an empty BreakSet.
func NewBreakSet() BreakSet {
	return make(BreakSet)
}

// Add marks a break after position i. Adding the same position twice
// records a single break.
func (b BreakSet) Add(i int) {
	b[i] = struct{}{}
}

// Has reports whether a break follows position i.
func (b BreakSet) Has(i int) bool {
	_, ok := b[i]
	return ok
}

// Positions returns the marked positions in ascending order.
func (b BreakSet) Positions() []int {
	return slices.Sorted(maps.Keys(b))
}

// BreakLines partitions items into lines, walking them in order.
//
// A new line starts before item i when a break is marked after i-1, or when
// adding item i to the running line width would exceed containerWidth and
// the current line already holds at least one item. An item wider than the
// container therefore still forms a line of its own.
//
// Every item lands in exactly one line and lines are contiguous. Nil is
// returned for no items.
func BreakLines(items []Item, breaks BreakSet, containerWidth int) []Line {
	if len(items) == 0 {
		return nil
	}

	lines := make([]Line, 0, 1)
	start, running := 0, 0

	for i, it := range items {
		if i > start && (breaks.Has(i-1) || running+it.Width > containerWidth) {
			lines = append(lines, Line{Start: start, End: i})
			start, running = i, 0
		}
		running += it.Width
	}
	return append(lines, Line{Start: start, End: len(items)})
}

// LineOf returns the index of the line containing item position i,
// or -1 if no line does.
func LineOf(lines []Line, i int) int {
	idx, found := slices.BinarySearchFunc(lines, i, func(l Line, target int) int {
		switch {
		case l.End <= target:
			return -1
		case l.Start > target:
			return 1
		}
		return 0
	})
	if !found {
		return -1
	}
	return idx
}
