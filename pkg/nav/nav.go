// Package nav answers spatial focus queries over laid-out widgets.
//
// An [Index] is built from the final geometry of a layout pass and resolves
// two kinds of question: which widget lies nearest in a cardinal direction
// from a given one ([Index.Neighbor]), used for keyboard and joystick focus
// traversal, and which widget lies under a point ([Index.HitTest]), used for
// pointer input. Only active entries are ever returned.
//
// The index holds entries by value and refers to them by position, so it
// observes the registry without owning any widget.
package nav

import (
	"fmt"
	"strings"

	"github.com/matzehuels/menulayout/pkg/layout"
)

// None is returned when no widget qualifies.
const None = -1

// Direction is a cardinal direction for focus traversal.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{Left: "left", Right: "right", Up: "up", Down: "down"}

// Directions lists all directions in declaration order.
var Directions = []Direction{Left, Right, Up, Down}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a name into a Direction.
// "above" and "below" are accepted as aliases for up and down.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up", "above":
		return Up, nil
	case "down", "below":
		return Down, nil
	}
	return Left, fmt.Errorf("unknown direction %q", s)
}

// Entry is one laid-out widget as seen by the index.
type Entry struct {
	Token  int
	Active bool
	Rect   layout.Rect
}

// Index is an immutable view over laid-out entries in registration order.
type Index struct {
	entries []Entry
	byToken map[int]int
}

// New builds an index over entries. Entries are copied; later changes to
// the slice do not affect the index. When a token appears twice, the first
// entry wins.
func New(entries []Entry) *Index {
	idx := &Index{
		entries: append([]Entry(nil), entries...),
		byToken: make(map[int]int, len(entries)),
	}
	for i, e := range idx.entries {
		if _, dup := idx.byToken[e.Token]; !dup {
			idx.byToken[e.Token] = i
		}
	}
	return idx
}

// Len returns the number of entries.
func (x *Index) Len() int { return len(x.entries) }

// Neighbor returns the token of the nearest active entry lying in direction
// dir from the entry for token, or None.
//
// A candidate qualifies when its center lies strictly beyond the source's
// center along dir. Candidates are ranked by squared center-to-center
// distance, then by absolute offset on the perpendicular axis, then by
// registration order. The source itself may be inactive.
func (x *Index) Neighbor(token int, dir Direction) int {
	src, ok := x.byToken[token]
	if !ok {
		return None
	}
	from := x.entries[src].Rect

	best := None
	var bestDist, bestCross int64
	for i, e := range x.entries {
		if i == src || !e.Active {
			continue
		}
		primary, cross := displacement(from, e.Rect, dir)
		if primary <= 0 {
			continue
		}
		dist := primary*primary + cross*cross
		cross = abs(cross)
		// Entries are visited in registration order, so strict comparison
		// keeps the earliest candidate on a full tie.
		if best == None || dist < bestDist || (dist == bestDist && cross < bestCross) {
			best, bestDist, bestCross = e.Token, dist, cross
		}
	}
	return best
}

// HitTest returns the token of the first active entry, in registration
// order, whose rectangle contains the point, or None.
func (x *Index) HitTest(px, py int) int {
	for _, e := range x.entries {
		if e.Active && e.Rect.Contains(px, py) {
			return e.Token
		}
	}
	return None
}

// displacement returns the center displacement from a to b along dir
// (positive when b lies in that direction) and across it. Values are in
// doubled pixels, matching layout.Rect centers.
func displacement(a, b layout.Rect, dir Direction) (primary, cross int64) {
	dx := int64(b.CenterX() - a.CenterX())
	dy := int64(b.CenterY() - a.CenterY())
	switch dir {
	case Left:
		return -dx, dy
	case Right:
		return dx, dy
	case Up:
		return -dy, dx
	case Down:
		return dy, dx
	}
	return 0, 0
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
