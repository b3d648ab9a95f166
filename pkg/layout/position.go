package layout

// Result holds the output of a layout pass.
type Result struct {
	Lines  []Line // Line partition in item order
	Rects  []Rect // One rectangle per item, in item order
	Bounds Rect   // Bounding box of the whole block
}

// Origin returns the top-left corner at which a block of the given size is
// placed inside container for the anchor.
//
// Anchors touching an edge align the block against that edge; the
// remaining axis is centered. AreaNone, AreaAll and AreaCenter center
// on both axes.
func Origin(container Rect, width, height int, anchor Area) (x, y int) {
	x = container.X + (container.Width-width)/2
	y = container.Y + (container.Height-height)/2

	switch {
	case anchor.touchesLeft():
		x = container.X
	case anchor.touchesRight():
		x = container.Right() - width
	}
	switch {
	case anchor.touchesTop():
		y = container.Y
	case anchor.touchesBottom():
		y = container.Bottom() - height
	}
	return x, y
}

// Place assigns a rectangle to every item given an existing line partition.
//
// Lines stack downward from the block origin. Within the block, each line is
// left-aligned for anchors touching the left edge, right-aligned for anchors
// touching the right edge and centered otherwise. Items run left to right and
// are centered vertically against the height of their line.
func Place(items []Item, lines []Line, container Rect, anchor Area) Result {
	totalW := TotalWidth(items, lines)
	totalH := TotalHeight(items, lines)
	ox, oy := Origin(container, totalW, totalH, anchor)

	rects := make([]Rect, len(items))
	top := oy
	for _, l := range lines {
		lw, lh := LineWidth(items, l), LineHeight(items, l)

		x := ox + (totalW-lw)/2
		switch {
		case anchor.touchesLeft():
			x = ox
		case anchor.touchesRight():
			x = ox + totalW - lw
		}

		for i := l.Start; i < l.End; i++ {
			it := items[i]
			rects[i] = Rect{
				X:      x,
				Y:      top + (lh-it.Height)/2,
				Width:  it.Width,
				Height: it.Height,
			}
			x += it.Width
		}
		top += lh
	}

	return Result{
		Lines:  lines,
		Rects:  rects,
		Bounds: Rect{X: ox, Y: oy, Width: totalW, Height: totalH},
	}
}

// Compute runs line breaking and positioning in one pass.
func Compute(items []Item, breaks BreakSet, container Rect, anchor Area) Result {
	lines := BreakLines(items, breaks, container.Width)
	return Place(items, lines, container, anchor)
}
