package layout

// Percent converts a percentage of total into pixels, rounding down.
func Percent(pct, total int) int {
	return total * pct / 100
}

// LineWidth returns the summed width of the items on a line.
func LineWidth(items []Item, l Line) int {
	w := 0
	for _, it := range items[l.Start:l.End] {
		w += it.Width
	}
	return w
}

// LineHeight returns the height of a line: that of its tallest item.
func LineHeight(items []Item, l Line) int {
	h := 0
	for _, it := range items[l.Start:l.End] {
		h = max(h, it.Height)
	}
	return h
}

// TotalWidth returns the width of the whole block, the widest line.
func TotalWidth(items []Item, lines []Line) int {
	w := 0
	for _, l := range lines {
		w = max(w, LineWidth(items, l))
	}
	return w
}

// TotalHeight returns the height of the whole block, all lines stacked.
func TotalHeight(items []Item, lines []Line) int {
	h := 0
	for _, l := range lines {
		h += LineHeight(items, l)
	}
	return h
}
