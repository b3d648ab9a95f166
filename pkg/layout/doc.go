// Package layout computes screen geometry for rows of menu widgets.
//
// # Overview
//
// A layout pass takes the registered widgets in registration order, each
// described by an [Item] holding its minimum size in pixels, and produces one
// [Rect] per widget. The pass runs in three stages:
//
//   - Line breaking ([BreakLines]): the sequence is cut into [Line] ranges,
//     either at explicit markers recorded in a [BreakSet] or when the next
//     widget would overflow the container width.
//   - Sizing ([LineWidth], [LineHeight], [TotalWidth], [TotalHeight]): a line
//     is as wide as its widgets combined and as tall as its tallest widget;
//     the block is as wide as its widest line and as tall as all lines stacked.
//   - Positioning ([Place]): the block is aligned inside the container
//     according to an [Area] anchor, lines stack downward and every widget is
//     centered vertically within its line.
//
// [Compute] runs all three stages and returns a [Result].
//
// # Coordinates
//
// Coordinates are integer pixels in screen space: the origin is the top-left
// corner of the container and y grows downward.
//
// # Size Hints
//
// Widgets request their minimum size as a percentage of the container. Use
// [Percent] to convert a hint into pixels; the conversion floors, so the sum
// of converted widths never exceeds the converted sum.
//
//	items := []layout.Item{
//	    {Width: layout.Percent(40, 800), Height: layout.Percent(10, 600)},
//	    {Width: layout.Percent(40, 800), Height: layout.Percent(10, 600)},
//	}
//	res := layout.Compute(items, nil, layout.NewRect(0, 0, 800, 600), layout.AreaCenter)
package layout
