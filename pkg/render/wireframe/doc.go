// Package wireframe draws laid-out menus as flat images: one rectangle per
// widget in its rectangle color, with its label, on a container-sized
// canvas.
//
// [RenderSVG] writes SVG directly; [RenderPNG] rasterises the same frame
// with [github.com/fogleman/gg].
package wireframe
