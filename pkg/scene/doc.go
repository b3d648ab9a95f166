// Package scene loads menu descriptions from TOML or YAML files into a
// laid-out [manager.Manager] and exports laid-out managers as JSON.
//
// # Scene Files
//
// A scene names a container, optional defaults and the widgets in
// registration order:
//
//	selected = 1
//
//	[container]
//	width = 800
//	height = 600
//	anchor = "center"
//
//	[defaults]
//	rect_color = "#3355aa"
//
//	[[widget]]
//	token = 1
//	width = 40
//	height = 10
//	text = "Play"
//
//	[[widget]]
//	token = 2
//	width = 40
//	height = 10
//	text = "Options"
//	break_after = true
//
// Widget sizes are percentages of the container. A missing container size
// falls back to [manager.DefaultWidth] x [manager.DefaultHeight].
//
// Unlike [widget.DefaultState], scene widgets start active with their
// rectangle and text shown; [defaults] and per-widget keys override that.
// Unknown keys are rejected.
//
// # Export
//
// [Export] captures a laid-out manager as a [Document]: container, anchor,
// bounds, lines and each widget's rectangle and neighbours. [WriteJSON] and
// [WriteFile] encode it as indented JSON.
package scene
