// Package pkg provides the libraries behind menulayout, a layout and
// navigation engine for game-style menus.
//
// # Overview
//
// A menu is a set of widgets identified by integer tokens. The engine packs
// them into lines, anchors the packed block inside a container and then
// answers navigation queries: which widget lies to the left of another,
// which widget the pointer is over and which widget a key press selects.
// The pkg directory is organized into four areas:
//
//  1. Geometry and state - [layout], [nav], [widget]
//  2. The engine - [manager]
//  3. Scenes and output - [scene], [render]
//  4. Infrastructure - [pipeline], [cache], [store], [server], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	scene.toml / scene.yaml
//	         ↓
//	    [scene] package (parse + validate)
//	         ↓
//	    [manager] package (pack lines, anchor, navigate)
//	         ↓
//	    [render] packages (graph, wireframe, terminal preview)
//	         ↓
//	    JSON/DOT/SVG/PNG/text output
//
// # Quick Start
//
// Lay out three widgets and ask for neighbors:
//
//	m, _ := manager.New(manager.WithContainer(100, 100))
//	st := widget.DefaultState()
//	st.Active = true
//	_ = m.Add(1, 40, 10, st)
//	_ = m.Add(2, 40, 10, st)
//	_ = m.Add(3, 40, 10, st)
//	_ = m.Layout(layout.AreaCenter)
//
//	m.Lines()    // [[1 2] [3]]
//	m.Below(1)   // 3
//	m.RightOf(1) // 2
//
// # Main Packages
//
// [layout] - Integer rectangles, anchor areas and the line-packing
// arithmetic. Sizes are percentages of the container.
//
// [nav] - The four directions and the nearest-neighbor ranking.
//
// [widget] - Visual state of a widget (active, colors, label alignment) and
// the [widget.Basic] implementation.
//
// [manager] - The widget manager. Owns registration, layout, selection and
// input handling for keyboard, joystick and pointer.
//
// [scene] - TOML and YAML scene files, and the JSON layout document.
//
// [render/navgraph] - Graphviz rendering of the navigation graph.
//
// [render/wireframe] - SVG and PNG wireframes of a laid out menu.
//
// [render/preview] - Text rendering for terminals.
//
// [pipeline] - Parse → layout → render with layout and artifact caching.
// Shared by the CLI and the HTTP server.
//
// [cache] - File, Redis and null caches plus cache key derivation.
//
// [store] - Scene records for the server: memory, file and Redis backends.
//
// [server] - The HTTP scene API.
//
// # Testing
//
//	go test ./pkg/...                                  # All tests
//	MENULAYOUT_TEST_REDIS=localhost:6379 go test ./... # Include Redis backends
package pkg
