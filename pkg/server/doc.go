// Package server exposes widget managers over HTTP.
//
// Clients upload a scene file and then drive the laid-out menu by ID:
//
//	POST   /scenes                              scene source (TOML or YAML) → {id, layout}
//	GET    /scenes/{id}                         → {id, layout}
//	DELETE /scenes/{id}
//	GET    /scenes/{id}/neighbors/{token}/{dir} → {token, direction, neighbor}
//	GET    /scenes/{id}/hit?x=&y=               → {x, y, token}
//	POST   /scenes/{id}/keys                    {"key": "left"} → {selected, activated}
//	POST   /scenes/{id}/mouse                   {"x": 10, "y": 20} → {selected, hit}
//	GET    /scenes/{id}/render?format=svg       rendered artifact
//	GET    /healthz
//
// Scene records live in a [store.Store]; each instance keeps laid-out
// managers in memory and rebuilds them from the store on a miss. Every
// scene has its own lock, so requests for one scene are serialised while
// different scenes proceed in parallel.
//
// Errors are JSON bodies of the form
//
//	{"error": {"code": "SCENE_NOT_FOUND", "message": "..."}}
//
// with an HTTP status derived from the [errors.Code].
package server
