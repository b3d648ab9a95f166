package manager

import "github.com/matzehuels/menulayout/pkg/nav"

// navIndex returns the navigation index over the current geometry,
// building it on first use after a change.
func (m *Manager) navIndex() *nav.Index {
	if m.index == nil {
		entries := make([]nav.Entry, len(m.records))
		for i, r := range m.records {
			entries[i] = nav.Entry{Token: r.token, Active: r.active, Rect: r.rect}
		}
		m.index = nav.New(entries)
	}
	return m.index
}

// Neighbor returns the nearest active widget from token in direction dir,
// or [None]. See [nav.Index.Neighbor] for the ranking rules.
func (m *Manager) Neighbor(token int, dir nav.Direction) int {
	if m.state != StateLaidOut {
		return None
	}
	return m.navIndex().Neighbor(token, dir)
}

// LeftOf returns the nearest active widget left of token, or [None].
func (m *Manager) LeftOf(token int) int { return m.Neighbor(token, nav.Left) }

// RightOf returns the nearest active widget right of token, or [None].
func (m *Manager) RightOf(token int) int { return m.Neighbor(token, nav.Right) }

// Above returns the nearest active widget above token, or [None].
func (m *Manager) Above(token int) int { return m.Neighbor(token, nav.Up) }

// Below returns the nearest active widget below token, or [None].
func (m *Manager) Below(token int) int { return m.Neighbor(token, nav.Down) }

// HitTest returns the active widget containing the point, or [None].
func (m *Manager) HitTest(x, y int) int {
	if m.state != StateLaidOut {
		return None
	}
	return m.navIndex().HitTest(x, y)
}
