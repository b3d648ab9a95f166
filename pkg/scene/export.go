package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/widget"
)

// Document is the JSON form of a laid-out manager.
type Document struct {
	Container Box           `json:"container"`
	Anchor    string        `json:"anchor"`
	State     string        `json:"state"`
	Bounds    Box           `json:"bounds"`
	Selected  int           `json:"selected"`
	Lines     [][]int       `json:"lines"`
	Widgets   []WidgetEntry `json:"widgets"`
}

// Box is a rectangle in container pixels.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func boxOf(r layout.Rect) Box {
	return Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// WidgetEntry describes one widget of a Document.
type WidgetEntry struct {
	Token     int            `json:"token"`
	Active    bool           `json:"active"`
	MinWidth  int            `json:"min_width"`
	MinHeight int            `json:"min_height"`
	Line      int            `json:"line"`
	Rect      Box            `json:"rect"`
	Label     string         `json:"label,omitempty"`
	Neighbors map[string]int `json:"neighbors,omitempty"`
}

// Export captures the geometry and navigation of m. Neighbours are only
// listed when m is laid out and a neighbour exists.
func Export(m *manager.Manager) Document {
	doc := Document{
		Container: boxOf(m.Container()),
		Anchor:    m.Anchor().String(),
		State:     m.State().String(),
		Bounds:    boxOf(m.Bounds()),
		Selected:  m.Selected(),
		Lines:     m.Lines(),
	}
	if doc.Lines == nil {
		doc.Lines = [][]int{}
	}

	views := m.Snapshot()
	doc.Widgets = make([]WidgetEntry, len(views))
	for i, v := range views {
		e := WidgetEntry{
			Token:     v.Token,
			Active:    v.Active,
			MinWidth:  v.MinWidth,
			MinHeight: v.MinHeight,
			Line:      v.Line,
			Rect:      boxOf(v.Rect),
		}
		if l, ok := v.Widget.(widget.Labeler); ok {
			e.Label = l.Label()
		}
		for _, dir := range nav.Directions {
			if n := m.Neighbor(v.Token, dir); n != manager.None {
				if e.Neighbors == nil {
					e.Neighbors = make(map[string]int, len(nav.Directions))
				}
				e.Neighbors[dir.String()] = n
			}
		}
		doc.Widgets[i] = e
	}
	return doc
}

// WriteJSON encodes doc as indented JSON and writes it to w.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes doc to a JSON file at path.
func WriteFile(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

// ReadJSON decodes a Document previously written by [WriteJSON].
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// Scene rebuilds a scene from the document. Each line boundary becomes an
// explicit break, so building the scene reproduces the same lines in the
// same container. Widget features other than activity and label are not
// part of a Document and take scene defaults.
func (d Document) Scene() (*Scene, error) {
	s := &Scene{
		Container: Container{Width: d.Container.Width, Height: d.Container.Height},
	}
	anchor, err := layout.ParseArea(d.Anchor)
	if err != nil {
		return nil, err
	}
	s.Container.Anchor = anchor

	lastOfLine := make(map[int]bool, len(d.Lines))
	for li, line := range d.Lines {
		if li < len(d.Lines)-1 && len(line) > 0 {
			lastOfLine[line[len(line)-1]] = true
		}
	}

	for _, e := range d.Widgets {
		tok, active := e.Token, e.Active
		w := Widget{
			Token:      &tok,
			Width:      e.MinWidth,
			Height:     e.MinHeight,
			BreakAfter: lastOfLine[e.Token],
		}
		w.Active = &active
		if e.Label != "" {
			label := e.Label
			w.Text = &label
		}
		s.Widgets = append(s.Widgets, w)
	}
	if d.Selected != manager.None {
		sel := d.Selected
		s.Selected = &sel
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
