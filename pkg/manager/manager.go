// Package manager implements the widget manager: a registry of menu
// widgets addressed by caller-chosen integer tokens, a layout pass that
// turns percentage size hints into screen rectangles, and focus navigation
// over the result.
//
// # Lifecycle
//
// Register widgets with [Manager.Add], optionally forcing line breaks with
// [Manager.BreakLine], then call [Manager.Layout]. The manager moves through
// three states:
//
//	Empty --Add/BreakLine--> Populated --Layout--> LaidOut
//	  ^                          ^                    |
//	  +--------- Clear ----------+---- Add/BreakLine -+
//
// Navigation ([Manager.RightOf], [Manager.HitTest], ...) and input handling
// only answer in LaidOut; elsewhere they return [None].
//
// # Threading
//
// A Manager is not safe for concurrent use. It is meant to be owned by the
// UI thread; callers sharing one across goroutines must guard every call
// with a single lock.
//
// # Unknown Tokens
//
// Setters and queries given a token that is not registered do nothing and
// return [None]. Widgets are often addressed before they exist.
package manager

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/menulayout/pkg/errors"
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/observability"
	"github.com/matzehuels/menulayout/pkg/widget"
)

// None is the token meaning "no widget". It can never be registered.
const None = nav.None

// Default container size, used when no container is configured.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// State is the lifecycle state of a Manager.
type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateLaidOut
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateLaidOut:
		return "laid-out"
	}
	return "unknown"
}

// record is the bookkeeping for one registered widget.
type record struct {
	token     int
	active    bool
	minWidth  int // percent of container width
	minHeight int // percent of container height
	widget    widget.Widget

	// Text alignment is set one axis at a time but pushed as a pair.
	textX, textY widget.Align

	// Valid only in StateLaidOut.
	line int
	rect layout.Rect
}

// Manager owns the geometry of a set of widgets.
type Manager struct {
	records []record
	byToken map[int]int
	breaks  layout.BreakSet

	selected int
	state    State

	container layout.Rect
	anchor    layout.Area
	lines     []layout.Line
	bounds    layout.Rect
	index     *nav.Index // rebuilt lazily; nil when stale

	factory widget.Factory
	logger  *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithContainer sets the container size in pixels. Size hints are
// percentages of this container.
func WithContainer(width, height int) Option {
	return func(m *Manager) {
		m.container = layout.NewRect(0, 0, width, height)
	}
}

// WithFactory sets the function that creates a widget for each new token.
// The default creates [widget.Basic] widgets.
func WithFactory(f widget.Factory) Option {
	return func(m *Manager) {
		if f != nil {
			m.factory = f
		}
	}
}

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates an empty Manager.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		byToken:   make(map[int]int),
		breaks:    layout.NewBreakSet(),
		selected:  None,
		container: layout.NewRect(0, 0, DefaultWidth, DefaultHeight),
		factory:   widget.BasicFactory,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := errors.ValidateContainer(m.container.Width, m.container.Height); err != nil {
		return nil, err
	}
	return m, nil
}

// =============================================================================
// Registry
// =============================================================================

// Add registers a widget under token with minimum size hints given as
// percentages of the container, and applies init to the new widget.
//
// Add fails without changing anything when token is [None], when token is
// already registered, or when a hint lies outside 0-100.
func (m *Manager) Add(token, minWidth, minHeight int, init widget.State) error {
	if token == None {
		return errors.New(errors.ErrCodeInvalidInput, "token %d is reserved", None)
	}
	if _, ok := m.byToken[token]; ok {
		return errors.New(errors.ErrCodeDuplicateToken, "token %d already registered", token)
	}
	if err := errors.ValidatePercent("min width", minWidth); err != nil {
		return err
	}
	if err := errors.ValidatePercent("min height", minHeight); err != nil {
		return err
	}

	w := m.factory(token)
	init.Apply(w)

	m.records = append(m.records, record{
		token:     token,
		active:    init.Active,
		minWidth:  minWidth,
		minHeight: minHeight,
		widget:    w,
		textX:     init.TextXAlign,
		textY:     init.TextYAlign,
		line:      -1,
	})
	m.byToken[token] = len(m.records) - 1
	m.invalidate()
	return nil
}

// BreakLine forces a line break after the most recently added widget.
// It fails when no widget is registered.
func (m *Manager) BreakLine() error {
	if len(m.records) == 0 {
		return errors.New(errors.ErrCodeEmptyLayout, "no widget to break after")
	}
	m.breaks.Add(len(m.records) - 1)
	m.invalidate()
	return nil
}

// Clear removes every widget, line break and the selection.
func (m *Manager) Clear() {
	m.records = nil
	m.byToken = make(map[int]int)
	m.breaks = layout.NewBreakSet()
	m.selected = None
	m.lines = nil
	m.bounds = layout.Rect{}
	m.index = nil
	m.state = StateEmpty
}

// Find returns the registry position of token.
func (m *Manager) Find(token int) (int, bool) {
	i, ok := m.byToken[token]
	return i, ok
}

// Len returns the number of registered widgets.
func (m *Manager) Len() int { return len(m.records) }

// Tokens returns the registered tokens in registration order.
func (m *Manager) Tokens() []int {
	tokens := make([]int, len(m.records))
	for i, r := range m.records {
		tokens[i] = r.token
	}
	return tokens
}

// Widget returns the widget registered under token, or nil.
func (m *Manager) Widget(token int) widget.Widget {
	if r := m.lookup(token, ""); r != nil {
		return r.widget
	}
	return nil
}

// State returns the lifecycle state.
func (m *Manager) State() State { return m.state }

// Container returns the container rectangle.
func (m *Manager) Container() layout.Rect { return m.container }

// SetContainer changes the container size. Existing geometry becomes stale
// until the next Layout.
func (m *Manager) SetContainer(width, height int) error {
	if err := errors.ValidateContainer(width, height); err != nil {
		return err
	}
	m.container = layout.NewRect(0, 0, width, height)
	if m.state == StateLaidOut {
		m.state = StatePopulated
		m.index = nil
	}
	return nil
}

// invalidate marks geometry stale after a registry change.
func (m *Manager) invalidate() {
	m.state = StatePopulated
	m.index = nil
}

// lookup returns the record for token, logging op when it is unknown.
func (m *Manager) lookup(token int, op string) *record {
	i, ok := m.byToken[token]
	if !ok {
		if op != "" {
			m.logger.Debug("ignoring unknown token", "op", op, "token", token)
		}
		return nil
	}
	return &m.records[i]
}

// =============================================================================
// Layout
// =============================================================================

// Layout computes the geometry of every widget and pushes each rectangle to
// its widget. The block of widgets is placed in the container according to
// anchor; [layout.AreaNone] and [layout.AreaAll] both center it.
//
// Layout fails only when no widget is registered. Calling it again with
// unchanged input reproduces the same rectangles.
func (m *Manager) Layout(anchor layout.Area) error {
	start := time.Now()
	if len(m.records) == 0 {
		err := errors.New(errors.ErrCodeEmptyLayout, "no widgets to lay out")
		observability.Layout().OnLayout(0, 0, time.Since(start), err)
		return err
	}

	items := make([]layout.Item, len(m.records))
	for i, r := range m.records {
		items[i] = layout.Item{
			Width:  layout.Percent(r.minWidth, m.container.Width),
			Height: layout.Percent(r.minHeight, m.container.Height),
		}
	}

	res := layout.Compute(items, m.breaks, m.container, anchor)
	for li, l := range res.Lines {
		for i := l.Start; i < l.End; i++ {
			r := &m.records[i]
			r.line = li
			r.rect = res.Rects[i]
			r.widget.SetRect(r.rect)
		}
	}

	m.lines = res.Lines
	m.bounds = res.Bounds
	m.anchor = anchor
	m.index = nil
	m.state = StateLaidOut

	m.logger.Debug("layout complete",
		"widgets", len(m.records),
		"lines", len(res.Lines),
		"anchor", anchor,
		"bounds", res.Bounds,
	)
	observability.Layout().OnLayout(len(m.records), len(res.Lines), time.Since(start), nil)
	return nil
}

// Anchor returns the anchor of the last successful layout.
func (m *Manager) Anchor() layout.Area { return m.anchor }

// Bounds returns the bounding box of the laid-out block.
// It is the zero Rect unless the manager is laid out.
func (m *Manager) Bounds() layout.Rect {
	if m.state != StateLaidOut {
		return layout.Rect{}
	}
	return m.bounds
}

// Lines returns the token lists of each line, top to bottom.
// It is nil unless the manager is laid out.
func (m *Manager) Lines() [][]int {
	if m.state != StateLaidOut {
		return nil
	}
	out := make([][]int, len(m.lines))
	for li, l := range m.lines {
		for i := l.Start; i < l.End; i++ {
			out[li] = append(out[li], m.records[i].token)
		}
	}
	return out
}

// Rect returns the laid-out rectangle of token.
// The second result is false for unknown tokens or stale geometry.
func (m *Manager) Rect(token int) (layout.Rect, bool) {
	r := m.lookup(token, "")
	if r == nil || m.state != StateLaidOut {
		return layout.Rect{}, false
	}
	return r.rect, true
}

// View is a read-only snapshot of one widget.
type View struct {
	Token     int
	Active    bool
	MinWidth  int
	MinHeight int
	Line      int         // -1 unless laid out
	Rect      layout.Rect // zero unless laid out
	Selected  bool
	Widget    widget.Widget
}

// Snapshot returns a view of every widget in registration order.
func (m *Manager) Snapshot() []View {
	views := make([]View, len(m.records))
	for i, r := range m.records {
		v := View{
			Token:     r.token,
			Active:    r.active,
			MinWidth:  r.minWidth,
			MinHeight: r.minHeight,
			Line:      -1,
			Selected:  r.token == m.selected,
			Widget:    r.widget,
		}
		if m.state == StateLaidOut {
			v.Line = r.line
			v.Rect = r.rect
		}
		views[i] = v
	}
	return views
}

// Update advances time-based widget features by delta seconds. It does not
// affect layout.
func (m *Manager) Update(delta float64) {
	for _, r := range m.records {
		r.widget.Update(delta)
	}
}

// =============================================================================
// Selection
// =============================================================================

// Selected returns the selected token, or [None].
func (m *Manager) Selected() int { return m.selected }

// SetSelected selects token, lightening its widget and darkening the
// previously selected one. [None] clears the selection; unknown tokens are
// ignored.
func (m *Manager) SetSelected(token int) {
	if token == m.selected {
		return
	}
	var next *record
	if token != None {
		if next = m.lookup(token, "select"); next == nil {
			return
		}
	}
	if prev := m.lookup(m.selected, ""); prev != nil {
		prev.widget.Darken()
	}
	m.selected = token
	if next != nil {
		next.widget.Lighten()
	}
}
