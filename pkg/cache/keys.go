package cache

// Keyer builds cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey identifies the layout of a scene source under opts.
	LayoutKey(sceneHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies one rendered format of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs besides the scene that change a layout.
type LayoutKeyOpts struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Anchor string `json:"anchor,omitempty"`

	// Selected overrides the scene's initial selection when non-nil.
	Selected *int `json:"selected,omitempty"`
}

// ArtifactKeyOpts are the inputs besides the layout that change an artifact.
type ArtifactKeyOpts struct {
	Format       string  `json:"format"`
	Scale        float64 `json:"scale,omitempty"`
	HideInactive bool    `json:"hide_inactive,omitempty"`
}

// DefaultKeyer produces keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(sceneHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", sceneHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// ScopedKeyer prefixes every key of an inner keyer, giving a caller its own
// namespace in a shared cache.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// the default.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey implements Keyer.
func (k *ScopedKeyer) LayoutKey(sceneHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(sceneHash, opts)
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
