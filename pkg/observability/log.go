package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event to a logger at debug level. It implements
// [LayoutHooks], [CacheHooks] and [HTTPHooks].
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through l, prefixed per category.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

// Install registers h for all hook categories.
func (h *LogHooks) Install() {
	SetLayoutHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnLayout(widgets, lines int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "widgets", widgets, "err", err)
		return
	}
	h.logger.Debug("layout", "widgets", widgets, "lines", lines, "took", d)
}

func (h *LogHooks) OnNavigate(direction string, from, to int) {
	h.logger.Debug("navigate", "dir", direction, "from", from, "to", to)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("request", "method", method, "route", route, "status", status, "took", d)
}
