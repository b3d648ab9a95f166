package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/menulayout/pkg/pipeline"
)

// newLogger returns the CLI logger. Timestamps carry hundredths of a
// second, which is the resolution scene runs are measured at.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch times one command run over a scene.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now()}
}

// done logs msg with the total elapsed time. The parse, layout and render
// stage times of stats follow at debug level.
func (s *stopwatch) done(msg string, stats pipeline.Stats) {
	s.logger.Info(msg, "widgets", stats.WidgetCount, "lines", stats.LineCount,
		"elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Debug("stage times",
		"parse", stats.ParseTime.Round(time.Microsecond),
		"layout", stats.LayoutTime.Round(time.Microsecond),
		"render", stats.RenderTime.Round(time.Microsecond))
}
