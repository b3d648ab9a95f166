package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a status line on w until stopped or until its context
// is cancelled.
type spinner struct {
	w       io.Writer
	message string
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	mu      sync.Mutex
}

func newSpinner(parent context.Context, w io.Writer, message string) *spinner {
	ctx, cancel := context.WithCancel(parent)
	return &spinner{
		w:       w,
		message: message,
		parent:  parent,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

func (s *spinner) start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			s.draw(spinnerFrames[i%len(spinnerFrames)])
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(frame), StyleDim.Render(s.message))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// stop halts the animation and clears the line. It must follow start and
// is safe to call repeatedly.
func (s *spinner) stop() {
	s.once.Do(s.cancel)
	<-s.stopped
}

// fail stops the spinner and prints message as an error.
func (s *spinner) fail(message string) {
	s.stop()
	printError("%s", message)
}

// interrupted reports whether the parent context ended the spinner.
func (s *spinner) interrupted() bool {
	return s.parent.Err() != nil
}
