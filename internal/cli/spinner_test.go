package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Rendering wireframe...")
	s.start()
	time.Sleep(2 * spinnerInterval)
	s.stop()

	if !strings.Contains(buf.String(), "Rendering wireframe...") {
		t.Errorf("spinner output %q does not contain message", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Error("spinner should clear its line when stopped")
	}
	if s.interrupted() {
		t.Error("stop() should not count as an interruption")
	}
}

func TestSpinnerInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var buf bytes.Buffer
	s := newSpinner(ctx, &buf, "Waiting...")
	s.start()
	cancel()
	s.stop()

	if !s.interrupted() {
		t.Error("spinner should report interruption after context cancellation")
	}
}

func TestSpinnerTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	s := newSpinner(ctx, &buf, "Timing out...")
	s.start()
	time.Sleep(100 * time.Millisecond)

	if !s.interrupted() {
		t.Error("spinner should report interruption after timeout")
	}
	s.stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Stopping...")
	s.start()

	s.stop()
	s.stop()
	s.fail("Failed!")
}
