package cli

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		fails     int
		err       error
		wantCalls int
		wantErr   bool
	}{
		{"success", 0, nil, 1, false},
		{"retryable then success", 2, &retryableError{boom}, 3, false},
		{"retryable exhausted", 5, &retryableError{boom}, 3, true},
		{"permanent", 5, boom, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retry(context.Background(), 3, time.Millisecond, func() error {
				calls++
				if calls <= tt.fails {
					return tt.err
				}
				return nil
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("retry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr && !errors.Is(err, boom) {
				t.Errorf("retry() error = %v, want to wrap %v", err, boom)
			}
		})
	}
}

func TestRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry(ctx, 3, time.Hour, func() error {
		return &retryableError{errors.New("down")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("retry() error = %v, want context.Canceled", err)
	}
}
