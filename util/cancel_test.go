package util

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestCancelOnSignal_ParentCancel(t *testing.T) {
	logger := zerolog.Nop()
	parent, cancel := context.WithCancel(context.Background())
	ctx := CancelOnSignal(parent, &logger)

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("context should be canceled with its parent")
	}
}
