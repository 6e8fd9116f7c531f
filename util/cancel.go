package util

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// CancelOnSignal returns a context canceled on SIGINT or SIGTERM.
func CancelOnSignal(ctx context.Context, logger *zerolog.Logger) context.Context {
	cctx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			logger.Info().Str("signal", sig.String()).Msg("Cancel signal captured, canceling context")
			return
		}
	}()
	return cctx
}
