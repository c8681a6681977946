package serviceutil

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext is canceled on the first SIGINT or SIGTERM, a second signal falls
// through to the default handler and kills the process.
func SignalContext() context.Context {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx
}

// Fatal logs the error with any extra attributes and exits with status 1.
func Fatal(message string, err error, attrs ...any) {
	args := append([]any{"err", err}, attrs...)
	slog.Error(message, args...)
	os.Exit(1)
}
