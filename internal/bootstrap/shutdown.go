package bootstrap

import (
	"context"
	"log/slog"
)

type shutdownable interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server       shutdownable
	RevealDriver shutdownable
	Hub          shutdownable
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting requests, drain in-flight ones)
// 2. Reveal driver (cancel pending frame timers)
// 3. SSE hub (close remaining client streams)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	shutdownComponent(ctx, components.Server, LogMsgServerForcedShutdown)

	slog.Info(LogMsgShuttingDownReveal)
	shutdownComponent(ctx, components.RevealDriver, LogMsgRevealShutdownFailed)

	slog.Info(LogMsgShuttingDownHub)
	shutdownComponent(ctx, components.Hub, LogMsgHubShutdownFailed)

	slog.Info(LogMsgServerStopped)
}

func shutdownComponent(ctx context.Context, c shutdownable, failMsg string) {
	if c == nil {
		return
	}
	if err := c.Shutdown(ctx); err != nil {
		slog.Error(failMsg, "error", err)
	}
}
