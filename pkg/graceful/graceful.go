// Package graceful, uygulamanın düzgün bir şekilde kapatılmasını sağlar.
package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaitForShutdown, SIGINT/SIGTERM gelene kadar bekler ve fiber uygulamasını
// verilen süre içinde kapatır.
func WaitForShutdown(app *fiber.App, timeout time.Duration, ctx context.Context) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sig:
	case <-ctx.Done():
	}

	zap.L().Info("Shutting down...")

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		zap.L().Error("Failed to shutdown server gracefully", zap.Error(err))
	}
}
