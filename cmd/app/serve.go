package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prasetyowira/qrgen/config"
	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/spf13/cobra"
)

func serveCommand(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Opens the generator window on the configured loopback address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, &http.Server{
				Addr:         cfg.Addr,
				Handler:      a.router(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}, cfg.ShutdownTimeout)
		},
	}
}

// runServer serves until ctx is cancelled, then shuts the server down within
// timeout.
func runServer(ctx context.Context, server *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		appLogger.Info(constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxGracefulServer,
			Data: map[string]interface{}{
				constant.DataAddr: server.Addr,
			},
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error(constant.MsgServerFailedToStart, appLogger.LoggerInfo{
				ContextFunction: constant.CtxGracefulServer,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerStart,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataAddr: server.Addr,
				},
			})
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
		ContextFunction: constant.CtxGracefulServer,
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
			ContextFunction: constant.CtxGracefulServer,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerStop,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
		return err
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxGracefulServer,
	})
	return nil
}
