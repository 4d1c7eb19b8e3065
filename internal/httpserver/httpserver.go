package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run maps the routes, starts the HTTP server, and blocks until a shutdown
// signal arrives. In-flight requests get shutdownTimeout to finish.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run.mapHandlers: %v", err)
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	srv.logger.Infof(ctx, "HTTP server started on %s", server.Addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		srv.logger.Errorf(ctx, "internal.httpserver.Run.ListenAndServe: %v", err)
		return err
	case sig := <-sigCh:
		srv.logger.Infof(ctx, "Received signal %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run.Shutdown: %v", err)
		return err
	}

	srv.logger.Info(ctx, "HTTP server stopped")
	return nil
}
