package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tzresolve/components/timezones"
	"github.com/goliatone/go-tzresolve/pkg/timezone"
)

const shutdownTimeout = 5 * time.Second

func (a *App) installServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the timezones HTTP routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			mux, routes, err := a.newMux(r)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx, mux, routes)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("base-path", "/", "path prefix for the routes")
	a.bindFlag(cmd, "addr")
	a.bindFlag(cmd, "base-path")
	return cmd
}

func (a *App) newMux(r *timezone.Resolver) (*http.ServeMux, timezones.Routes, error) {
	mux := http.NewServeMux()
	component := timezones.New(
		timezones.WithResolver(r),
		timezones.WithOffsetLabels(true),
		timezones.WithZones(a.zones),
	)
	routes, err := component.RegisterRoutes(mux, a.config.BasePath)
	if err != nil {
		return nil, timezones.Routes{}, fmt.Errorf("register routes: %w", err)
	}
	return mux, routes, nil
}

func (a *App) serve(ctx context.Context, handler http.Handler, routes timezones.Routes) error {
	srv := &http.Server{
		Addr:              a.config.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Serving timezones",
			"addr", srv.Addr,
			"options", routes.Options,
			"resolve", routes.Resolve,
			"openapi", routes.OpenAPI,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("Server stopped")
	return nil
}
