package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexanderramin/taskora/internal/api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.HTTPAddr
			}
			router := api.NewRouter(api.Services{
				Analytics:    app.Analytics,
				Pricing:      app.Pricing,
				Achievements: app.Achievements,
				Dashboard:    app.Dashboard,
			}, app.Config.UserID, app.Logger)

			srv := &http.Server{
				Addr:              addr,
				Handler:           router.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}
			return serve(cmd.Context(), srv, app.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from TASKORA_HTTP_ADDR)")
	return cmd
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("api listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("api shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
