package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront.GO/api"
	_ "storefront.GO/api/catalog"
	_ "storefront.GO/api/graphql"
	_ "storefront.GO/api/product"
	_ "storefront.GO/api/proxy"
	"storefront.GO/core/cache"
	"storefront.GO/cron"
)

var (
	servePort     string
	serveWithCron bool
)

// NewServer builds the echo instance with middleware and every registered route.
func NewServer(deps *api.Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "Store"},
	}))
	e.Use(api.RequestLogger(deps.Log()))
	e.Use(api.StoreContext())

	api.ApplyRoutes(e, deps)
	api.ApplyModules(e.Group("/api"), deps)
	return e
}

func banner(title string) {
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "larry3d", "puffy"}
	figure.NewFigure(title, fonts[rand.Intn(len(fonts))], true).Print()
	fmt.Println()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the storefront REST and GraphQL API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := NewApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if serveWithCron {
			jobs := cron.StorefrontJobs(app.Storefront, app.Config.FacetsWarmSchedule, cache.GetInstance(), app.Logger)
			c, err := cron.StartCron(ctx, jobs, app.Logger)
			if err != nil {
				return err
			}
			defer c.Stop()
		}

		port := servePort
		if port == "" {
			port = app.Config.Port
		}
		e := NewServer(app.Deps())

		banner(app.Config.AppName)
		app.Logger.Info("storefront listening",
			zap.String("addr", ":"+port),
			zap.String("graphql", "/graphql"),
			zap.String("playground", "/playground"))

		errCh := make(chan error, 1)
		go func() { errCh <- e.Start(":" + port) }()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		app.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (default: PORT env)")
	serveCmd.Flags().BoolVar(&serveWithCron, "with-cron", false, "Run the cron scheduler in-process")
	rootCmd.AddCommand(serveCmd)
}
