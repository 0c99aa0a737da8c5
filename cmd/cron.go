package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront.GO/core/cache"
	"storefront.GO/cron"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := NewApp()
		if err != nil {
			return err
		}
		defer app.Close()

		jobs := cron.StorefrontJobs(app.Storefront, app.Config.FacetsWarmSchedule, cache.GetInstance(), app.Logger)
		if jobName != "" {
			app.Logger.Info("running cron job", zap.String("job", jobName))
			return cron.RunJob(cmd.Context(), jobName, jobs)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		c, err := cron.StartCron(ctx, jobs, app.Logger)
		if err != nil {
			return err
		}
		app.Logger.Info("cron scheduler started, press Ctrl+C to exit")
		<-ctx.Done()
		<-c.Stop().Done()
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
