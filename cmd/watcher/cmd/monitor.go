package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"freeship-watcher/config"
	appfx "freeship-watcher/internal/app/fx"
	"freeship-watcher/internal/envutil"
	monitorfx "freeship-watcher/internal/monitor/fx"
)

func newMonitorCmd() *cobra.Command {
	var (
		productsFile string
		interval     time.Duration
		tag          string
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Poll the product list until free shipping shows up",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: logger}
				}),
				appfx.CoreAppOptions,
				fx.Decorate(func(cfg config.Config) config.Config {
					if strings.TrimSpace(productsFile) != "" {
						cfg.ProductsFile = productsFile
					}
					if interval > 0 {
						cfg.SleepInterval = interval
					}
					if strings.TrimSpace(tag) != "" {
						cfg.AssociateTag = tag
					}
					return cfg
				}),
				monitorfx.Module,
			)

			app.Run()
			return nil
		},
	}

	cmd.Flags().StringVar(&productsFile, "products", envutil.String(os.Getenv, "PRODUCTS_FILE", ""), "Path to the products JSON file")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Poll interval between cycles (default SLEEP_MINUTES from env)")
	cmd.Flags().StringVar(&tag, "tag", envutil.String(os.Getenv, "AMAZON_ASSOCIATE_ID", ""), "Amazon associate tag (optional)")
	return cmd
}
