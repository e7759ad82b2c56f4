package fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"freeship-watcher/cache"
	"freeship-watcher/config"
	"freeship-watcher/internal/fetch"
	"freeship-watcher/internal/monitor"
	"freeship-watcher/internal/notify"
	"freeship-watcher/internal/product"
)

var Module = fx.Module(
	"monitor",
	fx.Provide(
		cache.NewRedis,
		cache.NewCooldown,
		fx.Annotate(
			fetch.NewClient,
			fx.As(new(monitor.Fetcher)),
		),
		fx.Annotate(
			notify.NewTelegram,
			fx.As(new(notify.Notifier)),
		),
		NewProducts,
		monitor.NewLoop,
	),
	fx.Invoke(registerLifecycleHooks),
)

func NewProducts(cfg config.Config, log *zap.SugaredLogger) []product.Product {
	return product.Load(cfg.ProductsFile, log)
}

type hooksParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     config.Config
	Products   []product.Product
	Loop       *monitor.Loop
	Logger     *zap.SugaredLogger
}

func registerLifecycleHooks(p hooksParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if len(p.Products) == 0 {
				p.Logger.Warnw("no_products_to_monitor", "path", p.Config.ProductsFile)
				return p.Shutdowner.Shutdown()
			}
			if !p.Config.NotifierConfigured() {
				p.Logger.Warnw("telegram_not_configured", "hint", "set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID to receive alerts")
			}
			p.Logger.Infow("monitor_starting")
			return p.Loop.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Infow("monitor_stopping")
			return p.Loop.Stop(ctx)
		},
	})
}
