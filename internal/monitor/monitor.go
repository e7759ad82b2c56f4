package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"freeship-watcher/cache"
	"freeship-watcher/config"
	"freeship-watcher/internal/asin"
	"freeship-watcher/internal/fetch"
	"freeship-watcher/internal/notify"
	"freeship-watcher/internal/product"
)

// Fetcher retrieves one price reading per call.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (fetch.Reading, error)
}

// Loop polls every tracked product on a fixed interval and notifies
// when free shipping shows up. Products are checked strictly in order,
// back to back; the only pause is the end-of-cycle wait.
type Loop struct {
	cfg      config.Config
	products []product.Product
	fetcher  Fetcher
	notifier notify.Notifier
	cooldown cache.Cooldown
	log      *zap.SugaredLogger

	// wait is swapped out in tests to avoid wall-clock sleeps. It
	// returns false when the context is cancelled before the interval
	// elapses.
	wait func(ctx context.Context, d time.Duration) bool
	now  func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func NewLoop(
	cfg config.Config,
	products []product.Product,
	fetcher Fetcher,
	notifier notify.Notifier,
	cooldown cache.Cooldown,
	log *zap.SugaredLogger,
) *Loop {
	return &Loop{
		cfg:      cfg,
		products: products,
		fetcher:  fetcher,
		notifier: notifier,
		cooldown: cooldown,
		log:      log,
		wait:     waitInterval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Run polls until ctx is cancelled. There is no other exit condition.
func (l *Loop) Run(ctx context.Context) {
	l.log.Infow("monitor_started",
		"products", len(l.products),
		"interval", l.cfg.SleepInterval.String(),
	)

	for {
		l.RunCycle(ctx)

		l.log.Infow("cycle_sleeping", "interval", l.cfg.SleepInterval.String())
		if !l.wait(ctx, l.cfg.SleepInterval) {
			l.log.Infow("monitor_stopped")
			return
		}
	}
}

// RunCycle checks every product once, in list order. Failures on one
// product never affect the rest of the cycle.
func (l *Loop) RunCycle(ctx context.Context) {
	log := l.log.With("cycle_id", uuid.NewString())
	log.Infow("cycle_started", "at", l.now().Format("2006-01-02 15:04:05"))

	for _, p := range l.products {
		if ctx.Err() != nil {
			return
		}
		l.checkProduct(ctx, log, p)
	}
}

func (l *Loop) checkProduct(ctx context.Context, log *zap.SugaredLogger, p product.Product) {
	id, ok := asin.Extract(p.URL)
	if !ok {
		log.Warnw("asin_extract_failed", "name", p.Name, "url", p.URL)
		return
	}

	link := asin.AssociateURL(id, l.cfg.AssociateTag)

	reading, err := l.fetcher.Fetch(ctx, link)
	if err != nil {
		// Bad statuses, missing page fields and transport errors all
		// cost the product this cycle only.
		log.Warnw("fetch_failed", "name", p.Name, "asin", id, "err", err)
		return
	}

	if !reading.FreeShipping() {
		log.Infow("price_checked",
			"name", p.Name,
			"asin", id,
			"price", reading.ItemPrice,
			"shipping", reading.ShippingLabel(),
		)
		return
	}

	if !l.cooldown.Allow(ctx, id) {
		log.Infow("notification_suppressed", "name", p.Name, "asin", id)
		return
	}

	msg := fmt.Sprintf("🎉 Free shipping available for %s!\nPrice: %s\nLink: %s", p.Name, reading.ItemPrice, link)
	if err := l.notifier.Send(ctx, msg); err != nil {
		log.Warnw("notification_failed", "name", p.Name, "asin", id, "err", err)
		return
	}
	log.Infow("notification_sent", "name", p.Name, "asin", id, "price", reading.ItemPrice)
}

// Start launches Run on a background goroutine. Part of the fx
// lifecycle; the start context only covers startup itself.
func (l *Loop) Start(ctx context.Context) error {
	_ = ctx

	runCtx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	go func() {
		defer close(l.done)
		l.Run(runCtx)
	}()
	return nil
}

// Stop cancels the loop and waits for the current cycle to unwind.
func (l *Loop) Stop(ctx context.Context) error {
	if l.cancel == nil {
		return nil
	}
	l.cancel()
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func waitInterval(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
