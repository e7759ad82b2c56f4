package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"freeship-watcher/config"
)

const cooldownKeyPrefix = "freeship:notified:"

// Cooldown suppresses repeat notifications for recently alerted
// products. The default configuration never suppresses anything, which
// keeps the loop's re-notify-every-cycle behavior.
type Cooldown interface {
	// Allow reports whether a notification for the identifier may go out
	// now, recording the attempt when it may.
	Allow(ctx context.Context, id string) bool
}

// NewCooldown returns a Redis-backed cooldown when both a client and a
// positive NOTIFY_COOLDOWN_MINUTES are configured, and an allow-all
// cooldown otherwise.
func NewCooldown(client *redis.Client, cfg config.Config, log *zap.SugaredLogger) Cooldown {
	if client == nil || cfg.NotifyCooldown <= 0 {
		return allowAll{}
	}
	return &redisCooldown{client: client, ttl: cfg.NotifyCooldown, log: log}
}

type allowAll struct{}

func (allowAll) Allow(ctx context.Context, id string) bool { return true }

type redisCooldown struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.SugaredLogger
}

func (c *redisCooldown) Allow(ctx context.Context, id string) bool {
	ok, err := c.client.SetNX(ctx, cooldownKeyPrefix+id, time.Now().UTC().Format(time.RFC3339), c.ttl).Result()
	if err != nil {
		// Fail open: a broken cooldown must not swallow notifications.
		c.log.Warnw("cooldown_check_failed", "asin", id, "err", err)
		return true
	}
	return ok
}
