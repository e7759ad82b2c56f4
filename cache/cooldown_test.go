package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freeship-watcher/config"
)

func TestNewCooldown_DisabledWithoutRedis(t *testing.T) {
	t.Parallel()

	c := NewCooldown(nil, config.Config{NotifyCooldown: time.Hour}, zap.NewNop().Sugar())
	require.IsType(t, allowAll{}, c)
	require.True(t, c.Allow(context.Background(), "B08N5WRWNW"))
}

func TestNewCooldown_DisabledWithoutTTL(t *testing.T) {
	t.Parallel()

	c := NewCooldown(nil, config.Config{}, zap.NewNop().Sugar())
	require.True(t, c.Allow(context.Background(), "B08N5WRWNW"))
	require.True(t, c.Allow(context.Background(), "B08N5WRWNW"), "repeat notifications stay allowed")
}
