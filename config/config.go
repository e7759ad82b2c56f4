package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	AppEnv  string

	LogLevel string

	// Amazon associate tag appended to every built product link.
	AssociateTag string

	// Telegram credentials (optional; notifications are skipped with a
	// warning when either is missing).
	TelegramBotToken string
	TelegramChatID   string

	ProductsFile string

	// Poll interval between monitor cycles.
	SleepInterval time.Duration

	// Outbound HTTP timeout for page fetches and notifications.
	HTTPTimeout time.Duration

	// Redis (optional; enabled only when RedisHost is set). Backs the
	// per-product notification cooldown.
	RedisUser      string
	RedisPassword  string
	RedisHost      string
	RedisPort      int
	RedisScheme    string
	NotifyCooldown time.Duration
}

func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "freeship-watcher")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("AMAZON_ASSOCIATE_ID", "yourtrackingid")
	v.SetDefault("PRODUCTS_FILE", "products.json")
	v.SetDefault("SLEEP_MINUTES", 20)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_SCHEME", "redis")
	v.SetDefault("NOTIFY_COOLDOWN_MINUTES", 0)

	return v
}

func NewConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppName: v.GetString("APP_NAME"),
		AppEnv:  v.GetString("APP_ENV"),

		LogLevel: v.GetString("LOG_LEVEL"),

		AssociateTag: v.GetString("AMAZON_ASSOCIATE_ID"),

		TelegramBotToken: v.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   v.GetString("TELEGRAM_CHAT_ID"),

		ProductsFile: v.GetString("PRODUCTS_FILE"),

		SleepInterval: time.Duration(v.GetInt("SLEEP_MINUTES")) * time.Minute,
		HTTPTimeout:   time.Duration(v.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,

		RedisUser:      v.GetString("REDIS_USER"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisHost:      v.GetString("REDIS_HOST"),
		RedisPort:      v.GetInt("REDIS_PORT"),
		RedisScheme:    v.GetString("REDIS_SCHEME"),
		NotifyCooldown: time.Duration(v.GetInt("NOTIFY_COOLDOWN_MINUTES")) * time.Minute,
	}

	if cfg.SleepInterval <= 0 {
		return Config{}, fmt.Errorf("invalid SLEEP_MINUTES %s", cfg.SleepInterval)
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS %s", cfg.HTTPTimeout)
	}
	if cfg.RedisPort <= 0 || cfg.RedisPort > 65535 {
		return Config{}, fmt.Errorf("invalid REDIS_PORT %d", cfg.RedisPort)
	}
	if cfg.NotifyCooldown < 0 {
		return Config{}, fmt.Errorf("invalid NOTIFY_COOLDOWN_MINUTES %s", cfg.NotifyCooldown)
	}

	return cfg, nil
}

// NotifierConfigured reports whether both Telegram credentials are set.
func (c Config) NotifierConfigured() bool {
	return strings.TrimSpace(c.TelegramBotToken) != "" && strings.TrimSpace(c.TelegramChatID) != ""
}
