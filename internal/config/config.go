package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Upstream UpstreamConfig `yaml:"upstream" validate:"required"`
	Checkout CheckoutConfig `yaml:"checkout" validate:"required"`
	Poller   PollerConfig   `yaml:"poller"   validate:"required"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// UpstreamConfig points at the marketplace backend the gateway fronts.
type UpstreamConfig struct {
	BaseURL string        `yaml:"base_url" env:"UPSTREAM_BASE_URL" env-default:"http://localhost:8000" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"  env:"UPSTREAM_TIMEOUT"  env-default:"15s"                   validate:"gt=0"`
}

type CheckoutConfig struct {
	SessionTTL      time.Duration `yaml:"session_ttl"      env:"CHECKOUT_SESSION_TTL"      env-default:"30m" validate:"gt=0"`
	ProcessingDelay time.Duration `yaml:"processing_delay" env:"CHECKOUT_PROCESSING_DELAY" env-default:"2s"  validate:"gte=0"`
	SweepInterval   time.Duration `yaml:"sweep_interval"   env:"CHECKOUT_SWEEP_INTERVAL"   env-default:"5m"  validate:"gt=0"`
}

type PollerConfig struct {
	Interval time.Duration `yaml:"interval" env:"POLLER_INTERVAL" env-default:"15s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken   string `yaml:"bot_token"    env:"TELEGRAM_BOT_TOKEN"    env-default:""`
	HostChatID int64  `yaml:"host_chat_id" env:"TELEGRAM_HOST_CHAT_ID" env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
