package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config represents the application configuration. It is built once at
	// startup and passed down by reference; nothing reads it ambiently.
	Config struct {
		HTTPServer HTTPServer `yaml:"http_server"`
		Store      Store      `yaml:"store"`
		Telegram   Telegram   `yaml:"telegram"`
		JWT        JWT        `yaml:"jwt"`
		Logger     Logger     `yaml:"logger"`
		// Telegram ID of the shop administrator. Admin commands from any
		// other identity are silently ignored.
		AdminID int64 `yaml:"admin_id" env:"ADMIN_ID"`
		// Chat that receives new-order notifications. Defaults to AdminID.
		AdminChatID int64 `yaml:"admin_chat_id" env:"ADMIN_CHAT_ID"`
		// Shop timezone: day-scoped order IDs and timestamps follow it.
		Timezone string `yaml:"timezone" env:"SHOP_TIMEZONE" env-default:"Asia/Samarkand"`
		// Order ID prefix, e.g. FL-20260828-0001.
		OrderPrefix string `yaml:"order_prefix" env:"ORDER_PREFIX" env-default:"FL"`
		// Outbound notification queue depth.
		QueueSize int `yaml:"queue_size" env:"QUEUE_SIZE" env-default:"64"`
	}
	// Config for HTTP server.
	HTTPServer struct {
		Address         string        `yaml:"address" env:"RUN_ADDRESS" env-default:"127.0.0.1:8080"`
		Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
		IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	}
	// Config for the flat-file store.
	Store struct {
		OrdersPath  string `yaml:"orders_path" env:"ORDERS_PATH" env-default:"data/orders.json"`
		CounterPath string `yaml:"counter_path" env:"COUNTER_PATH" env-default:"data/counter.json"`
	}
	// Config for the Telegram transport. An empty token switches the
	// service to log-only notifications.
	Telegram struct {
		BotToken string `yaml:"bot_token" env:"BOT_TOKEN"`
		APIURL   string `yaml:"api_url" env:"TELEGRAM_API_URL"`
	}
	// Config for identity tokens.
	JWT struct {
		SigningKey string        `yaml:"signing_key" env:"JWT_SIGNING_KEY"`
		Expiration time.Duration `yaml:"expiration" env:"JWT_EXPIRATION" env-default:"720h"`
	}
	// Config for the application logger.
	Logger struct {
		// Path to the log file; empty means stdout only.
		Path string `yaml:"path" env:"LOG_PATH"`
		// Application logging level.
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		// Log rotation details.
		MaxSizeMB  int `yaml:"max_size_mb" env-default:"100"`
		MaxBackups int `yaml:"max_backups" env-default:"3"`
		MaxAgeDays int `yaml:"max_age_days" env-default:"28"`
	}
)

// MustLoad returns the application configuration populated from an optional
// YAML file, environment variables and flags. It exits on malformed input.
func MustLoad() *Config {
	var cfg Config

	configPath := flag.String("config", "", "path to the config file")
	flag.StringVar(&cfg.HTTPServer.Address, "a", "127.0.0.1:8080", "server startup address")
	flag.StringVar(&cfg.Store.OrdersPath, "s", "data/orders.json", "orders store file")
	flag.StringVar(&cfg.Logger.Level, "l", "info", "log level")
	flag.Parse()

	if *configPath != "" {
		if _, err := os.Stat(*configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", *configPath)
		}
		if err := cleanenv.ReadConfig(*configPath, &cfg); err != nil {
			log.Fatalf("failed to parse config file %s: %v", *configPath, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read environment variables: %v", err)
	}

	if cfg.AdminChatID == 0 {
		cfg.AdminChatID = cfg.AdminID
	}

	return &cfg
}

// Location resolves the shop timezone, falling back to the system local
// zone when the tzdata for it is unavailable.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
