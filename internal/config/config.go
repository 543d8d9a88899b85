// config предоставляет структуру конфигурации ingest-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	DB       DBConfig       `yaml:"db"`
	Poller   PollerConfig   `yaml:"poller"`
	Health   HealthConfig   `yaml:"health"`
	Trending TrendingConfig `yaml:"trending"`
	Redis    RedisConfig    `yaml:"redis"`
	Events   EventsConfig   `yaml:"events"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// PollerConfig — параметры оркестратора опроса источников.
type PollerConfig struct {
	// Interval — период проверки «кому пора на опрос».
	Interval time.Duration `yaml:"interval" env:"POLL_INTERVAL" env-default:"1m"`
	// MaxConcurrent — предел одновременных опросов.
	MaxConcurrent int `yaml:"max_concurrent" env:"POLL_MAX_CONCURRENT" env-default:"8"`
	// AttemptTimeout — таймаут одной попытки скрейпа; по его истечении
	// ScrapeJob завершается статусом timeout.
	AttemptTimeout time.Duration `yaml:"attempt_timeout" env:"POLL_ATTEMPT_TIMEOUT" env-default:"2m"`
	// RatePerSecond — глобальный лимит исходящих опросов в секунду.
	RatePerSecond float64 `yaml:"rate_per_second" env:"POLL_RATE_PER_SECOND" env-default:"5"`
}

// HealthConfig — параметры circuit breaker'а источников.
type HealthConfig struct {
	// FailureThreshold — серия неудач, после которой источник отключается.
	FailureThreshold int32 `yaml:"failure_threshold" env:"HEALTH_FAILURE_THRESHOLD" env-default:"5"`
	// ErrorMaxLen — предел длины сохраняемого текста ошибки (в рунах).
	ErrorMaxLen int `yaml:"error_max_len" env:"HEALTH_ERROR_MAX_LEN" env-default:"500"`
}

// TrendingConfig — параметры дневного ранкера трендов.
type TrendingConfig struct {
	// WindowDays — скользящее окно для знаменателя velocity.
	WindowDays int `yaml:"window_days" env:"TRENDING_WINDOW_DAYS" env-default:"7"`
	// TopEntities — размер кэша доминирующих сущностей кластера.
	TopEntities int `yaml:"top_entities" env:"TRENDING_TOP_ENTITIES" env-default:"5"`
	// TrendingRanks — сколько верхних рангов среза помечают кластеры трендовыми.
	TrendingRanks int `yaml:"trending_ranks" env:"TRENDING_RANKS" env-default:"10"`
}

// RedisConfig — необязательный fast-path кэш отпечатков.
// Пустой Addr отключает кэш: дедупликация работает только через БД.
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:""`
	Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// EventsConfig — необязательная публикация событий допуска в NATS.
// Пустой URL отключает публикацию.
type EventsConfig struct {
	URL     string `yaml:"url" env:"NATS_URL" env-default:""`
	Subject string `yaml:"subject" env:"NATS_SUBJECT" env-default:"osint.articles.admitted"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Poller.Interval < time.Second {
		return fmt.Errorf("poller.interval must be at least 1s")
	}
	if c.Poller.MaxConcurrent <= 0 {
		return fmt.Errorf("poller.max_concurrent must be > 0")
	}
	if c.Poller.AttemptTimeout <= 0 {
		return fmt.Errorf("poller.attempt_timeout must be > 0")
	}
	if c.Poller.RatePerSecond <= 0 {
		return fmt.Errorf("poller.rate_per_second must be > 0")
	}
	if c.Health.FailureThreshold <= 0 {
		return fmt.Errorf("health.failure_threshold must be > 0")
	}
	if c.Health.ErrorMaxLen <= 0 {
		return fmt.Errorf("health.error_max_len must be > 0")
	}
	if c.Trending.WindowDays <= 0 {
		return fmt.Errorf("trending.window_days must be > 0")
	}
	if c.Trending.TopEntities <= 0 {
		return fmt.Errorf("trending.top_entities must be > 0")
	}
	if c.Trending.TrendingRanks <= 0 {
		return fmt.Errorf("trending.trending_ranks must be > 0")
	}
	return nil
}
