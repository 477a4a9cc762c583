package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverREST     = "rest"
)

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Store     StoreConfig     `mapstructure:"store"`
	Database  DatabaseConfig  `mapstructure:"database"`
	REST      RESTConfig      `mapstructure:"rest"`
	Redis     RedisConfig     `mapstructure:"redis"`
	AMQP      AMQPConfig      `mapstructure:"amqp"`
	Order     OrderConfig     `mapstructure:"order"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RESTConfig struct {
	URL           string        `mapstructure:"url"`
	Table         string        `mapstructure:"table"`
	APIKey        string        `mapstructure:"api_key"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	Role          string        `mapstructure:"role"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	Burst         int           `mapstructure:"burst"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr    string `mapstructure:"addr"`
	Channel string `mapstructure:"channel"`
}

type AMQPConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

type OrderConfig struct {
	Title          string `mapstructure:"title"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateLayout     string `mapstructure:"date_layout"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"rps"`
	Burst             int     `mapstructure:"burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("rest.url", "")
	v.SetDefault("rest.table", "products")
	v.SetDefault("rest.api_key", "")
	v.SetDefault("rest.jwt_secret", "")
	v.SetDefault("rest.role", "service_role")
	v.SetDefault("rest.rate_per_second", 5)
	v.SetDefault("rest.burst", 5)
	v.SetDefault("rest.timeout", 10*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.channel", "pubstock:events")
	v.SetDefault("amqp.url", "")
	v.SetDefault("amqp.exchange", "pubstock.events")
	v.SetDefault("order.title", "SUPPLIER ORDER - PubStock Manager")
	v.SetDefault("order.currency_symbol", "£")
	v.SetDefault("order.date_layout", "02/01/2006")
	v.SetDefault("ratelimit.rps", 10)
	v.SetDefault("ratelimit.burst", 20)
}

// Load reads the configuration from defaults, an optional config file and
// PUBSTOCK_* environment variables, in increasing priority. A .env file in
// the working directory is loaded into the environment first when present.
func Load(file string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("pubstock")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("database.url is required for the postgres driver")
		}
	case DriverREST:
		if c.REST.URL == "" {
			return errors.New("rest.url is required for the rest driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}
