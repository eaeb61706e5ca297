package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":3000"`
}

// Base URLs of the downstream services the storefront proxies to.
type Services struct {
	CartURL    string `yaml:"CART_SERVICE_URL" env:"CART_SERVICE_URL" env-default:"http://localhost:8089"`
	MemberURL  string `yaml:"MEMBER_SERVICE_URL" env:"MEMBER_SERVICE_URL" env-default:"http://localhost:8089"`
	ProductURL string `yaml:"PRODUCT_SERVICE_URL" env:"PRODUCT_SERVICE_URL" env-default:"http://localhost:8083"`
	HealthPath string `yaml:"HEALTH_PATH" env:"SERVICES_HEALTH_PATH" env-default:"/actuator/health"`
}

type Upstream struct {
	Timeout          time.Duration `yaml:"TIMEOUT" env:"UPSTREAM_TIMEOUT" env-default:"10s"`
	BreakerFailures  uint32        `yaml:"BREAKER_FAILURES" env:"UPSTREAM_BREAKER_FAILURES" env-default:"5"`
	BreakerOpenDelay time.Duration `yaml:"BREAKER_OPEN_DELAY" env:"UPSTREAM_BREAKER_OPEN_DELAY" env-default:"30s"`
	BreakerInterval  time.Duration `yaml:"BREAKER_INTERVAL" env:"UPSTREAM_BREAKER_INTERVAL" env-default:"60s"`
}

type Cookies struct {
	Secure            bool          `yaml:"SECURE" env:"COOKIE_SECURE" env-default:"false"`
	AccessTokenMaxAge time.Duration `yaml:"ACCESS_TOKEN_MAX_AGE" env:"ACCESS_TOKEN_MAX_AGE" env-default:"15m"`
	RefreshMaxAge     time.Duration `yaml:"REFRESH_TOKEN_MAX_AGE" env:"REFRESH_TOKEN_MAX_AGE" env-default:"720h"`
	GuestCartMaxAge   time.Duration `yaml:"GUEST_CART_MAX_AGE" env:"GUEST_CART_MAX_AGE" env-default:"720h"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type OtelConfig struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"blimarket-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

// Guest carts are normally opened by the cart service on the first add. With
// MintLocally the storefront assigns the guest id itself.
type GuestCart struct {
	MintLocally bool `yaml:"MINT_LOCALLY" env:"GUEST_CART_MINT_LOCALLY" env-default:"false"`
}

type Security struct {
	HeadersEnabled        bool   `yaml:"HEADERS_ENABLED" env:"SECURITY_HEADERS_ENABLED" env-default:"true"`
	ContentSecurityPolicy string `yaml:"CSP" env:"SECURITY_CSP" env-default:"default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Services     Services     `yaml:"services"`
	Upstream     Upstream     `yaml:"upstream"`
	Cookies      Cookies      `yaml:"cookies"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Cache        CacheConfig  `yaml:"cache"`
	Otel         OtelConfig   `yaml:"otel"`
	Security     Security     `yaml:"security"`
	GuestCart    GuestCart    `yaml:"guest_cart"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
