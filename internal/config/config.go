package config

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultRunAddress             = ":3000"
	DefaultAPIBaseURL             = "https://api.bigcommerce.com"
	DefaultUpstreamTimeout        = 15 * time.Second
	DefaultUpstreamMaxRetries     = 0
	DefaultMetafieldPermissionSet = "write_and_sf_access"
	DefaultMetaCacheMaxAge        = 60 * time.Second
	DefaultDatabaseURI            = ""
	DefaultJWTSecret              = ""
	DefaultFunctionPathPrefix     = "/.netlify/functions/bcproxy"
)

var (
	ErrStoreHashRequired  = errors.New("store hash is required (BC_STORE_HASH)")
	ErrAdminTokenRequired = errors.New("admin token is required (BC_ADMIN_TOKEN)")
	ErrNegativeRetries    = errors.New("upstream max retries must not be negative")
)

type Config struct {
	RunAddress string `env:"RUN_ADDRESS"`
	Port       string `env:"PORT"`

	StoreHash              string        `env:"BC_STORE_HASH"`
	AdminToken             string        `env:"BC_ADMIN_TOKEN"`
	APIBaseURL             string        `env:"BC_API_BASE_URL"`
	UpstreamTimeout        time.Duration `env:"UPSTREAM_TIMEOUT"`
	UpstreamMaxRetries     int           `env:"UPSTREAM_MAX_RETRIES"`
	MetafieldPermissionSet string        `env:"METAFIELD_PERMISSION_SET"`
	MetaCacheMaxAge        time.Duration `env:"META_CACHE_MAX_AGE"`

	DatabaseURI string `env:"DATABASE_URI"`
	JWTSecret   string `env:"JWT_SECRET"`

	// Только для cmd/function
	FunctionPathPrefix string `env:"FUNCTION_PATH_PREFIX"`
}

// Read - флаги, поверх них переменные окружения (в т.ч. из .env)
func Read() (Config, error) {
	config := Config{
		MetaCacheMaxAge:    DefaultMetaCacheMaxAge,
		FunctionPathPrefix: DefaultFunctionPathPrefix,
	}

	// .env не обязателен
	_ = godotenv.Load()

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.StoreHash, "s", "", "BigCommerce store hash")
	flag.StringVar(&config.AdminToken, "t", "", "BigCommerce admin API token")
	flag.StringVar(&config.APIBaseURL, "b", DefaultAPIBaseURL, "BigCommerce API base URL")
	flag.DurationVar(&config.UpstreamTimeout, "timeout", DefaultUpstreamTimeout, "Upstream request timeout (e.g. 5s, 1m)")
	flag.IntVar(&config.UpstreamMaxRetries, "retries", DefaultUpstreamMaxRetries, "Retries for idempotent upstream requests")
	flag.StringVar(&config.MetafieldPermissionSet, "perm", DefaultMetafieldPermissionSet, "Permission set of the written metafield")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string (empty - journal disabled)")
	flag.StringVar(&config.JWTSecret, "j", DefaultJWTSecret, "Secret for bearer tokens on /api (empty - no auth)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	// PORT - для хостингов, которые задают только порт
	if config.Port != "" && os.Getenv("RUN_ADDRESS") == "" && !isFlagPassed("a") {
		config.RunAddress = ":" + config.Port
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.StoreHash == "" {
		return ErrStoreHashRequired
	}
	if c.AdminToken == "" {
		return ErrAdminTokenRequired
	}
	if c.UpstreamMaxRetries < 0 {
		return ErrNegativeRetries
	}

	return nil
}

func isFlagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})

	return passed
}
