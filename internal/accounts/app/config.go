package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/postgres"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// EnvFileVar names the variable that points at an optional dotenv file.
const EnvFileVar = "ACCOUNTS_ENV_FILE"

const defaultEnvFile = ".local.env"

var (
	ErrMissingSecret = errors.New("JWT_SECRET is required outside dev")
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrInvalidTTL    = errors.New("token ttl must be positive")
)

type Config struct {
	JWTSecret   string        `env:"JWT_SECRET"`                   // Required outside dev
	Issuer      string        `env:"AUTH_ISSUER" envDefault:"accounts"`
	AccessTTL   time.Duration `env:"AUTH_ACCESS_TTL" envDefault:"60m"`
	RefreshTTL  time.Duration `env:"AUTH_REFRESH_TTL" envDefault:"24h"`
	TokenLeeway time.Duration `env:"AUTH_TOKEN_LEEWAY" envDefault:"0s"`
	BcryptCost  int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseFile   string `env:"AUTH_DATABASE_FILE" envDefault:"accounts.db"`
	DatabaseURL    string `env:"DATABASE_URL"` // Postgres DSN; assembled from DB_* when empty
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         int    `env:"DB_PORT" envDefault:"5432"`
	DBUsername     string `env:"DB_USERNAME" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBDatabase     string `env:"DB_DATABASE" envDefault:"accounts"`

	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	Env                  string        `env:"ENV" envDefault:"dev"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                 int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	UserRetention        time.Duration `env:"USER_RETENTION" envDefault:"0s"` // 0 keeps soft-deleted users forever

	// EphemeralSecret is set when JWTSecret was generated at startup. Tokens
	// then do not survive a restart.
	EphemeralSecret bool `env:"-"`
}

// LoadConfig reads the optional dotenv file, then the environment.
func LoadConfig() (Config, error) {
	path := os.Getenv(EnvFileVar)
	if path == "" {
		path = defaultEnvFile
	}
	// A missing file is fine, the environment alone is enough.
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" && cfg.Env == "dev" {
		secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return Config{}, fmt.Errorf("generate dev secret: %w", err)
		}
		cfg.JWTSecret = secret
		cfg.EphemeralSecret = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if len(c.JWTSecret) < jwtx.MinSecretLength {
		return fmt.Errorf("JWT_SECRET: %w", jwtx.ErrWeakSecret)
	}

	switch strings.ToLower(c.DatabaseDriver) {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DatabaseDriver)
	}

	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return ErrInvalidTTL
	}
	if _, err := cryptox.NewBcryptHasher(c.BcryptCost); err != nil {
		return err
	}
	return nil
}

// PostgresDSN returns DATABASE_URL, or one built from the DB_* settings.
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return postgres.ConnParams{
		Host:     c.DBHost,
		Port:     c.DBPort,
		Username: c.DBUsername,
		Password: c.DBPassword,
		Database: c.DBDatabase,
	}.DSN()
}

// SQLiteDSN is the file DSN with the pragmas the service runs with.
func (c Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.DatabaseFile)
}
