package postgres

import (
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
)

// ConnParams are the discrete connection settings used when no DSN is given.
type ConnParams struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SSLMode  string
}

// DSN renders p as a postgres URL.
func (p ConnParams) DSN() string {
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.Username, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

func pgconnConfig(dsn string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}
	return cfg, nil
}
