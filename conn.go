package pgstac

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Conn is the minimal capability the client needs from a Postgres
// connection: execute a parameterized query, either reading back a single
// row or discarding the result. *pgx.Conn, pgx.Tx and *pgxpool.Pool all
// satisfy it, so a Client works the same over a plain connection, a pool,
// or a transaction.
type Conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Config represents the configuration for a pgstac database connection
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`

	// MaxConns is the maximum pool size
	// Default: 4
	MaxConns int32 `mapstructure:"maxconns"`

	// ConnTimeout is the timeout for establishing the pool
	// Default: 10 seconds
	ConnTimeout time.Duration `mapstructure:"conntimeout"`
}

// DefaultConfig returns default connection configuration
func DefaultConfig() *Config {
	return &Config{
		Host:        "localhost",
		Port:        5432,
		User:        "postgres",
		Password:    "postgres",
		DBName:      "postgis",
		SSLMode:     "disable",
		MaxConns:    4,
		ConnTimeout: 10 * time.Second,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("pgstac: host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("pgstac: invalid port: %d", c.Port)
	}
	if c.User == "" {
		return errors.New("pgstac: user is required")
	}
	if c.DBName == "" {
		return errors.New("pgstac: dbname is required")
	}
	return nil
}

// DSN returns the postgres connection string.
// The password is URL-encoded to handle special characters.
func (c *Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password),
		c.Host, c.Port, c.DBName, sslMode)
}

// Connect creates a pgx connection pool from the configuration and verifies
// it with a ping. The returned pool satisfies Conn and can be handed
// directly to New. The logger may be nil.
func Connect(ctx context.Context, cfg *Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("pgstac: failed to parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	if cfg.ConnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnTimeout)
		defer cancel()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgstac: failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgstac: failed to ping database: %w", err)
	}

	if logger != nil {
		logger.Info("pgstac pool initialized",
			zap.String("host", cfg.Host),
			zap.Int("port", cfg.Port),
			zap.String("dbname", cfg.DBName),
		)
	}

	return pool, nil
}
