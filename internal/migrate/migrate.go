// Package migrate applies the embedded schema migrations.
// The functions migration is optional at runtime; every query-surface caller
// has a fallback for when the aggregation functions are missing
package migrate

import (
	"embed"
	"errors"
	"strings"

	perr "trendboard/internal/platform/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// driverURL rewrites a postgres URL to the pgx/v5 migrate driver scheme
func driverURL(pgURL string) string {
	switch {
	case strings.HasPrefix(pgURL, "postgres://"):
		return "pgx5://" + strings.TrimPrefix(pgURL, "postgres://")
	case strings.HasPrefix(pgURL, "postgresql://"):
		return "pgx5://" + strings.TrimPrefix(pgURL, "postgresql://")
	default:
		return pgURL
	}
}

func instance(pgURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "migrations source")
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, driverURL(pgURL))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "migrate instance")
	}
	return m, nil
}

// Up applies all pending migrations against the given postgres URL.
// A no-change run is not an error
func Up(pgURL string) error {
	m, err := instance(pgURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return perr.Wrapf(err, perr.ErrorCodeDB, "migrate up")
	}
	return nil
}

// Down rolls back all applied migrations
func Down(pgURL string) error {
	m, err := instance(pgURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return perr.Wrapf(err, perr.ErrorCodeDB, "migrate down")
	}
	return nil
}
