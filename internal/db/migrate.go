package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"srportal/db/migrations"
)

// Migrate brings the database at addr to migrations.Version and returns the
// version it ended at.
func Migrate(addr string) (uint, error) {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		return mg.Migrate(migrations.Version)
	})
}

// Rollback reverts every applied migration. It is meant for throwaway
// development databases.
func Rollback(addr string) (uint, error) {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		return mg.Down()
	})
}

func withMigrator(addr string, run func(*migrate.Migrate) error) (uint, error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open migrations: %w", err)
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return 0, errors.New("database is in dirty state")
	}

	if err = run(mg); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}

	version, _, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return version, err
}
