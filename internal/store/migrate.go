package store

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"

	"github.com/DaanHessen/lifesim-tui/internal/store/migrations"
	"github.com/DaanHessen/lifesim-tui/internal/util"
)

// Migrator handles DB schema migrations using golang-migrate.
type Migrator struct {
	dialect string
	url     string
}

func NewMigrator(cfg util.Config) (*Migrator, error) {
	switch cfg.Dialect {
	case util.DialectPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("missing DSN")
		}
		return &Migrator{dialect: cfg.Dialect, url: cfg.DSN}, nil
	case util.DialectSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("missing sqlite path")
		}
		return &Migrator{dialect: cfg.Dialect, url: "sqlite://" + cfg.SQLitePath}, nil
	}
	return nil, fmt.Errorf("unsupported dialect %q", cfg.Dialect)
}

func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Up() })
}

func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Steps(-1) })
}

func (m *Migrator) run(ctx context.Context, step func(*migrate.Migrate) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := iofs.New(migrations.FS, m.dialect)
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.url)
	if err != nil {
		return errors.Wrapf(err, "init %s migrations", m.dialect)
	}
	defer mig.Close()
	if err := step(mig); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return ErrNoChange
		}
		return errors.Wrapf(err, "migrate %s", m.dialect)
	}
	return nil
}
