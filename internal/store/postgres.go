package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// saveModel maps row onto the saves table for gorm.
type saveModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	SeedText      string
	RulesVersion  string
	Age           int
	CharacterJSON string `gorm:"column:character_json;type:jsonb"`
	PendingKind   string
	PendingID     string
	Ops           int
	UpdatedAt     time.Time
}

func (saveModel) TableName() string { return "saves" }

// PostgresRepo stores saves through gorm.
type PostgresRepo struct {
	gorm *gorm.DB
	sql  *sql.DB
}

// OpenPostgres connects to dsn. Schema is managed by Migrator.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepo, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		_ = sdb.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return &PostgresRepo{gorm: gdb, sql: sdb}, nil
}

func (p *PostgresRepo) Close() error { return p.sql.Close() }

func (p *PostgresRepo) Save(ctx context.Context, s SaveGame) error {
	r, err := toRow(s)
	if err != nil {
		return err
	}
	m := saveModel(r)
	err = p.gorm.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&m).Error
	return wrap(err, "save game")
}

func (p *PostgresRepo) Load(ctx context.Context, id uuid.UUID) (SaveGame, error) {
	var m saveModel
	err := p.gorm.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	return p.one(m, err)
}

func (p *PostgresRepo) Latest(ctx context.Context) (SaveGame, error) {
	var m saveModel
	err := p.gorm.WithContext(ctx).Order("updated_at DESC").Limit(1).Take(&m).Error
	return p.one(m, err)
}

func (p *PostgresRepo) List(ctx context.Context, limit int) ([]SaveGame, error) {
	var ms []saveModel
	if err := p.gorm.WithContext(ctx).Order("updated_at DESC").Limit(clampLimit(limit)).Find(&ms).Error; err != nil {
		return nil, wrap(err, "list saves")
	}
	rows := make([]row, len(ms))
	for i, m := range ms {
		rows[i] = row(m)
	}
	return saves(rows)
}

func (p *PostgresRepo) one(m saveModel, err error) (SaveGame, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SaveGame{}, ErrNotFound
	}
	if err != nil {
		return SaveGame{}, wrap(err, "load save")
	}
	return row(m).save()
}
