package store

import (
	"context"
	"encoding/json"
	errs "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
	"github.com/DaanHessen/lifesim-tui/internal/util"
)

var (
	ErrNoChange = errs.New("no change")
	ErrNotFound = errs.New("save not found")
)

// SaveGame is one persisted life: the character document plus what a session needs to resume.
type SaveGame struct {
	ID           uuid.UUID
	Name         string
	SeedText     string
	RulesVersion string
	Character    engine.Character
	PendingKind  engine.EventKind
	PendingID    string
	Ops          int
	UpdatedAt    time.Time
}

// Repository persists save games. Save upserts by ID.
type Repository interface {
	Save(ctx context.Context, save SaveGame) error
	Load(ctx context.Context, id uuid.UUID) (SaveGame, error)
	Latest(ctx context.Context) (SaveGame, error)
	List(ctx context.Context, limit int) ([]SaveGame, error)
	Close() error
}

// Open applies migrations and connects to the configured database.
func Open(ctx context.Context, cfg util.Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Dialect == util.DialectSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, errors.Wrap(err, "create sqlite directory")
		}
	}
	mig, err := NewMigrator(cfg)
	if err != nil {
		return nil, err
	}
	if err := mig.Up(ctx); err != nil && err != ErrNoChange {
		return nil, err
	}
	switch cfg.Dialect {
	case util.DialectPostgres:
		return OpenPostgres(ctx, cfg.DSN)
	default:
		return OpenSQLite(ctx, cfg.SQLitePath)
	}
}

// row is the flat column form shared by both dialects.
type row struct {
	ID            uuid.UUID
	Name          string
	SeedText      string
	RulesVersion  string
	Age           int
	CharacterJSON string
	PendingKind   string
	PendingID     string
	Ops           int
	UpdatedAt     time.Time
}

func toRow(s SaveGame) (row, error) {
	if s.ID == uuid.Nil {
		return row{}, fmt.Errorf("save id is required")
	}
	if s.SeedText == "" {
		return row{}, fmt.Errorf("seed text is required")
	}
	doc, err := json.Marshal(s.Character)
	if err != nil {
		return row{}, errors.Wrap(err, "encode character")
	}
	at := s.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}
	name := s.Name
	if name == "" {
		name = s.Character.Name
	}
	return row{
		ID:            s.ID,
		Name:          name,
		SeedText:      s.SeedText,
		RulesVersion:  s.RulesVersion,
		Age:           s.Character.Age,
		CharacterJSON: string(doc),
		PendingKind:   string(s.PendingKind),
		PendingID:     s.PendingID,
		Ops:           s.Ops,
		UpdatedAt:     at.UTC(),
	}, nil
}

func (r row) save() (SaveGame, error) {
	var c engine.Character
	if err := json.Unmarshal([]byte(r.CharacterJSON), &c); err != nil {
		return SaveGame{}, errors.Wrapf(err, "decode character for save %s", r.ID)
	}
	return SaveGame{
		ID:           r.ID,
		Name:         r.Name,
		SeedText:     r.SeedText,
		RulesVersion: r.RulesVersion,
		Character:    c,
		PendingKind:  engine.EventKind(r.PendingKind),
		PendingID:    r.PendingID,
		Ops:          r.Ops,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

func saves(rows []row) ([]SaveGame, error) {
	out := make([]SaveGame, 0, len(rows))
	for _, r := range rows {
		s, err := r.save()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
