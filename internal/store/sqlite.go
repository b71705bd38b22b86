package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const saveColumns = `id, name, seed_text, rules_version, age, character_json, pending_kind, pending_id, ops, updated_at`

// SQLiteRepo stores saves in a local SQLite file.
type SQLiteRepo struct {
	db *sql.DB
}

// OpenSQLite opens path. Schema is managed by Migrator.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	return &SQLiteRepo{db: db}, nil
}

func (s *SQLiteRepo) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteRepo) Save(ctx context.Context, save SaveGame) error {
	r, err := toRow(save)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO saves(`+saveColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		seed_text = excluded.seed_text,
		rules_version = excluded.rules_version,
		age = excluded.age,
		character_json = excluded.character_json,
		pending_kind = excluded.pending_kind,
		pending_id = excluded.pending_id,
		ops = excluded.ops,
		updated_at = excluded.updated_at`,
		r.ID.String(), r.Name, r.SeedText, r.RulesVersion, r.Age, r.CharacterJSON, r.PendingKind, r.PendingID, r.Ops, r.UpdatedAt.UnixNano(),
	)
	return wrap(err, "save game")
}

func (s *SQLiteRepo) Load(ctx context.Context, id uuid.UUID) (SaveGame, error) {
	return s.one(s.db.QueryRowContext(ctx, `SELECT `+saveColumns+` FROM saves WHERE id = ?`, id.String()))
}

func (s *SQLiteRepo) Latest(ctx context.Context) (SaveGame, error) {
	return s.one(s.db.QueryRowContext(ctx, `SELECT `+saveColumns+` FROM saves ORDER BY updated_at DESC LIMIT 1`))
}

func (s *SQLiteRepo) List(ctx context.Context, limit int) ([]SaveGame, error) {
	rs, err := s.db.QueryContext(ctx, `SELECT `+saveColumns+` FROM saves ORDER BY updated_at DESC LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, wrap(err, "list saves")
	}
	defer rs.Close()
	var rows []row
	for rs.Next() {
		r, err := scanRow(rs)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	if err := rs.Err(); err != nil {
		return nil, wrap(err, "list saves")
	}
	return saves(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (row, error) {
	var (
		r     row
		id    string
		nanos int64
	)
	if err := sc.Scan(&id, &r.Name, &r.SeedText, &r.RulesVersion, &r.Age, &r.CharacterJSON, &r.PendingKind, &r.PendingID, &r.Ops, &nanos); err != nil {
		return row{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return row{}, errors.Wrapf(err, "parse save id %q", id)
	}
	r.ID = parsed
	r.UpdatedAt = time.Unix(0, nanos).UTC()
	return r, nil
}

func (s *SQLiteRepo) one(sc scanner) (SaveGame, error) {
	r, err := scanRow(sc)
	if errors.Is(err, sql.ErrNoRows) {
		return SaveGame{}, ErrNotFound
	}
	if err != nil {
		return SaveGame{}, wrap(err, "load save")
	}
	return r.save()
}
