package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
	"github.com/DaanHessen/lifesim-tui/internal/util"
)

func openTestRepo(t *testing.T) Repository {
	t.Helper()
	cfg := util.Config{Dialect: util.DialectSQLite, SQLitePath: filepath.Join(t.TempDir(), "saves", "lifesim.sqlite")}
	repo, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleSave(name string, at time.Time) SaveGame {
	c := engine.NewCharacter(engine.NewScriptedRand(0.3, 0.7), name, engine.GenderFemale, 1990)
	c.Age = 30
	c.Assets = []engine.OwnedAsset{{Asset: engine.Asset{ID: "index_fund", Name: "Index Fund"}, PurchaseYear: 2015, CurrentValue: 12000}}
	return SaveGame{
		ID:           uuid.New(),
		SeedText:     "seed-" + name,
		RulesVersion: "test",
		Character:    c,
		PendingKind:  engine.KindEnhanced,
		PendingID:    "startup_idea",
		Ops:          7,
		UpdatedAt:    at,
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	save := sampleSave("Ava", time.Unix(1000, 0))
	if err := repo.Save(ctx, save); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load(ctx, save.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != save.Character.Name || got.SeedText != save.SeedText || got.Ops != 7 {
		t.Fatalf("save = %+v", got)
	}
	if got.PendingKind != engine.KindEnhanced || got.PendingID != "startup_idea" {
		t.Fatalf("pending = %s/%s", got.PendingKind, got.PendingID)
	}
	if got.Character.Age != 30 || got.Character.ID != save.Character.ID || len(got.Character.Assets) != 1 {
		t.Fatalf("character = %+v", got.Character)
	}
	if got.Character.Assets[0].CurrentValue != 12000 || len(got.Character.LifeEvents) != 1 {
		t.Fatalf("nested state lost: %+v", got.Character.Assets)
	}
	if !got.UpdatedAt.Equal(save.UpdatedAt) {
		t.Fatalf("updated at = %v", got.UpdatedAt)
	}
}

func TestSQLiteUpsertAndLatest(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	a := sampleSave("Ava", time.Unix(1000, 0))
	b := sampleSave("Ben", time.Unix(2000, 0))
	for _, s := range []SaveGame{a, b} {
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	latest, err := repo.Latest(ctx)
	if err != nil || latest.ID != b.ID {
		t.Fatalf("latest = %v, %v", latest.ID, err)
	}

	a.Character.Age = 31
	a.Ops = 8
	a.UpdatedAt = time.Unix(3000, 0)
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	list, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != a.ID || list[0].Character.Age != 31 || list[0].Ops != 8 {
		t.Fatalf("list = %+v", list)
	}
}

func TestSQLiteNotFoundAndValidation(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	if _, err := repo.Latest(ctx); err != ErrNotFound {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if _, err := repo.Load(ctx, uuid.New()); err != ErrNotFound {
		t.Fatalf("Load missing: %v", err)
	}
	bad := sampleSave("Ava", time.Time{})
	bad.ID = uuid.Nil
	if err := repo.Save(ctx, bad); err == nil {
		t.Fatalf("nil id accepted")
	}
}

func TestMigratorIsIdempotent(t *testing.T) {
	cfg := util.Config{Dialect: util.DialectSQLite, SQLitePath: filepath.Join(t.TempDir(), "m.sqlite")}
	mig, err := NewMigrator(cfg)
	if err != nil {
		t.Fatalf("NewMigrator: %v", err)
	}
	if err := mig.Up(context.Background()); err != nil {
		t.Fatalf("first Up: %v", err)
	}
	if err := mig.Up(context.Background()); err != ErrNoChange {
		t.Fatalf("second Up = %v, want ErrNoChange", err)
	}
	if err := mig.Down(context.Background()); err != nil {
		t.Fatalf("Down: %v", err)
	}
	if _, err := NewMigrator(util.Config{Dialect: util.DialectPostgres}); err == nil {
		t.Fatalf("postgres without DSN accepted")
	}
}
