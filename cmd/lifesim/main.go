package main

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
	"github.com/DaanHessen/lifesim-tui/internal/game"
	"github.com/DaanHessen/lifesim-tui/internal/store"
	"github.com/DaanHessen/lifesim-tui/internal/text"
	"github.com/DaanHessen/lifesim-tui/internal/ui"
	"github.com/DaanHessen/lifesim-tui/internal/util"
)

var (
	version      = "0.1.0"
	rulesVersion = version
	seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := util.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.RulesVersion = rulesVersion

	seedFlag := flag.String("seed", cfg.SeedText, "Run seed string (optional; random if omitted)")
	dsn := flag.String("dsn", cfg.DSN, "PostgreSQL DSN")
	dialect := flag.String("dialect", cfg.Dialect, "Save database: sqlite|postgres")
	theme := flag.String("theme", cfg.Theme, "Color theme: catppuccin|dracula|gruvbox")
	name := flag.String("name", "", "Character name (random if omitted)")
	gender := flag.String("gender", "", "Character gender: male|female|other (random if omitted)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lifesim [--seed s] [--dialect sqlite|postgres] [--dsn DSN] [--theme name] [--name n] [--gender g]\n"+
			"        | simulate [--years N] [--name n] [--gender g] [--save] | migrate up|down | version\n")
	}
	flag.Parse()

	cfg.DSN = *dsn
	cfg.Dialect = *dialect
	cfg.Theme = *theme
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		f, err := tea.LogToFile("lifesim-debug.log", "lifesim")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("lifesim", version)
			return
		case "migrate":
			if len(args) < 2 {
				log.Fatal("migrate requires 'up' or 'down'")
			}
			runMigrate(cfg, args[1])
			return
		case "simulate":
			runSimulate(cfg, seedOrNew(*seedFlag), *name, parseGender(*gender), args[1:], logger)
			return
		case "play":
		default:
			flag.Usage()
			os.Exit(2)
		}
	}

	session, err := game.New(game.Config{
		Seed:         seedOrNew(*seedFlag),
		RulesVersion: cfg.RulesVersion,
		Name:         *name,
		Gender:       parseGender(*gender),
		BirthYear:    cfg.BirthYear,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("failed to start a life: %v", err)
	}

	ctx := context.Background()
	repo, err := store.Open(ctx, cfg)
	if err != nil {
		log.Printf("saving disabled: %v", err)
		repo = nil
	}
	if repo != nil {
		defer repo.Close()
	}

	if err := ui.Run(ctx, session, repo, cfg, version, logger); err != nil {
		log.Fatal(err)
	}
}

func runMigrate(cfg util.Config, action string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator, err := store.NewMigrator(cfg)
	if err != nil {
		log.Fatal(err)
	}
	switch action {
	case "up":
		if err := migrator.Up(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
			log.Fatal(err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Down(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
			log.Fatal(err)
		}
		fmt.Println("Migrations rolled back")
	default:
		log.Fatal("unknown migrate action; use up|down")
	}
}

// runSimulate plays a life headlessly, always taking the first available choice,
// and prints the resulting biography.
func runSimulate(cfg util.Config, seed, name string, gender engine.Gender, args []string, logger *log.Logger) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	years := fs.Int("years", 80, "Years to live")
	save := fs.Bool("save", false, "Store the finished life in the save database")
	fs.StringVar(&name, "name", name, "Character name")
	genderText := fs.String("gender", string(gender), "Character gender")
	_ = fs.Parse(args)
	gender = parseGender(*genderText)

	session, err := game.New(game.Config{Seed: seed, RulesVersion: cfg.RulesVersion, Name: name, Gender: gender, BirthYear: cfg.BirthYear, Logger: logger})
	if err != nil {
		log.Fatalf("failed to start a life: %v", err)
	}
	for i := 0; i < *years; i++ {
		if _, err := session.AgeUp(); err != nil {
			log.Fatalf("age %d: %v", session.Character().Age, err)
		}
		if session.Pending() == nil {
			continue
		}
		choices := session.Choices()
		if len(choices) == 0 {
			log.Fatalf("event %s offers no available choice", session.Pending().ID)
		}
		if _, err := session.Resolve(choices[0].ID); err != nil {
			log.Fatalf("resolve %s: %v", choices[0].ID, err)
		}
	}
	fmt.Println(text.Biography(session.Character()))

	if !*save {
		return
	}
	ctx := context.Background()
	repo, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()
	if err := repo.Save(ctx, session.Snapshot()); err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Printf("Saved %s (%s)\n", session.Character().Name, session.ID())
}

// parseGender leaves an empty flag empty so the birth draw picks one.
func parseGender(raw string) engine.Gender {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return engine.ParseGender(raw)
}

func seedOrNew(seed string) string {
	seed = strings.TrimSpace(seed)
	if seed != "" {
		return seed
	}
	generated, err := generateSeed()
	if err != nil {
		log.Fatalf("failed to generate seed: %v", err)
	}
	fmt.Fprintf(os.Stderr, "New run seed: %s\n", generated)
	return generated
}

func generateSeed() (string, error) {
	buf := make([]byte, 15) // 24 characters base32
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
