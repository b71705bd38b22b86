package game

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
	"github.com/DaanHessen/lifesim-tui/internal/store"
)

// ErrEventPending is returned for any mutation attempted while an event awaits a choice.
var ErrEventPending = &engine.Error{Code: "EVENT_PENDING", Message: "an event is waiting for your choice"}

// Config describes a new life.
type Config struct {
	Seed         string
	RulesVersion string
	Name         string
	Gender       engine.Gender
	BirthYear    int
	Logger       *log.Logger
}

// Session owns one Character and its pending event. All mutations are serialized.
type Session struct {
	mu      sync.Mutex
	id      uuid.UUID
	seed    engine.RunSeed
	rules   string
	char    engine.Character
	pending *engine.Event
	ops     int
	logger  *log.Logger
}

func discardLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}

// New starts a life at age 0. An empty name or gender is drawn from the seed.
func New(cfg Config) (*Session, error) {
	seed, err := engine.NewRunSeed(strings.TrimSpace(cfg.Seed))
	if err != nil {
		return nil, err
	}
	seed = seed.WithRules(cfg.RulesVersion)
	birth := seed.Stream("birth")
	gender := cfg.Gender
	if gender == "" {
		gender = engine.AllGenders[birth.Intn(len(engine.AllGenders))]
	}
	if !gender.Validate() {
		return nil, fmt.Errorf("unknown gender %q", gender)
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = engine.RandomName(birth, gender)
	}
	year := cfg.BirthYear
	if year == 0 {
		year = time.Now().Year()
	}
	s := &Session{
		id:     uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed.Text+"|"+cfg.RulesVersion)),
		seed:   seed,
		rules:  cfg.RulesVersion,
		char:   engine.NewCharacter(birth, name, gender, year),
		logger: discardLogger(cfg.Logger),
	}
	s.logger.Printf("[lifesim] new life %s (%s) seed=%s", s.char.Name, s.char.ID, seed.Text)
	return s, nil
}

// Restore rebuilds a Session from a save, re-resolving the pending event from the catalogs.
func Restore(save store.SaveGame, logger *log.Logger) (*Session, error) {
	seed, err := engine.NewRunSeed(save.SeedText)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:     save.ID,
		seed:   seed.WithRules(save.RulesVersion),
		rules:  save.RulesVersion,
		char:   save.Character.Clone(),
		ops:    save.Ops,
		logger: discardLogger(logger),
	}
	if save.PendingID != "" {
		ev, ok := engine.EventByRef(save.PendingKind, save.PendingID)
		if !ok {
			return nil, fmt.Errorf("save %s references unknown %s event %q", save.ID, save.PendingKind, save.PendingID)
		}
		s.pending = &ev
	}
	s.logger.Printf("[lifesim] restored %s at age %d", s.char.Name, s.char.Age)
	return s, nil
}

func (s *Session) stream(format string, args ...any) *engine.Stream {
	label := fmt.Sprintf("age:%d:", s.char.Age) + fmt.Sprintf(format, args...)
	return s.seed.Stream(label)
}

// AgeUp advances one year. It fails while an event is pending.
func (s *Session) AgeUp() (engine.TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.logger.Printf("[lifesim] age up refused: %s pending", s.pending.ID)
		return engine.TickResult{}, ErrEventPending
	}
	res := engine.AgeUp(s.char, s.stream("tick"))
	s.char = res.Character
	s.pending = res.Pending
	s.ops++
	if res.Pending != nil {
		s.logger.Printf("[lifesim] age %d, pending %s/%s", s.char.Age, res.Pending.Kind, res.Pending.ID)
	} else {
		s.logger.Printf("[lifesim] age %d", s.char.Age)
	}
	return engine.TickResult{Character: s.char.Clone(), Pending: clonePending(res.Pending)}, nil
}

// Dispatch applies a player action.
func (s *Session) Dispatch(a engine.Action) (engine.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return s.char.Clone(), ErrEventPending
	}
	next, err := engine.Dispatch(s.char, a, s.stream("action:%d", s.ops))
	s.ops++
	if err != nil {
		s.logger.Printf("[lifesim] %s rejected: %v", a.Type(), err)
		return s.char.Clone(), err
	}
	s.char = next
	s.logger.Printf("[lifesim] %s applied", a.Type())
	return s.char.Clone(), nil
}

// Resolve answers the pending event with choiceID.
func (s *Session) Resolve(choiceID string) (engine.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return engine.Outcome{}, engine.ErrNoPendingEvent
	}
	ev := *s.pending
	next, out, err := engine.Resolve(s.char, ev, choiceID, s.stream("resolve:%s", ev.ID))
	if err != nil {
		s.logger.Printf("[lifesim] %s/%s rejected: %v", ev.ID, choiceID, err)
		return engine.Outcome{}, err
	}
	s.char = next
	s.pending = nil
	s.ops++
	s.logger.Printf("[lifesim] resolved %s with %s (rolled=%t ok=%t)", ev.ID, choiceID, out.Rolled, out.Succeeded)
	return out, nil
}

// Choices lists the pending event's choices the character can currently take.
func (s *Session) Choices() []engine.Choice {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	return s.pending.AvailableChoices(s.char)
}

func (s *Session) Character() engine.Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.char.Clone()
}

func (s *Session) Pending() *engine.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePending(s.pending)
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) SeedText() string { return s.seed.Text }

// Snapshot captures everything needed to continue this life later.
func (s *Session) Snapshot() store.SaveGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	save := store.SaveGame{
		ID:           s.id,
		Name:         s.char.Name,
		SeedText:     s.seed.Text,
		RulesVersion: s.rules,
		Character:    s.char.Clone(),
		Ops:          s.ops,
	}
	if s.pending != nil {
		save.PendingKind = s.pending.Kind
		save.PendingID = s.pending.ID
	}
	return save
}

func clonePending(ev *engine.Event) *engine.Event {
	if ev == nil {
		return nil
	}
	cp := *ev
	return &cp
}
