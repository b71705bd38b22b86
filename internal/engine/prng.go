package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Rand is the only source of nondeterminism the engine consumes.
// Float64 returns a value in [0,1); Intn returns a value in [0,n).
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// SeedFromString returns a 64-bit seed from an arbitrary string using SHA256.
func SeedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// Derive returns a deterministic child seed from a base seed and a stable label
// such as "age:18:tick" or "age:30:action:2".
func Derive(base uint64, label string) uint64 {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, base)
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(label))
	sum := m.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// RunSeed is the canonical seed string of one life plus its derived root.
type RunSeed struct {
	Text string
	root uint64
}

// NewRunSeed creates a deterministic RunSeed from a textual seed. Empty text is rejected.
func NewRunSeed(seedText string) (RunSeed, error) {
	if seedText == "" {
		return RunSeed{}, fmt.Errorf("seed text must not be empty")
	}
	return RunSeed{Text: seedText, root: SeedFromString(seedText)}, nil
}

// WithRules mixes the rules version into the root so balance changes fork replays.
func (r RunSeed) WithRules(rulesVersion string) RunSeed {
	if rulesVersion == "" {
		return r
	}
	return RunSeed{Text: r.Text, root: Derive(r.root, "rules|"+rulesVersion)}
}

// Stream returns a new deterministic RNG stream derived from the run's root seed.
func (r RunSeed) Stream(label string) *Stream {
	return newStream(Derive(r.root, label))
}

// SplitMix64 PRNG implementation for deterministic streams.
type SplitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *SplitMix64 { return &SplitMix64{state: seed} }

func (s *SplitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Stream provides deterministic random numbers with support for labelled child streams.
type Stream struct {
	base uint64
	sm   *SplitMix64
}

func newStream(seed uint64) *Stream {
	return &Stream{base: seed, sm: newSplitMix64(seed)}
}

// Intn mirrors math/rand.Intn but is deterministic per stream.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.sm.next() % uint64(n))
}

// Float64 returns a float in [0,1).
func (s *Stream) Float64() float64 { return float64(s.sm.next()>>11) / (1 << 53) }

// Uint64 exposes the underlying 64-bit stream.
func (s *Stream) Uint64() uint64 { return s.sm.next() }

// Read fills p from the stream so it can back uuid.NewRandomFromReader.
func (s *Stream) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], s.sm.next())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// Child creates a stable sub-stream derived from this stream's base seed and label.
func (s *Stream) Child(label string) *Stream { return newStream(Derive(s.base, label)) }

// ScriptedRand replays a fixed sequence of floats, cycling when exhausted.
// Intn(n) maps the next float f to int(f*n). Used to pin rolls in tests.
type ScriptedRand struct {
	Values []float64
	pos    int
}

// NewScriptedRand returns a ScriptedRand over values; with no values every draw is 0.5.
func NewScriptedRand(values ...float64) *ScriptedRand {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &ScriptedRand{Values: values}
}

func (r *ScriptedRand) Float64() float64 {
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	return v
}

func (r *ScriptedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Draws reports how many values have been consumed.
func (r *ScriptedRand) Draws() int { return r.pos }

// randBetween returns an int in [lo,hi] inclusive.
func randBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// uniformSigned returns a float in [-1,1).
func uniformSigned(r Rand) float64 { return r.Float64()*2 - 1 }

// chance reports whether a roll in [0,1) lands under p.
func chance(r Rand, p float64) bool { return r.Float64() < p }

// percent reports whether a roll in [0,100) lands under pct.
func percent(r Rand, pct float64) bool { return r.Float64()*100 < pct }

type randReader struct{ r Rand }

func (rr randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.Intn(256))
	}
	return len(p), nil
}
