package vin

import (
	"math/rand/v2"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/vin/pkg/vin/prefix"
)

// Alphabet lists the characters allowed anywhere in a VIN. Prefix tables are
// checked against the same set.
const Alphabet = prefix.Alphabet

// PrefixSource supplies the manufacturer prefix and model year for a
// generated VIN. *prefix.Table and prefix.Entry implement it.
type PrefixSource interface {
	Pick(r *rand.Rand) prefix.Entry
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed makes the generator deterministic.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSource replaces the embedded prefix table.
func WithSource(src PrefixSource) GeneratorOption {
	return func(g *Generator) {
		g.source = src
	}
}

// Generator produces random VINs with valid check digits.
// It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	source PrefixSource
}

// NewGenerator returns a Generator. Without options it draws from the
// embedded prefix table with a randomly seeded source.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.source == nil {
		g.source = prefix.Default()
	}
	return g
}

// Random returns a new VIN. The result always passes Validate; it panics if
// the prefix source yields an entry the checksum cannot accept.
func (g *Generator) Random() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.random()
}

// RandomN returns n new VINs.
func (g *Generator) RandomN(n int) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, max(n, 0))
	for range n {
		out = append(out, g.random())
	}
	return out
}

func (g *Generator) random() string {
	e := g.source.Pick(g.rng)

	// prefix(8) + placeholder check char + model year + serial(7)
	buf := make([]byte, 0, Length)
	buf = append(buf, e.Prefix...)
	buf = append(buf, g.char(), e.Year)
	for range Length - CheckDigitIndex - 2 {
		buf = append(buf, g.char())
	}

	if len(buf) != Length {
		panic(errors.AssertionFailedf("generated candidate %q has length %d", buf, len(buf)))
	}
	sum, err := checksum(string(buf))
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "prefix entry %q", e.String()))
	}
	buf[CheckDigitIndex] = checkChar(sum)

	return string(buf)
}

func (g *Generator) char() byte {
	return Alphabet[g.rng.IntN(len(Alphabet))]
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	return NewGenerator()
})

// GenerateRandom returns a random VIN from a process-wide generator backed
// by the embedded prefix table.
func GenerateRandom() string {
	return defaultGenerator().Random()
}
