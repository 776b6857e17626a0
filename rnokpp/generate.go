package rnokpp

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/rnokpp/errors"
	"github.com/teranos/rnokpp/internal/util"
	"github.com/teranos/rnokpp/logger"
)

// Default age window for a randomly drawn date of birth, in whole years
// of 365 days.
const (
	DefaultMinAge = 14
	DefaultMaxAge = 95
)

// Source is the randomness a Generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Params constrains a generated identifier. Nil DateOfBirth and
// SexUnspecified leave the field random.
type Params struct {
	DateOfBirth *time.Time
	Sex         Sex
}

// ParseParams builds Params from the string forms accepted at the call
// surface. An empty dob leaves the date random; sex follows ParseSex.
func ParseParams(dob, sex string) (Params, error) {
	p := Params{Sex: ParseSex(sex)}
	if dob != "" {
		t, err := ParseDate(dob)
		if err != nil {
			return Params{}, err
		}
		p.DateOfBirth = util.Ptr(t)
	}
	return p, nil
}

// Generator produces identifiers with a valid check digit. It is safe for
// concurrent use.
type Generator struct {
	mu     sync.Mutex
	src    Source
	now    func() time.Time
	minAge int
	maxAge int
	log    *zap.SugaredLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random source.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithSeed makes the Generator reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.src = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithClock replaces time.Now for the random date-of-birth branch.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithAgeRange sets the inclusive age window, in years, for a random date
// of birth. Invalid windows (negative, or min > max) are ignored.
func WithAgeRange(minAge, maxAge int) Option {
	return func(g *Generator) {
		if minAge < 0 || minAge > maxAge {
			return
		}
		g.minAge, g.maxAge = minAge, maxAge
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(g *Generator) { g.log = l }
}

// NewGenerator creates a Generator seeded from the runtime's entropy unless
// a source or seed option is given.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:    time.Now,
		minAge: DefaultMinAge,
		maxAge: DefaultMaxAge,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate produces an identifier using the package-level Generator.
func Generate(p Params) (ID, error) {
	return defaultGenerator.Generate(p)
}

// Generate produces an identifier matching p. Unconstrained fields and the
// filler digits are drawn from the Generator's source.
func (g *Generator) Generate(p Params) (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sexDigit := g.sexDigit(p.Sex)

	var dob time.Time
	if p.DateOfBirth != nil {
		dob = Date(*p.DateOfBirth)
	} else {
		dob = g.randomDateOfBirth()
	}
	offset, err := OffsetFromDate(dob)
	if err != nil {
		return ID{}, err
	}

	var id ID
	copy(id[dobStart:dobEnd], fmt.Sprintf("%05d", offset))
	for i := fillerStart; i < sexPos; i++ {
		id[i] = byte('0' + g.src.IntN(10))
	}
	id[sexPos] = byte('0' + sexDigit)
	id[checkPos] = byte('0' + checksum(id))

	g.logger().Debugw("Generated identifier",
		logger.FieldSSN, id.Masked(),
		logger.FieldSex, sexFromDigit(sexDigit).String(),
		logger.FieldDOB, FormatDate(dob),
		"constrained_dob", p.DateOfBirth != nil,
		"constrained_sex", p.Sex != SexUnspecified)

	return id, nil
}

// SetAgeRange changes the age window used for random dates of birth.
func (g *Generator) SetAgeRange(minAge, maxAge int) error {
	if minAge < 0 || minAge > maxAge {
		return errors.Mark(
			errors.Newf("invalid age window %d..%d", minAge, maxAge),
			errors.ErrInvalidRequest)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.minAge, g.maxAge = minAge, maxAge
	return nil
}

// AgeRange returns the current age window.
func (g *Generator) AgeRange() (minAge, maxAge int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.minAge, g.maxAge
}

// sexDigit draws digit 8: odd for Male, even for Female, any otherwise.
func (g *Generator) sexDigit(s Sex) int {
	switch s {
	case Male:
		return 2*g.src.IntN(5) + 1
	case Female:
		return 2 * g.src.IntN(5)
	default:
		return g.src.IntN(10)
	}
}

// randomDateOfBirth picks today (in UTC) minus a whole number of 365-day
// years in the configured age window.
func (g *Generator) randomDateOfBirth() time.Time {
	years := g.minAge + g.src.IntN(g.maxAge-g.minAge+1)
	return Date(g.now().UTC()).AddDate(0, 0, -365*years)
}

func (g *Generator) logger() *zap.SugaredLogger {
	if g.log != nil {
		return g.log
	}
	return logger.ComponentLogger("rnokpp.generate")
}
