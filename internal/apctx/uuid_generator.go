package apctx

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

const (
	uuidGeneratorKey = "uuidGenerator"
)

// UuidGenerator is an interface to an object that will provide random UUIDs. The default implementation delegates
// to the google uuid package. This allows deterministic ids in tests by swapping the generator on the context.
type UuidGenerator interface {
	// New creates a new random UUID or panics.
	New() uuid.UUID

	// NewString creates a new random UUID and returns it as a string or panics.
	NewString() string
}

type realUuidGenerator struct{}

func (g *realUuidGenerator) New() uuid.UUID {
	return uuid.New()
}

func (g *realUuidGenerator) NewString() string {
	return uuid.NewString()
}

var realUuidGeneratorVal UuidGenerator = &realUuidGenerator{}

// GetUuidGenerator retrieves a UUID generator from the context if one has been set. If not, it returns the real UUID
// generator.
func GetUuidGenerator(ctx context.Context) UuidGenerator {
	val := ctx.Value(uuidGeneratorKey)
	if val == nil {
		return realUuidGeneratorVal
	}

	return val.(UuidGenerator)
}

func WithUuidGenerator(ctx context.Context, generator UuidGenerator) context.Context {
	return context.WithValue(ctx, uuidGeneratorKey, generator)
}

type fixedUuidGenerator struct {
	u uuid.UUID
}

func (g *fixedUuidGenerator) New() uuid.UUID {
	return g.u
}

func (g *fixedUuidGenerator) NewString() string {
	return g.u.String()
}

// WithFixedUuidGenerator sets a generator on the context that always returns the same UUID.
func WithFixedUuidGenerator(ctx context.Context, u uuid.UUID) context.Context {
	return WithUuidGenerator(ctx, &fixedUuidGenerator{u: u})
}

type sequenceUuidGenerator struct {
	mu  sync.Mutex
	ids []uuid.UUID
	i   int
}

func (g *sequenceUuidGenerator) New() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.i >= len(g.ids) {
		panic("uuid sequence exhausted")
	}

	u := g.ids[g.i]
	g.i++
	return u
}

func (g *sequenceUuidGenerator) NewString() string {
	return g.New().String()
}

// NewSequenceUuidGenerator returns a generator that hands out the given ids in order and panics once they are
// used up.
func NewSequenceUuidGenerator(ids ...uuid.UUID) UuidGenerator {
	return &sequenceUuidGenerator{ids: ids}
}
