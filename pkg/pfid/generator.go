package pfid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Fixed fields for reproducible documentation examples.
const (
	exampleTimestamp uint64 = 1234567890000
	examplePartition uint32 = 123456789
)

// GeneratorConfig holds the two external collaborators of a Generator.
// Zero values select the real clock and crypto/rand.
type GeneratorConfig struct {
	Now     func() int64 // current Unix millisecond timestamp
	Entropy io.Reader    // source of random bytes
}

// Generator composes the codec with a clock and an entropy source. It holds
// no mutable state and is safe for concurrent use; ids produced in the same
// millisecond collide only with the probability inherent to 80 independent
// random bits.
type Generator struct {
	now     func() int64
	entropy io.Reader
}

// NewGenerator creates a Generator from config, filling in defaults for
// unset collaborators.
func NewGenerator(config GeneratorConfig) *Generator {
	g := &Generator{now: config.Now, entropy: config.Entropy}
	if g.now == nil {
		g.now = func() int64 { return time.Now().UnixMilli() }
	}
	if g.entropy == nil {
		g.entropy = rand.Reader
	}
	return g
}

// New generates an id for the given partition at the current time.
func (g *Generator) New(partition uint32) (ID, error) {
	ms := g.now()
	if ms < 0 {
		return ID{}, fmt.Errorf("clock returned %d: %w", ms, ErrInvalidTimestamp)
	}
	randomness, err := g.randomBytes(RandomSize)
	if err != nil {
		return ID{}, err
	}
	return Pack(uint64(ms), partition, randomness)
}

// NewRoot generates an id with a freshly drawn random partition.
func (g *Generator) NewRoot() (ID, error) {
	partition, err := g.RandomPartition()
	if err != nil {
		return ID{}, err
	}
	return g.New(partition)
}

// NewRelated generates an id in the same partition as an existing text id.
func (g *Generator) NewRelated(text string) (ID, error) {
	partition, err := ExtractPartition(text)
	if err != nil {
		return ID{}, err
	}
	return g.New(partition)
}

// NewExample generates an id with a fixed timestamp and partition so that
// documentation examples stay reproducible. Randomness is still drawn from
// the entropy source.
func (g *Generator) NewExample() (ID, error) {
	randomness, err := g.randomBytes(RandomSize)
	if err != nil {
		return ID{}, err
	}
	return Pack(exampleTimestamp, examplePartition, randomness)
}

// RandomPartition draws a partition key uniformly from [0, 2^30): four
// entropy bytes interpreted big-endian with the top 2 bits cleared.
func (g *Generator) RandomPartition() (uint32, error) {
	b, err := g.randomBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b) & MaxPartition, nil
}

func (g *Generator) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(g.entropy, b); err != nil {
		return nil, fmt.Errorf("reading entropy: %w", err)
	}
	return b, nil
}

var defaultGenerator = NewGenerator(GeneratorConfig{})

// New generates an id for the given partition using the default generator.
func New(partition uint32) (ID, error) {
	return defaultGenerator.New(partition)
}

// NewRoot generates an id with a random partition using the default
// generator.
func NewRoot() (ID, error) {
	return defaultGenerator.NewRoot()
}

// NewRelated generates an id in the partition of an existing text id using
// the default generator.
func NewRelated(text string) (ID, error) {
	return defaultGenerator.NewRelated(text)
}

// RandomPartition draws a uniform partition key using the default
// generator.
func RandomPartition() (uint32, error) {
	return defaultGenerator.RandomPartition()
}
