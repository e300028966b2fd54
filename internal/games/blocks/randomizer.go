package blocks

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
)

// Randomizer chooses the kind of each new piece.
type Randomizer interface {
	NextKind() Kind
}

// UniformRandomizer draws every kind independently with equal probability.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a seeded uniform randomizer.
func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// NextKind returns the next kind.
func (r *UniformRandomizer) NextKind() Kind {
	return Kind(r.rng.Intn(NumKinds))
}

// BagRandomizer deals shuffled bags holding one of each kind, so every
// run of seven consecutive bag-aligned draws contains each kind once.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagRandomizer creates a seeded bag randomizer.
func NewBagRandomizer(seed int64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// NextKind returns the next kind, refilling the bag when empty.
func (r *BagRandomizer) NextKind() Kind {
	if len(r.bag) == 0 {
		r.bag = Kinds()
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	k := r.bag[0]
	r.bag = r.bag[1:]
	return k
}

// NewRandomizer builds the randomizer named in configuration.
func NewRandomizer(name string, seed int64) (Randomizer, error) {
	switch name {
	case config.RandomizerUniform, "":
		return NewUniformRandomizer(seed), nil
	case config.RandomizerBag:
		return NewBagRandomizer(seed), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", name)
	}
}
