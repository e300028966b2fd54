package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagDealsEveryKindPerBag(t *testing.T) {
	r := NewBagRandomizer(42)
	for bag := range 5 {
		seen := make(map[Kind]bool)
		for range NumKinds {
			seen[r.NextKind()] = true
		}
		assert.Len(t, seen, NumKinds, "bag %d", bag)
	}
}

func TestRandomizersAreSeeded(t *testing.T) {
	for _, name := range []string{"uniform", "bag"} {
		a, err := NewRandomizer(name, 7)
		require.NoError(t, err)
		b, err := NewRandomizer(name, 7)
		require.NoError(t, err)

		for i := range 50 {
			ka, kb := a.NextKind(), b.NextKind()
			require.Equal(t, ka, kb, "%s draw %d", name, i)
			require.True(t, ka.Valid())
		}
	}
}

func TestNewRandomizerUnknown(t *testing.T) {
	_, err := NewRandomizer("shuffle", 1)
	assert.Error(t, err)
}
