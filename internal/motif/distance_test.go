package motif

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomDNA(rng *rand.Rand, n int) string {
	const alphabet = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func TestHamming_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(12)
		a, b, c := randomDNA(rng, n), randomDNA(rng, n), randomDNA(rng, n)

		require.Equal(t, Hamming(a, b), Hamming(b, a), "symmetry")
		require.Equal(t, 0, Hamming(a, a))
		require.Equal(t, a == b, Hamming(a, b) == 0, "zero iff equal")
		require.LessOrEqual(t, Hamming(a, c), Hamming(a, b)+Hamming(b, c), "triangle")
	}
}

func TestHamming_Examples(t *testing.T) {
	assert.Equal(t, 3, Hamming("GAGCCT", "CATCGT"))
	assert.Equal(t, 1, Hamming("ACGT", "ACG"))
	assert.Equal(t, 0, Hamming("", ""))
}

func TestMaxAndSumDistance(t *testing.T) {
	mers := []string{"ACGT", "ACGA", "TCGA"}
	assert.Equal(t, 2, MaxDistance("ACGT", mers))
	assert.Equal(t, 0, MaxDistance("ACGT", nil))

	// 0 + 1 + 2
	assert.Equal(t, 3, SumDistance(mers))
	assert.Equal(t, 0, SumDistance(nil))
}
