package lettermask

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestRandomLetters(t *testing.T) {
	rng := testRNG()
	s := randomLetters(rng, 4)
	assert.Len(t, s, 4)
	for _, r := range s {
		assert.GreaterOrEqual(t, r, 'A')
		assert.LessOrEqual(t, r, 'Z')
	}
}

func TestMutate(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 100; i++ {
		orig := randomLetters(rng, 3)
		got := mutate(rng, orig)
		require.Len(t, got, len(orig))

		diff := 0
		for j := range orig {
			if orig[j] != got[j] {
				diff++
			}
		}
		assert.Equal(t, 1, diff, "mutate(%q) = %q", orig, got)
	}
}

func TestSimilarLettersCoverAlphabet(t *testing.T) {
	for _, letter := range []byte(uppercase) {
		repls, ok := similarLetters[letter]
		require.True(t, ok, "no entry for %c", letter)
		assert.NotEmpty(t, repls)
		assert.NotContains(t, repls, letter)
	}
}

func TestOptions(t *testing.T) {
	g := New(testRNG(), nil)
	for i := 0; i < 50; i++ {
		question := randomLetters(g.rng, 3)
		opts, correct := g.options(question, 4)

		require.Len(t, opts, 4)
		assert.Equal(t, question, opts[correct])
		assert.True(t, unique(opts))
		for j, opt := range opts {
			if j == correct {
				continue
			}
			assert.NotEqual(t, question, opt)
			assert.Len(t, opt, len(question))
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		letters    int
		options    int
		width      int
	}{
		{Easy, 2, 3, 900},
		{Medium, 3, 4, 1400},
		{Hard, 4, 4, 1900},
	}
	for _, tt := range tests {
		tier, err := TierFor(tt.difficulty)
		require.NoError(t, err)
		assert.Equal(t, tt.letters, tier.Letters)
		assert.Equal(t, tt.options, tier.Options)
		assert.Equal(t, tt.width, tier.Width)
	}

	_, err := TierFor("extreme")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	g := New(testRNG(), nil)
	res, err := g.Generate(Medium, t.TempDir())
	require.NoError(t, err)

	assert.Len(t, res.Question, 3)
	assert.GreaterOrEqual(t, res.Answer, 1)
	assert.LessOrEqual(t, res.Answer, 4)
	assert.Equal(t,
		fmt.Sprintf("%s_%d.png", res.Question, res.Answer),
		filepath.Base(res.Path))
	assert.FileExists(t, res.Path)
}

func TestGenerateAll(t *testing.T) {
	g := New(testRNG(), nil)
	dir := t.TempDir()
	results, err := g.GenerateAll(2, dir)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for _, res := range results {
		// Each puzzle lands in its difficulty's subdirectory.
		assert.Equal(t, string(res.Difficulty), filepath.Base(filepath.Dir(res.Path)))
		assert.FileExists(t, res.Path)
	}
}
