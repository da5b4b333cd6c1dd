package pwgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

func TestPhonemes(t *testing.T) {
	t.Parallel()

	table := pwgen.Phonemes()
	require.Len(t, table, 40)

	t.Run("fragments are distinct lowercase", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]bool, len(table))
		for _, p := range table {
			assert.False(t, seen[p.Fragment], "duplicate fragment %q", p.Fragment)
			seen[p.Fragment] = true
			assert.Equal(t, strings.ToLower(p.Fragment), p.Fragment)
			assert.NotEmpty(t, p.Fragment)
			assert.LessOrEqual(t, len(p.Fragment), 2)
		}
	})

	t.Run("consonant and vowel are exclusive", func(t *testing.T) {
		t.Parallel()
		for _, p := range table {
			isConsonant := p.Category.Has(pwgen.Consonant)
			isVowel := p.Category.Has(pwgen.Vowel)
			assert.True(t, isConsonant != isVowel, "fragment %q has category %s", p.Fragment, p.Category)
		}
	})

	t.Run("two letter fragments are diphthongs", func(t *testing.T) {
		t.Parallel()
		for _, p := range table {
			assert.Equal(t, len(p.Fragment) == 2, p.Category.Has(pwgen.Diphthong), "fragment %q", p.Fragment)
		}
	})

	t.Run("only gh and ng are not first", func(t *testing.T) {
		t.Parallel()
		var notFirst []string
		for _, p := range table {
			if p.Category.Has(pwgen.NotFirst) {
				notFirst = append(notFirst, p.Fragment)
			}
		}
		assert.ElementsMatch(t, []string{"gh", "ng"}, notFirst)
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		mutated := pwgen.Phonemes()
		mutated[0].Fragment = "zz"
		assert.Equal(t, "a", pwgen.Phonemes()[0].Fragment)
	})
}

func TestCategory(t *testing.T) {
	t.Parallel()

	c := pwgen.Vowel | pwgen.Diphthong
	assert.True(t, c.Has(pwgen.Vowel))
	assert.True(t, c.Has(pwgen.Vowel|pwgen.Consonant))
	assert.False(t, c.Has(pwgen.Consonant))
	assert.False(t, pwgen.Category(0).Has(pwgen.Vowel))

	assert.Equal(t, "vowel|diphthong", c.String())
	assert.Equal(t, "consonant|diphthong|not_first", (pwgen.Consonant | pwgen.Diphthong | pwgen.NotFirst).String())
	assert.Equal(t, "none", pwgen.Category(0).String())
}
