package example

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDictionary(t *testing.T) {
	t.Parallel()

	dict := NewBuiltinDictionary()

	t.Run("every word has exactly five bilingual examples", func(t *testing.T) {
		assert.NotZero(t, dict.Size())
		for word, sentences := range builtinExamples {
			assert.Len(t, sentences, 5, "word %q", word)
			assert.Equal(t, strings.ToLower(word), word, "keys must be lower case")
			for _, s := range sentences {
				assert.NotEmpty(t, s.English, "word %q", word)
				assert.NotEmpty(t, s.Chinese, "word %q", word)
			}
		}
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		lower := dict.Lookup("ability")
		require.Len(t, lower, 5)
		assert.Equal(t, lower, dict.Lookup("ABILITY"))
		assert.Equal(t, lower, dict.Lookup("Ability!"))
	})

	t.Run("lookup canonicalizes free form input", func(t *testing.T) {
		assert.Equal(t, dict.Lookup("act"), dict.Lookup("act (verb)"))
	})

	t.Run("miss returns empty", func(t *testing.T) {
		assert.Empty(t, dict.Lookup("zzgloss"))
		assert.False(t, dict.Contains("zzgloss"))
	})

	t.Run("contains agrees with lookup", func(t *testing.T) {
		assert.True(t, dict.Contains("abandon"))
		assert.True(t, dict.Contains("Abandon"))
	})
}
