package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecEncode(t *testing.T) {
	c := NewCodec(5)

	tests := []struct {
		name    string
		raw     string
		want    string // canonical decoded form when valid
		wantErr bool
	}{
		{name: "lowercase ok", raw: "abide", want: "abide"},
		{name: "uppercase canonicalized", raw: "SPEED", want: "speed"},
		{name: "mixed case", raw: "CrAnE", want: "crane"},
		{name: "too short", raw: "abid", wantErr: true},
		{name: "too long", raw: "abides", wantErr: true},
		{name: "digit rejected", raw: "ab1de", wantErr: true},
		{name: "punctuation rejected", raw: "ab-de", wantErr: true},
		{name: "empty rejected", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := c.Encode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var iwe *InvalidWordError
				require.ErrorAs(t, err, &iwe)
				assert.Equal(t, tt.raw, iwe.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Decode(w))
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec(5)
	for _, raw := range []string{"abide", "speed", "zzzzz", "aaaaa", "qwert"} {
		w, err := c.Encode(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, c.Decode(w))
		assert.Equal(t, raw, w.String())
	}
}

func TestWordEqual(t *testing.T) {
	c := NewCodec(5)
	a, err := c.Encode("abide")
	require.NoError(t, err)
	b, err := c.Encode("ABIDE")
	require.NoError(t, err)
	d, err := c.Encode("speed")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(a[:4]))
}

func TestVocabularyValidation(t *testing.T) {
	t.Run("empty guess list", func(t *testing.T) {
		_, err := NewVocabulary(nil, []string{"abide"})
		assert.ErrorIs(t, err, ErrEmptyVocabulary)
	})
	t.Run("empty answer list", func(t *testing.T) {
		_, err := NewVocabulary([]string{"abide"}, nil)
		assert.ErrorIs(t, err, ErrEmptyVocabulary)
	})
	t.Run("length mismatch is fatal", func(t *testing.T) {
		_, err := NewVocabulary([]string{"abide", "cat"}, []string{"abide"})
		var iwe *InvalidWordError
		require.ErrorAs(t, err, &iwe)
		assert.Equal(t, "cat", iwe.Raw)
	})
	t.Run("answers merged into guesses", func(t *testing.T) {
		v, err := NewVocabulary([]string{"ropes"}, []string{"abide", "speed"})
		require.NoError(t, err)
		assert.Equal(t, 3, v.GuessCount())
		assert.Equal(t, 2, v.AnswerCount())
		assert.Equal(t, "ropes", v.GuessString(0))
		assert.Equal(t, "abide", v.GuessString(1))
		assert.Equal(t, "speed", v.GuessString(2))
	})
	t.Run("duplicates dropped keeping order", func(t *testing.T) {
		v, err := NewVocabulary(
			[]string{"abide", "ABIDE", "speed"},
			[]string{"speed", "speed"},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, v.GuessCount())
		assert.Equal(t, 1, v.AnswerCount())
		assert.Equal(t, []string{"speed"}, v.AnswerStrings())
	})
}
