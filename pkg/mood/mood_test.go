package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	m, err := Parse("Happy")
	assert.NoError(t, err)
	assert.Equal(t, Happy, m)

	_, err = Parse("Melancholic")
	assert.ErrorIs(t, err, ErrInvalidMoodLabel)

	// Labels are case sensitive, same as the enum values themselves
	_, err = Parse("happy")
	assert.ErrorIs(t, err, ErrInvalidMoodLabel)
}

func TestIndexOrdering(t *testing.T) {
	for i, m := range All() {
		assert.Equal(t, i, m.Index())
	}
	assert.Equal(t, -1, Mood("Unknown").Index())
}

func TestAccent(t *testing.T) {
	assert.Equal(t, "#f9ca24", Happy.Accent())
	assert.Equal(t, "#ff6b6b", Stressed.Accent())
	// Unknown moods fall back to the default pink accent
	assert.Equal(t, "#ff99cc", Mood("Unknown").Accent())
}
