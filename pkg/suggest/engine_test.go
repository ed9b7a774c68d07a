package suggest

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"moodmate-be/pkg/mood"
	"moodmate-be/pkg/music"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	result *music.Result
	err    error
}

func (s *stubProvider) Search(ctx context.Context, keyword string) (*music.Result, error) {
	return s.result, s.err
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestMusicBundleNormalizesTrackList(t *testing.T) {
	provider := &stubProvider{result: &music.Result{
		Tracks: []music.Track{{Name: "A", Artist: "X", URL: "u1"}},
	}}
	e := NewEngine(provider, seeded())

	b := e.MusicBundle(context.Background(), mood.Happy)
	assert.Contains(t, b.Songs, "u1")
}

func TestMusicBundleFallsBackOnError(t *testing.T) {
	provider := &stubProvider{err: errors.New("quota exceeded")}
	e := NewEngine(provider, seeded())

	b := e.MusicBundle(context.Background(), mood.Sad)
	assert.Equal(t, FallbackBundle(mood.Sad), b)
}

func TestMusicBundleFallsBackOnEmptyResult(t *testing.T) {
	provider := &stubProvider{result: &music.Result{}}
	e := NewEngine(provider, seeded())

	b := e.MusicBundle(context.Background(), mood.Tired)
	assert.Equal(t, FallbackBundle(mood.Tired), b)
}

func TestMusicBundleWithoutProvider(t *testing.T) {
	e := NewEngine(nil, seeded())
	b := e.MusicBundle(context.Background(), mood.Stressed)
	assert.Equal(t, FallbackBundle(mood.Stressed), b)
}

func TestSuggestionsMembership(t *testing.T) {
	// Picks are intentionally random per call: assert membership, not value.
	e := NewEngine(&stubProvider{err: errors.New("down")}, seeded())

	for _, m := range mood.All() {
		s := e.Suggestions(context.Background(), m)
		assert.Equal(t, m, s.Mood)
		assert.NotEmpty(t, s.Quote)
		assert.Contains(t, FoodOptions(m), s.Food)
		assert.Contains(t, ExerciseOptions(m), s.Exercise)
		assert.Contains(t, Tips(), s.Tip)
		assert.Equal(t, FallbackBundle(m), s.Music)
	}
}

func TestChooseOne(t *testing.T) {
	e := NewEngine(nil, seeded())
	assert.Equal(t, "", e.ChooseOne(nil))
	assert.Equal(t, "only", e.ChooseOne([]string{"only"}))

	opts := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		assert.Contains(t, opts, e.ChooseOne(opts))
	}
}

func TestRandomMoodIsValid(t *testing.T) {
	e := NewEngine(nil, seeded())
	for i := 0; i < 20; i++ {
		assert.True(t, e.RandomMood().Valid())
	}
}

func TestFallbackTableCoversAllMoods(t *testing.T) {
	for _, m := range mood.All() {
		require.False(t, FallbackBundle(m).Empty(), "mood %s", m)
	}
}
