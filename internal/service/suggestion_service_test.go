package service

import (
	"context"
	"math/rand"
	"testing"

	"moodmate-be/pkg/mood"
	"moodmate-be/pkg/suggest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestionService(authenticated bool) (ISuggestionService, string) {
	sessions, state := newTestSession(authenticated)
	engine := suggest.NewEngine(nil, rand.New(rand.NewSource(3)))
	return NewSuggestionService(sessions, engine), state.ID
}

func TestSuggestionsForExplicitMood(t *testing.T) {
	svc, sessionID := newSuggestionService(false)

	res, err := svc.Get(context.Background(), sessionID, "Anxious")
	require.NoError(t, err)
	assert.Equal(t, mood.Anxious, res.Mood)
	assert.NotEmpty(t, res.Quote)
	assert.NotEmpty(t, res.Food)
	assert.NotEmpty(t, res.Exercise)
	assert.NotEmpty(t, res.Tip)
	// No provider configured: the built-in fallback bundle serves music.
	assert.False(t, res.Music.Empty())
}

func TestSuggestionsDefaultToCurrentMood(t *testing.T) {
	svc, sessionID := newSuggestionService(false)

	// Nothing logged yet, current mood defaults to Happy.
	res, err := svc.Get(context.Background(), sessionID, "")
	require.NoError(t, err)
	assert.Equal(t, mood.Happy, res.Mood)
}

func TestSuggestionsRejectUnknownMood(t *testing.T) {
	svc, sessionID := newSuggestionService(false)

	_, err := svc.Get(context.Background(), sessionID, "Bored")
	assert.Error(t, err)
}

func TestSuggestionsUnknownSessionWithoutMood(t *testing.T) {
	svc, _ := newSuggestionService(false)

	_, err := svc.Get(context.Background(), "missing", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
