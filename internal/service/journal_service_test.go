package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"moodmate-be/internal/dto"
	"moodmate-be/pkg/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJournalService(authenticated bool) (IJournalService, *fakeJournalRepository, string) {
	factory, journals, _ := newFakeFactory()
	sessions, state := newTestSession(authenticated)
	svc := NewJournalService(factory, sessions, sentiment.Lexicon{}, nopLogger{})
	return svc, journals, state.ID
}

func TestAppendGuestWithPersistWarnsAndKeepsLocal(t *testing.T) {
	svc, journals, sessionID := newJournalService(false)

	res, err := svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{
		Body:    "today was fine",
		Persist: true,
	})
	require.NoError(t, err)
	assert.False(t, res.Persisted)
	assert.NotEmpty(t, res.Warning)
	assert.Empty(t, journals.rows)

	recent, err := svc.Recent(sessionID)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "today was fine", recent[0].Body)
}

func TestAppendPersistsForAuthedUser(t *testing.T) {
	svc, journals, sessionID := newJournalService(true)

	res, err := svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{
		Title:   "Morning",
		Body:    "slept well, feeling calm",
		Mood:    "Happy",
		Persist: true,
	})
	require.NoError(t, err)
	assert.True(t, res.Persisted)
	assert.Empty(t, res.Warning)

	require.Len(t, journals.rows, 1)
	row := journals.rows[0]
	assert.Equal(t, "slept well, feeling calm", row.Entry)
	assert.Equal(t, "Happy", row.Emotion)
	require.NotNil(t, row.Title)
	assert.Equal(t, "Morning", *row.Title)
}

func TestAppendPersistFailureFallsBackToSession(t *testing.T) {
	svc, journals, sessionID := newJournalService(true)
	journals.failCreate = errors.New("connection refused")

	res, err := svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{
		Body:    "entry that should survive",
		Persist: true,
	})
	require.NoError(t, err)
	assert.False(t, res.Persisted)
	assert.Contains(t, res.Warning, "Saved locally instead")

	recent, err := svc.Recent(sessionID)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestAppendRejectsUnknownMood(t *testing.T) {
	svc, _, sessionID := newJournalService(false)

	_, err := svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{
		Body: "text",
		Mood: "Confused",
	})
	assert.Error(t, err)
}

func TestRecentCapsAtSixNewestFirst(t *testing.T) {
	svc, _, sessionID := newJournalService(false)

	for i := 1; i <= 8; i++ {
		_, err := svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{
			Body: fmt.Sprintf("entry %d", i),
		})
		require.NoError(t, err)
	}

	recent, err := svc.Recent(sessionID)
	require.NoError(t, err)
	require.Len(t, recent, 6)
	assert.Equal(t, "entry 8", recent[0].Body)
	assert.Equal(t, "entry 3", recent[5].Body)
}

func TestHistoryRequiresLogin(t *testing.T) {
	svc, _, sessionID := newJournalService(false)

	_, err := svc.History(context.Background(), sessionID, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestHistoryFiltersByEmotion(t *testing.T) {
	svc, _, sessionID := newJournalService(true)

	for _, entry := range []struct{ body, mood string }{
		{"park walk", "Happy"},
		{"deadline pressure", "Stressed"},
		{"sunny afternoon", "Happy"},
	} {
		_, err := svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{
			Body:    entry.body,
			Mood:    entry.mood,
			Persist: true,
		})
		require.NoError(t, err)
	}

	all, err := svc.History(context.Background(), sessionID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	happy, err := svc.History(context.Background(), sessionID, "Happy")
	require.NoError(t, err)
	require.Len(t, happy, 2)
	for _, item := range happy {
		assert.Equal(t, "Happy", item.Mood)
	}

	_, err = svc.History(context.Background(), sessionID, "Cheerful")
	assert.Error(t, err)
}

func TestSentimentOverSessionJournals(t *testing.T) {
	svc, _, sessionID := newJournalService(false)

	_, err := svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{Body: "I am happy and grateful"})
	require.NoError(t, err)
	_, err = svc.Append(context.Background(), sessionID, &dto.CreateJournalRequest{Body: "the weather exists"})
	require.NoError(t, err)

	res, err := svc.Sentiment(sessionID)
	require.NoError(t, err)
	assert.Greater(t, res.Average, 0.1)
	assert.Equal(t, "Positive", res.Label)
}

func TestSentimentEmptyJournalIsNeutral(t *testing.T) {
	svc, _, sessionID := newJournalService(false)

	res, err := svc.Sentiment(sessionID)
	require.NoError(t, err)
	assert.Zero(t, res.Average)
	assert.Equal(t, "Neutral", res.Label)
}
