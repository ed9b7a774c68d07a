package session

import (
	"strings"
	"testing"

	"moodmate-be/pkg/mood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := New("abc")

	assert.Equal(t, "abc", s.ID)
	assert.False(t, s.Authenticated)
	assert.Equal(t, "Guest", s.DisplayName)
	assert.Empty(t, s.MoodLog)
	assert.Empty(t, s.Journals)

	require.Len(t, s.Messages, 1)
	assert.Equal(t, RoleAssistant, s.Messages[0].Role)
	assert.Equal(t, WelcomeMessage, s.Messages[0].Content)
}

func TestRecordMoodDebounce(t *testing.T) {
	s := New("s1")

	appended, err := s.RecordMood(mood.Happy, false)
	require.NoError(t, err)
	assert.True(t, appended)

	// Same mood twice in a row yields one entry, not two
	appended, err = s.RecordMood(mood.Happy, false)
	require.NoError(t, err)
	assert.False(t, appended)
	assert.Len(t, s.MoodLog, 1)

	// A different label always yields a new entry
	appended, err = s.RecordMood(mood.Sad, false)
	require.NoError(t, err)
	assert.True(t, appended)
	assert.Len(t, s.MoodLog, 2)
}

func TestRecordMoodForceBypassesDebounce(t *testing.T) {
	s := New("s1")

	_, err := s.RecordMood(mood.Tired, false)
	require.NoError(t, err)

	// Classifier entries always append even when the label repeats
	appended, err := s.RecordMood(mood.Tired, true)
	require.NoError(t, err)
	assert.True(t, appended)
	assert.Len(t, s.MoodLog, 2)
}

func TestRecordMoodInvalidLabel(t *testing.T) {
	s := New("s1")
	_, err := s.RecordMood(mood.Mood("Confused"), false)
	assert.ErrorIs(t, err, mood.ErrInvalidMoodLabel)
	assert.Empty(t, s.MoodLog)
}

func TestTimeline(t *testing.T) {
	s := New("s1")
	for _, m := range []mood.Mood{mood.Happy, mood.Stressed, mood.Sad} {
		_, err := s.RecordMood(m, false)
		require.NoError(t, err)
	}

	points := s.Timeline()
	require.Len(t, points, 3)

	assert.Equal(t, 0, points[0].MoodIndex)
	assert.Equal(t, "#f9ca24", points[0].Color)
	assert.Equal(t, 5, points[1].MoodIndex)
	assert.Equal(t, 1, points[2].MoodIndex)

	// Chronological as inserted
	assert.False(t, points[1].Timestamp.Before(points[0].Timestamp))
	assert.False(t, points[2].Timestamp.Before(points[1].Timestamp))
}

func TestRecentMoods(t *testing.T) {
	s := New("s1")
	seq := []mood.Mood{mood.Happy, mood.Sad, mood.Anxious, mood.Tired, mood.Excited, mood.Stressed, mood.Happy}
	for _, m := range seq {
		_, err := s.RecordMood(m, false)
		require.NoError(t, err)
	}

	recent := s.RecentMoods(6)
	require.Len(t, recent, 6)
	assert.Equal(t, mood.Sad, recent[0])
	assert.Equal(t, mood.Happy, recent[5])
}

func TestLastJournalExcerpt(t *testing.T) {
	s := New("s1")
	assert.Empty(t, s.LastJournalExcerpt())

	s.AppendJournal(JournalEntry{Title: "Day one", Body: "It went fine."})
	assert.Equal(t, "It went fine.", s.LastJournalExcerpt())

	long := strings.Repeat("x", 300)
	s.AppendJournal(JournalEntry{Body: long})
	assert.Len(t, []rune(s.LastJournalExcerpt()), 120)

	// Falls back to the title when the body is empty
	s.AppendJournal(JournalEntry{Title: "Only a title"})
	assert.Equal(t, "Only a title", s.LastJournalExcerpt())
}

func TestAuthenticateAndLogout(t *testing.T) {
	s := New("s1")
	s.AppendChatMessage(RoleUser, "hello")

	s.Authenticate(42, "mira")
	assert.True(t, s.Authenticated)
	assert.Equal(t, uint(42), s.UserID)
	assert.Equal(t, "mira", s.DisplayName)

	// An explicit display name survives login
	s2 := New("s2")
	s2.DisplayName = "Sunshine"
	s2.Authenticate(7, "mira")
	assert.Equal(t, "Sunshine", s2.DisplayName)

	s.Logout()
	assert.False(t, s.Authenticated)
	assert.Zero(t, s.UserID)
	// Transcript survives logout
	assert.Len(t, s.Messages, 2)
}

func TestRecentMessagesLookback(t *testing.T) {
	s := New("s1")
	for i := 0; i < 12; i++ {
		s.AppendChatMessage(RoleUser, "msg")
	}
	assert.Len(t, s.RecentMessages(8), 8)
	assert.Len(t, New("s2").RecentMessages(8), 1)
}
