package session

import (
	"time"

	"moodmate-be/pkg/mood"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	WelcomeMessage = "Hi! 👋 I'm MoodMate — how are you feeling today?"
)

// ChatMessage is one turn of the session transcript.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// MoodLogEntry is one point of the mood timeline.
type MoodLogEntry struct {
	Mood      mood.Mood `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
}

// JournalEntry is a journal record buffered in the session. Title and Mood are
// optional; Body is the free text the sentiment scorer runs over.
type JournalEntry struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Mood      mood.Mood `json:"mood,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// State is the per-session aggregate root. It is owned by exactly one
// user-facing session and is never shared, so mutations need no locking;
// each request against a session is handled to completion before the next.
type State struct {
	ID            string         `json:"id"`
	Authenticated bool           `json:"authenticated"`
	UserID        uint           `json:"user_id"`
	Username      string         `json:"username"`
	DisplayName   string         `json:"display_name"`
	Messages      []ChatMessage  `json:"messages"`
	MoodLog       []MoodLogEntry `json:"mood_log"`
	Journals      []JournalEntry `json:"journals"`
	ProfileImage  []byte         `json:"-"`
}

// New returns the deterministic default state: guest, one assistant welcome
// message, empty logs.
func New(id string) *State {
	return &State{
		ID:          id,
		DisplayName: "Guest",
		Messages: []ChatMessage{
			{Role: RoleAssistant, Content: WelcomeMessage, Timestamp: time.Now()},
		},
	}
}

// RecordMood appends a mood log entry. Repeats of the current mood are
// debounced: the entry is dropped unless force is set. Classifier-produced
// entries pass force=true and always append.
func (s *State) RecordMood(m mood.Mood, force bool) (bool, error) {
	if !m.Valid() {
		return false, mood.ErrInvalidMoodLabel
	}
	if !force && len(s.MoodLog) > 0 && s.MoodLog[len(s.MoodLog)-1].Mood == m {
		return false, nil
	}
	s.MoodLog = append(s.MoodLog, MoodLogEntry{Mood: m, Timestamp: time.Now()})
	return true, nil
}

// CurrentMood returns the most recent mood, or Happy when nothing was logged.
func (s *State) CurrentMood() mood.Mood {
	if len(s.MoodLog) == 0 {
		return mood.Happy
	}
	return s.MoodLog[len(s.MoodLog)-1].Mood
}

// RecentMoods returns the labels of up to the last n entries, chronological.
func (s *State) RecentMoods(n int) []mood.Mood {
	start := len(s.MoodLog) - n
	if start < 0 {
		start = 0
	}
	out := make([]mood.Mood, 0, len(s.MoodLog)-start)
	for _, e := range s.MoodLog[start:] {
		out = append(out, e.Mood)
	}
	return out
}

func (s *State) AppendJournal(entry JournalEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	s.Journals = append(s.Journals, entry)
}

// LastJournalExcerpt returns the first ~120 characters of the latest journal
// entry's body (or title when the body is empty). Empty when no entry exists.
func (s *State) LastJournalExcerpt() string {
	if len(s.Journals) == 0 {
		return ""
	}
	last := s.Journals[len(s.Journals)-1]
	txt := last.Body
	if txt == "" {
		txt = last.Title
	}
	runes := []rune(txt)
	if len(runes) > 120 {
		return string(runes[:120])
	}
	return txt
}

func (s *State) AppendChatMessage(role, content string) ChatMessage {
	msg := ChatMessage{Role: role, Content: content, Timestamp: time.Now()}
	s.Messages = append(s.Messages, msg)
	return msg
}

// RecentMessages returns up to the last n transcript messages, chronological.
// Used for the bounded lookback handed to the remote model.
func (s *State) RecentMessages(n int) []ChatMessage {
	start := len(s.Messages) - n
	if start < 0 {
		start = 0
	}
	return s.Messages[start:]
}

// Authenticate binds a logged-in user to this session. The display name only
// changes if the user never picked one.
func (s *State) Authenticate(userID uint, username string) {
	s.Authenticated = true
	s.UserID = userID
	s.Username = username
	if s.DisplayName == "" || s.DisplayName == "Guest" {
		s.DisplayName = username
	}
}

// Logout resets identity but keeps the transcript and logs: the session
// continues as a guest session.
func (s *State) Logout() {
	s.Authenticated = false
	s.UserID = 0
	s.Username = ""
	s.ProfileImage = nil
}
