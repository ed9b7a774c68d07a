package dto

type CreateSessionResponse struct {
	Id string `json:"id"`
}

type SessionSnapshotResponse struct {
	Id            string `json:"id"`
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	DisplayName   string `json:"display_name"`
	CurrentMood   string `json:"current_mood"`
	MoodCount     int    `json:"mood_count"`
	JournalCount  int    `json:"journal_count"`
	MessageCount  int    `json:"message_count"`
}

type UpdateDisplayNameRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
}
