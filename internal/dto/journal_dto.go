package dto

import "time"

type CreateJournalRequest struct {
	Title   string `json:"title"`
	Body    string `json:"body" validate:"required"`
	Mood    string `json:"mood"`
	Persist bool   `json:"persist"`
}

type CreateJournalResponse struct {
	Persisted bool   `json:"persisted"`
	Warning   string `json:"warning,omitempty"`
}

type JournalItemResponse struct {
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	Mood      string    `json:"mood,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type SentimentResponse struct {
	Average float64 `json:"average"`
	Label   string  `json:"label"`
}
