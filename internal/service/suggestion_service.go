package service

import (
	"context"

	"moodmate-be/internal/repository/memory"
	"moodmate-be/pkg/mood"
	"moodmate-be/pkg/suggest"
)

type ISuggestionService interface {
	Get(ctx context.Context, sessionID, moodLabel string) (*suggest.Suggestion, error)
}

type suggestionService struct {
	sessions *memory.SessionRepository
	engine   *suggest.Engine
}

func NewSuggestionService(sessions *memory.SessionRepository, engine *suggest.Engine) ISuggestionService {
	return &suggestionService{
		sessions: sessions,
		engine:   engine,
	}
}

func (s *suggestionService) Get(ctx context.Context, sessionID, moodLabel string) (*suggest.Suggestion, error) {
	var m mood.Mood
	if moodLabel != "" {
		var err error
		if m, err = mood.Parse(moodLabel); err != nil {
			return nil, err
		}
	} else {
		state, found := s.sessions.Get(sessionID)
		if !found {
			return nil, ErrSessionNotFound
		}
		m = state.CurrentMood()
	}

	bundle := s.engine.Suggestions(ctx, m)
	return &bundle, nil
}
