package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	// Registered for upload validation: png and jpeg uploads are accepted.
	_ "image/jpeg"
	_ "image/png"

	"moodmate-be/internal/dto"
	"moodmate-be/internal/entity"
	"moodmate-be/internal/pkg/logger"
	"moodmate-be/internal/repository/memory"
	"moodmate-be/internal/repository/unitofwork"
	"moodmate-be/pkg/classifier"
	"moodmate-be/pkg/mood"
	"moodmate-be/pkg/session"
	"moodmate-be/pkg/suggest"
)

type IMoodService interface {
	Record(ctx context.Context, sessionID string, req *dto.RecordMoodRequest) (*dto.RecordMoodResponse, error)
	DetectFromImage(ctx context.Context, sessionID string, img []byte, persist bool) (*dto.DetectMoodResponse, error)
	Timeline(sessionID string) ([]session.TimelinePoint, error)
}

type moodService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	detector   classifier.Provider
	engine     *suggest.Engine
	log        logger.ILogger
}

func NewMoodService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	detector classifier.Provider,
	engine *suggest.Engine,
	log logger.ILogger,
) IMoodService {
	return &moodService{
		uowFactory: uowFactory,
		sessions:   sessions,
		detector:   detector,
		engine:     engine,
		log:        log,
	}
}

func (s *moodService) Record(ctx context.Context, sessionID string, req *dto.RecordMoodRequest) (*dto.RecordMoodResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	m, err := mood.Parse(req.Mood)
	if err != nil {
		return nil, err
	}

	appended, err := state.RecordMood(m, false)
	if err != nil {
		return nil, err
	}
	s.sessions.Save(state)

	resp := &dto.RecordMoodResponse{Mood: m.String(), Appended: appended}
	if appended && req.Persist {
		resp.Warning = s.writeThrough(ctx, state, m, fmt.Sprintf("Mood logged: %s", m))
	}
	return resp, nil
}

func (s *moodService) DetectFromImage(ctx context.Context, sessionID string, img []byte, persist bool) (*dto.DetectMoodResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	// An unparseable upload is a user error, not a classifier miss: it is
	// surfaced and mutates nothing.
	if _, _, err := image.Decode(bytes.NewReader(img)); err != nil {
		return nil, ErrInvalidImage
	}

	resp := &dto.DetectMoodResponse{}
	m, detected, err := s.classify(ctx, img)
	if err != nil {
		// Detector absent or failed: substitute a uniform random mood.
		s.log.Warn("mood_service", "emotion detection unavailable, using random fallback", map[string]interface{}{
			"error": err.Error(),
		})
		m = s.engine.RandomMood()
		resp.Fallback = true
	} else {
		resp.Detected = detected
	}

	// Classification events always append, debounce does not apply.
	if _, err := state.RecordMood(m, true); err != nil {
		return nil, err
	}
	s.sessions.Save(state)

	resp.Mood = dto.Mood{Label: m.String(), Index: m.Index(), Accent: m.Accent()}
	if persist {
		resp.Warning = s.writeThrough(ctx, state, m, fmt.Sprintf("Auto-detected emotion: %s", m))
	}
	return resp, nil
}

func (s *moodService) classify(ctx context.Context, img []byte) (mood.Mood, string, error) {
	if s.detector == nil {
		return "", "", fmt.Errorf("no classifier configured")
	}
	label, err := s.detector.Detect(ctx, img)
	if err != nil {
		return "", "", err
	}
	m, err := classifier.MapLabel(label)
	if err != nil {
		return "", "", err
	}
	return m, label, nil
}

func (s *moodService) Timeline(sessionID string) ([]session.TimelinePoint, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}
	return state.Timeline(), nil
}

// writeThrough mirrors a mood event into the journal table for logged-in
// users. Failures are reported as a warning while the in-memory session
// keeps the change; nothing downstream depends on the row.
func (s *moodService) writeThrough(ctx context.Context, state *session.State, m mood.Mood, text string) string {
	if !state.Authenticated {
		return ""
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	row := &entity.Journal{
		UserId:    state.UserID,
		Timestamp: time.Now(),
		Emotion:   m.String(),
		Entry:     text,
	}
	if err := uow.JournalRepository().Create(ctx, row); err != nil {
		s.log.Warn("mood_service", "journal write-through failed", map[string]interface{}{
			"user_id": state.UserID,
			"error":   err.Error(),
		})
		return "mood recorded, but saving to the journal failed"
	}
	return ""
}
