package service

import (
	"context"
	"fmt"
	"time"

	"moodmate-be/internal/dto"
	"moodmate-be/internal/entity"
	"moodmate-be/internal/pkg/logger"
	"moodmate-be/internal/repository/memory"
	"moodmate-be/internal/repository/specification"
	"moodmate-be/internal/repository/unitofwork"
	"moodmate-be/pkg/mood"
	"moodmate-be/pkg/sentiment"
	"moodmate-be/pkg/session"
)

// recentJournalLimit caps the session listing shown on the dashboard.
const recentJournalLimit = 6

type IJournalService interface {
	Append(ctx context.Context, sessionID string, req *dto.CreateJournalRequest) (*dto.CreateJournalResponse, error)
	Recent(sessionID string) ([]*dto.JournalItemResponse, error)
	History(ctx context.Context, sessionID, emotion string) ([]*dto.JournalItemResponse, error)
	Sentiment(sessionID string) (*dto.SentimentResponse, error)
}

type journalService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	analyzer   sentiment.Analyzer
	log        logger.ILogger
}

func NewJournalService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	analyzer sentiment.Analyzer,
	log logger.ILogger,
) IJournalService {
	return &journalService{
		uowFactory: uowFactory,
		sessions:   sessions,
		analyzer:   analyzer,
		log:        log,
	}
}

func (s *journalService) Append(ctx context.Context, sessionID string, req *dto.CreateJournalRequest) (*dto.CreateJournalResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	var m mood.Mood
	if req.Mood != "" {
		var err error
		if m, err = mood.Parse(req.Mood); err != nil {
			return nil, err
		}
	}

	entry := session.JournalEntry{
		Title:     req.Title,
		Body:      req.Body,
		Mood:      m,
		Timestamp: time.Now(),
	}
	state.AppendJournal(entry)
	s.sessions.Save(state)

	resp := &dto.CreateJournalResponse{}
	if req.Persist {
		if !state.Authenticated {
			resp.Warning = "saved locally only: log in to persist journals"
			return resp, nil
		}

		row := &entity.Journal{
			UserId:    state.UserID,
			Timestamp: entry.Timestamp,
			Emotion:   m.String(),
			Entry:     req.Body,
		}
		if req.Title != "" {
			title := req.Title
			row.Title = &title
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.JournalRepository().Create(ctx, row); err != nil {
			// The session keeps the entry; the row is best effort.
			s.log.Warn("journal_service", "journal persist failed", map[string]interface{}{
				"user_id": state.UserID,
				"error":   err.Error(),
			})
			resp.Warning = fmt.Sprintf("failed to save to DB: %v. Saved locally instead", err)
			return resp, nil
		}
		resp.Persisted = true
	}
	return resp, nil
}

func (s *journalService) Recent(sessionID string) ([]*dto.JournalItemResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	start := len(state.Journals) - recentJournalLimit
	if start < 0 {
		start = 0
	}
	recent := state.Journals[start:]

	// Newest first
	out := make([]*dto.JournalItemResponse, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		j := recent[i]
		out = append(out, &dto.JournalItemResponse{
			Title:     j.Title,
			Body:      j.Body,
			Mood:      j.Mood.String(),
			Timestamp: j.Timestamp,
		})
	}
	return out, nil
}

func (s *journalService) History(ctx context.Context, sessionID, emotion string) ([]*dto.JournalItemResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}
	if !state.Authenticated {
		return nil, ErrNotAuthenticated
	}

	specs := []specification.Specification{
		specification.JournalOwnedBy{UserID: state.UserID},
		specification.OrderBy{Field: "timestamp", Desc: true},
	}
	if emotion != "" {
		m, err := mood.Parse(emotion)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.ByEmotion{Emotion: m.String()})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.JournalRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.JournalItemResponse, 0, len(rows))
	for _, row := range rows {
		item := &dto.JournalItemResponse{
			Body:      row.Entry,
			Mood:      row.Emotion,
			Timestamp: row.Timestamp,
		}
		if row.Title != nil {
			item.Title = *row.Title
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *journalService) Sentiment(sessionID string) (*dto.SentimentResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	texts := make([]string, 0, len(state.Journals))
	for _, j := range state.Journals {
		texts = append(texts, j.Body)
	}

	mean, label := sentiment.Average(s.analyzer, texts)
	return &dto.SentimentResponse{Average: mean, Label: string(label)}, nil
}
