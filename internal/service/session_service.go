package service

import (
	"moodmate-be/internal/dto"
	"moodmate-be/internal/repository/memory"
	"moodmate-be/pkg/session"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create() *dto.CreateSessionResponse
	Snapshot(sessionID string) (*dto.SessionSnapshotResponse, error)
	UpdateDisplayName(sessionID string, req *dto.UpdateDisplayNameRequest) error
}

type sessionService struct {
	sessions *memory.SessionRepository
}

func NewSessionService(sessions *memory.SessionRepository) ISessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Create() *dto.CreateSessionResponse {
	state := session.New(uuid.New().String())
	s.sessions.Save(state)
	return &dto.CreateSessionResponse{Id: state.ID}
}

func (s *sessionService) Snapshot(sessionID string) (*dto.SessionSnapshotResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	return &dto.SessionSnapshotResponse{
		Id:            state.ID,
		Authenticated: state.Authenticated,
		Username:      state.Username,
		DisplayName:   state.DisplayName,
		CurrentMood:   state.CurrentMood().String(),
		MoodCount:     len(state.MoodLog),
		JournalCount:  len(state.Journals),
		MessageCount:  len(state.Messages),
	}, nil
}

func (s *sessionService) UpdateDisplayName(sessionID string, req *dto.UpdateDisplayNameRequest) error {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return ErrSessionNotFound
	}
	if req.DisplayName != "" {
		state.DisplayName = req.DisplayName
		s.sessions.Save(state)
	}
	return nil
}
