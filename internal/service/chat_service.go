package service

import (
	"context"

	"moodmate-be/internal/dto"
	"moodmate-be/internal/repository/memory"
	"moodmate-be/pkg/chat"
	"moodmate-be/pkg/session"
)

type IChatService interface {
	Send(ctx context.Context, sessionID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Transcript(sessionID string) ([]*dto.ChatMessageResponse, error)
}

type chatService struct {
	sessions  *memory.SessionRepository
	responder *chat.Responder
}

func NewChatService(sessions *memory.SessionRepository, responder *chat.Responder) IChatService {
	return &chatService{
		sessions:  sessions,
		responder: responder,
	}
}

func (s *chatService) Send(ctx context.Context, sessionID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	// Reply runs against the transcript as it was before this message; the
	// responder carries the new input separately.
	reply, delegated := s.responder.Reply(ctx, state, req.Message)

	state.AppendChatMessage(session.RoleUser, req.Message)
	state.AppendChatMessage(session.RoleAssistant, reply)
	s.sessions.Save(state)

	return &dto.SendChatResponse{Reply: reply, Delegated: delegated}, nil
}

func (s *chatService) Transcript(sessionID string) ([]*dto.ChatMessageResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	// Unbounded for display; only the remote-model lookback is capped.
	out := make([]*dto.ChatMessageResponse, 0, len(state.Messages))
	for _, msg := range state.Messages {
		out = append(out, &dto.ChatMessageResponse{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}
	return out, nil
}
