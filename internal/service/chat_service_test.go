package service

import (
	"context"
	"math/rand"
	"testing"

	"moodmate-be/internal/dto"
	"moodmate-be/pkg/chat"
	"moodmate-be/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService() (IChatService, string) {
	sessions, state := newTestSession(false)
	responder := chat.NewResponder(nil, rand.New(rand.NewSource(42)))
	return NewChatService(sessions, responder), state.ID
}

func TestSendAppendsBothTurns(t *testing.T) {
	svc, sessionID := newChatService()

	res, err := svc.Send(context.Background(), sessionID, &dto.SendChatRequest{Message: "feeling a bit low today"})
	require.NoError(t, err)
	assert.False(t, res.Delegated)
	// The templated reply always echoes the input back.
	assert.Contains(t, res.Reply, "feeling a bit low today")

	transcript, err := svc.Transcript(sessionID)
	require.NoError(t, err)
	// welcome + user + assistant
	require.Len(t, transcript, 3)
	assert.Equal(t, session.WelcomeMessage, transcript[0].Content)
	assert.Equal(t, session.RoleUser, transcript[1].Role)
	assert.Equal(t, "feeling a bit low today", transcript[1].Content)
	assert.Equal(t, session.RoleAssistant, transcript[2].Role)
	assert.Equal(t, res.Reply, transcript[2].Content)
}

func TestSendUnknownSession(t *testing.T) {
	svc, _ := newChatService()

	_, err := svc.Send(context.Background(), "missing", &dto.SendChatRequest{Message: "hello"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTranscriptStartsWithWelcome(t *testing.T) {
	svc, sessionID := newChatService()

	transcript, err := svc.Transcript(sessionID)
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.Equal(t, session.RoleAssistant, transcript[0].Role)
	assert.Equal(t, session.WelcomeMessage, transcript[0].Content)
}
