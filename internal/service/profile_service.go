package service

import (
	"bytes"
	"image"
	"image/png"

	_ "image/jpeg"

	"moodmate-be/internal/dto"
	"moodmate-be/internal/pkg/logger"
	"moodmate-be/internal/pkg/storage"
	"moodmate-be/internal/repository/memory"
)

type IProfileService interface {
	Upload(sessionID string, img []byte) (*dto.UploadProfileImageResponse, error)
	Get(sessionID string) ([]byte, error)
}

type profileService struct {
	sessions *memory.SessionRepository
	profiles storage.IProfileStore
	log      logger.ILogger
}

func NewProfileService(sessions *memory.SessionRepository, profiles storage.IProfileStore, log logger.ILogger) IProfileService {
	return &profileService{
		sessions: sessions,
		profiles: profiles,
		log:      log,
	}
}

// Upload normalizes the image to PNG and caches it on the session. When the
// session belongs to a logged-in user the PNG is also written to disk so the
// next login gets it back.
func (s *profileService) Upload(sessionID string, img []byte) (*dto.UploadProfileImageResponse, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	decoded, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return nil, ErrInvalidImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return nil, ErrInvalidImage
	}

	state.ProfileImage = buf.Bytes()
	s.sessions.Save(state)

	resp := &dto.UploadProfileImageResponse{}
	if !state.Authenticated {
		resp.Warning = "image kept for this session only: log in to keep it"
		return resp, nil
	}

	if _, err := s.profiles.Save(state.Username, buf.Bytes()); err != nil {
		s.log.Warn("profile_service", "profile image write failed", map[string]interface{}{
			"username": state.Username,
			"error":    err.Error(),
		})
		resp.Warning = "image kept for this session, but saving it failed"
		return resp, nil
	}
	resp.Stored = true
	return resp, nil
}

func (s *profileService) Get(sessionID string) ([]byte, error) {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}
	return state.ProfileImage, nil
}
