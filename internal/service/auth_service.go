package service

import (
	"context"
	"os"
	"time"

	"moodmate-be/internal/dto"
	"moodmate-be/internal/entity"
	"moodmate-be/internal/pkg/logger"
	"moodmate-be/internal/pkg/storage"
	"moodmate-be/internal/repository/memory"
	"moodmate-be/internal/repository/specification"
	"moodmate-be/internal/repository/unitofwork"
	"moodmate-be/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(sessionID string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	profiles   storage.IProfileStore
	log        logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	profiles storage.IProfileStore,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		sessions:   sessions,
		profiles:   profiles,
		log:        log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hash),
	}

	// The unique index on username is the real guard: two concurrent
	// registrations race here and the loser gets a constraint violation.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		s.log.Warn("auth_service", "user insert failed", map[string]interface{}{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, ErrUsernameTaken
	}

	return &dto.RegisterResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	state := session.New(uuid.New().String())
	state.Authenticate(user.Id, user.Username)

	// Best effort: a saved profile image is loaded back into the session.
	if img, err := s.profiles.Load(user.Username); err == nil {
		state.ProfileImage = img
	}

	s.sessions.Save(state)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:       token,
		SessionId:   state.ID,
		Username:    user.Username,
		DisplayName: state.DisplayName,
	}, nil
}

func (s *authService) Logout(sessionID string) error {
	state, found := s.sessions.Get(sessionID)
	if !found {
		return ErrSessionNotFound
	}
	state.Logout()
	s.sessions.Save(state)
	return nil
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
