package contract

import (
	"context"

	"moodmate-be/internal/entity"
	"moodmate-be/internal/repository/specification"
)

type UserRepository interface {
	// Create inserts a new user. The unique index on username is the only
	// guard against concurrent duplicate registration; violations surface
	// as errors here, never as silent overwrites.
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
