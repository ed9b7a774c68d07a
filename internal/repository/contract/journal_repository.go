package contract

import (
	"context"

	"moodmate-be/internal/entity"
	"moodmate-be/internal/repository/specification"
)

type JournalRepository interface {
	// Create appends a journal row. Rows are immutable once written.
	Create(ctx context.Context, journal *entity.Journal) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
