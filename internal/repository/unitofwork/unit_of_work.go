package unitofwork

import (
	"context"

	"moodmate-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	JournalRepository() contract.JournalRepository
}
