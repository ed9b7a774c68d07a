package service

import (
	"context"
	"time"

	"moodmate-be/internal/entity"
	"moodmate-be/internal/repository/contract"
	"moodmate-be/internal/repository/memory"
	"moodmate-be/internal/repository/specification"
	"moodmate-be/internal/repository/unitofwork"
	"moodmate-be/pkg/session"
)

// nopLogger satisfies ILogger for tests without touching the filesystem.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeJournalRepository records created rows in memory. Setting failCreate
// makes Create return that error, to exercise the warning paths.
type fakeJournalRepository struct {
	rows       []*entity.Journal
	failCreate error
}

func (r *fakeJournalRepository) Create(ctx context.Context, journal *entity.Journal) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	journal.Id = uint(len(r.rows) + 1)
	r.rows = append(r.rows, journal)
	return nil
}

func (r *fakeJournalRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error) {
	if len(r.rows) == 0 {
		return nil, nil
	}
	return r.rows[0], nil
}

// FindAll honors the filtering specifications; ordering specs are ignored,
// rows come back in insertion order.
func (r *fakeJournalRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	var out []*entity.Journal
	for _, row := range r.rows {
		keep := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.JournalOwnedBy:
				if row.UserId != s.UserID {
					keep = false
				}
			case specification.ByEmotion:
				if row.Emotion != s.Emotion {
					keep = false
				}
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeJournalRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeUserRepository struct {
	users      []*entity.User
	failCreate error
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	user.Id = uint(len(r.users) + 1)
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		if byName, ok := spec.(specification.ByUsername); ok {
			for _, u := range r.users {
				if u.Username == byName.Username {
					return u, nil
				}
			}
			return nil, nil
		}
	}
	if len(r.users) == 0 {
		return nil, nil
	}
	return r.users[0], nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeUnitOfWork struct {
	users    *fakeUserRepository
	journals *fakeJournalRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error                { return nil }
func (u *fakeUnitOfWork) Commit() error                                  { return nil }
func (u *fakeUnitOfWork) Rollback() error                                { return nil }
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository        { return u.users }
func (u *fakeUnitOfWork) JournalRepository() contract.JournalRepository  { return u.journals }

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory() (*fakeRepositoryFactory, *fakeJournalRepository, *fakeUserRepository) {
	journals := &fakeJournalRepository{}
	users := &fakeUserRepository{}
	return &fakeRepositoryFactory{uow: &fakeUnitOfWork{users: users, journals: journals}}, journals, users
}

func newTestSession(authenticated bool) (*memory.SessionRepository, *session.State) {
	repo := memory.NewSessionRepository(time.Hour)
	state := session.New("test-session")
	if authenticated {
		state.Authenticate(7, "tester")
	}
	repo.Save(state)
	return repo, state
}
