package implementation

import (
	"context"
	"errors"

	"moodmate-be/internal/entity"
	"moodmate-be/internal/mapper"
	"moodmate-be/internal/model"
	"moodmate-be/internal/repository/contract"
	"moodmate-be/internal/repository/specification"

	"gorm.io/gorm"
)

type JournalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JournalMapper
}

func NewJournalRepository(db *gorm.DB) contract.JournalRepository {
	return &JournalRepositoryImpl{
		db:     db,
		mapper: mapper.NewJournalMapper(),
	}
}

func (r *JournalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *JournalRepositoryImpl) Create(ctx context.Context, journal *entity.Journal) error {
	modelJournal := r.mapper.ToModel(journal)
	if err := r.db.WithContext(ctx).Create(modelJournal).Error; err != nil {
		return err
	}
	*journal = *r.mapper.ToEntity(modelJournal)
	return nil
}

func (r *JournalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error) {
	var modelJournal model.Journal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelJournal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelJournal), nil
}

func (r *JournalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	var modelJournals []*model.Journal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelJournals).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelJournals), nil
}

func (r *JournalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Journal{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
