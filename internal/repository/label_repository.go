package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

// GormLabelRepository is a GORM implementation of LabelRepository
type GormLabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &GormLabelRepository{db: db}
}

func (r *GormLabelRepository) List(ctx context.Context, page *utils.PaginationParams) ([]models.Label, int64, error) {
	return list[models.Label](ctx, r.db, page)
}

func (r *GormLabelRepository) FindByID(ctx context.Context, id uint64) (*models.Label, error) {
	return findByID[models.Label](ctx, r.db, id)
}

// FindByName finds a label by its unique name
func (r *GormLabelRepository) FindByName(ctx context.Context, name string) (*models.Label, error) {
	var label models.Label
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByIDs returns the existing labels among ids, ordered by id. Missing
// ids are silently skipped; callers compare lengths.
func (r *GormLabelRepository) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Label, error) {
	labels := make([]*models.Label, 0, len(ids))
	if len(ids) == 0 {
		return labels, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *GormLabelRepository) Create(ctx context.Context, label *models.Label) error {
	return create(ctx, r.db, label)
}

func (r *GormLabelRepository) Update(ctx context.Context, label *models.Label) error {
	return update(ctx, r.db, label)
}

func (r *GormLabelRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID[models.Label](ctx, r.db, id)
}
