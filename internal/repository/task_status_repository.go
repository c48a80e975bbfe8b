package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

// GormTaskStatusRepository is a GORM implementation of TaskStatusRepository
type GormTaskStatusRepository struct {
	db *gorm.DB
}

// NewTaskStatusRepository creates a new TaskStatusRepository
func NewTaskStatusRepository(db *gorm.DB) TaskStatusRepository {
	return &GormTaskStatusRepository{db: db}
}

func (r *GormTaskStatusRepository) List(ctx context.Context, page *utils.PaginationParams) ([]models.TaskStatus, int64, error) {
	return list[models.TaskStatus](ctx, r.db, page)
}

func (r *GormTaskStatusRepository) FindByID(ctx context.Context, id uint64) (*models.TaskStatus, error) {
	return findByID[models.TaskStatus](ctx, r.db, id)
}

// FindBySlug finds a task status by its unique slug
func (r *GormTaskStatusRepository) FindBySlug(ctx context.Context, slug string) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *GormTaskStatusRepository) Create(ctx context.Context, status *models.TaskStatus) error {
	return create(ctx, r.db, status)
}

func (r *GormTaskStatusRepository) Update(ctx context.Context, status *models.TaskStatus) error {
	return update(ctx, r.db, status)
}

func (r *GormTaskStatusRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID[models.TaskStatus](ctx, r.db, id)
}
