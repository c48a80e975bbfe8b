package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

var taskPreloads = []string{"TaskStatus", "Labels"}

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List retrieves tasks with pagination
func (r *GormTaskRepository) List(ctx context.Context, page *utils.PaginationParams) ([]models.Task, int64, error) {
	return list[models.Task](ctx, r.db, page, taskPreloads...)
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	return findByID[models.Task](ctx, r.db, id, taskPreloads...)
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return create(ctx, r.db, task)
}

// Update updates a task
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	return update(ctx, r.db, task)
}

// Delete removes a task and its label links
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Where("task_id = ?", id).Delete(&models.TaskLabel{}).Error; err != nil {
		return err
	}
	return deleteByID[models.Task](ctx, r.db, id)
}

// AttachLabel links a label to a task. Linking twice is a no-op.
func (r *GormTaskRepository) AttachLabel(ctx context.Context, task *models.Task, label *models.Label) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TaskLabel{TaskID: task.ID, LabelID: label.ID}).Error
	if err != nil {
		return err
	}
	label.AddTask(task)
	return nil
}

// DetachLabel removes the link between a label and a task
func (r *GormTaskRepository) DetachLabel(ctx context.Context, task *models.Task, label *models.Label) error {
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND label_id = ?", task.ID, label.ID).
		Delete(&models.TaskLabel{}).Error
	if err != nil {
		return err
	}
	label.RemoveTask(task)
	return nil
}

func (r *GormTaskRepository) CountByStatus(ctx context.Context, statusID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("task_status_id = ?", statusID).Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) CountByAssignee(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("assignee_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) CountByLabel(ctx context.Context, labelID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TaskLabel{}).Where("label_id = ?", labelID).Count(&count).Error
	return count, err
}
