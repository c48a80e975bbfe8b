package repository

import (
	"context"

	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns a page of users ordered by id and the total count
	List(ctx context.Context, page *utils.PaginationParams) ([]models.User, int64, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// Update persists every column of the user
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user, returning gorm.ErrRecordNotFound when absent
	Delete(ctx context.Context, id uint64) error
}

// TaskStatusRepository defines the interface for task status data access
type TaskStatusRepository interface {
	List(ctx context.Context, page *utils.PaginationParams) ([]models.TaskStatus, int64, error)
	FindByID(ctx context.Context, id uint64) (*models.TaskStatus, error)
	FindBySlug(ctx context.Context, slug string) (*models.TaskStatus, error)
	Create(ctx context.Context, status *models.TaskStatus) error
	Update(ctx context.Context, status *models.TaskStatus) error
	Delete(ctx context.Context, id uint64) error
}

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	List(ctx context.Context, page *utils.PaginationParams) ([]models.Label, int64, error)
	FindByID(ctx context.Context, id uint64) (*models.Label, error)
	FindByName(ctx context.Context, name string) (*models.Label, error)

	// FindByIDs returns the labels that exist among ids, with their tasks loaded
	FindByIDs(ctx context.Context, ids []uint64) ([]*models.Label, error)

	Create(ctx context.Context, label *models.Label) error
	Update(ctx context.Context, label *models.Label) error
	Delete(ctx context.Context, id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List returns a page of tasks with status and labels preloaded
	List(ctx context.Context, page *utils.PaginationParams) ([]models.Task, int64, error)

	// FindByID finds a task by ID with status and labels preloaded
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// Create inserts the task row only; labels go through AttachLabel
	Create(ctx context.Context, task *models.Task) error

	// Update persists the task columns without touching associations
	Update(ctx context.Context, task *models.Task) error

	// Delete removes a task together with its label links
	Delete(ctx context.Context, id uint64) error

	// AttachLabel links task and label in memory and in task_labels
	AttachLabel(ctx context.Context, task *models.Task, label *models.Label) error

	// DetachLabel unlinks task and label in memory and in task_labels
	DetachLabel(ctx context.Context, task *models.Task, label *models.Label) error

	// CountByStatus counts tasks referencing the status
	CountByStatus(ctx context.Context, statusID uint64) (int64, error)

	// CountByAssignee counts tasks assigned to the user
	CountByAssignee(ctx context.Context, userID uint64) (int64, error)

	// CountByLabel counts tasks carrying the label
	CountByLabel(ctx context.Context, labelID uint64) (int64, error)
}
