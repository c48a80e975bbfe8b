package services

import (
	"context"

	"github.com/yukikurage/task-manager-api/internal/dto"
	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/repository"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

const taskStatusEntity = "TaskStatus"

// TaskStatusService handles task status business logic
type TaskStatusService struct {
	store *repository.Store
}

// NewTaskStatusService creates a new TaskStatusService
func NewTaskStatusService(store *repository.Store) *TaskStatusService {
	return &TaskStatusService{store: store}
}

func (s *TaskStatusService) List(ctx context.Context, page *utils.PaginationParams) ([]dto.TaskStatusDTO, int64, error) {
	statuses, total, err := s.store.TaskStatuses.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToTaskStatusDTOs(statuses), total, nil
}

func (s *TaskStatusService) Get(ctx context.Context, id uint64) (*dto.TaskStatusDTO, error) {
	status, err := find(taskStatusEntity, id, func() (*models.TaskStatus, error) {
		return s.store.TaskStatuses.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToTaskStatusDTO(*status)
	return &out, nil
}

func (s *TaskStatusService) Create(ctx context.Context, req dto.TaskStatusCreateRequest) (*dto.TaskStatusDTO, error) {
	status := dto.NewTaskStatus(req)
	if err := s.store.TaskStatuses.Create(ctx, status); err != nil {
		return nil, classifyWrite(err, "create task status", taskStatusEntity, "slug", status.Slug)
	}
	out := dto.ToTaskStatusDTO(*status)
	return &out, nil
}

func (s *TaskStatusService) Update(ctx context.Context, id uint64, req dto.TaskStatusUpdateRequest) (*dto.TaskStatusDTO, error) {
	var status *models.TaskStatus
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		status, err = find(taskStatusEntity, id, func() (*models.TaskStatus, error) {
			return tx.TaskStatuses.FindByID(ctx, id)
		})
		if err != nil {
			return err
		}
		dto.ApplyTaskStatusUpdate(req, status)
		if err := tx.TaskStatuses.Update(ctx, status); err != nil {
			return classifyWrite(err, "update task status", taskStatusEntity, "slug", status.Slug)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToTaskStatusDTO(*status)
	return &out, nil
}

// Delete removes a status that no task references.
func (s *TaskStatusService) Delete(ctx context.Context, id uint64) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := find(taskStatusEntity, id, func() (*models.TaskStatus, error) {
			return tx.TaskStatuses.FindByID(ctx, id)
		}); err != nil {
			return err
		}

		count, err := tx.Tasks.CountByStatus(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return hasTasks(taskStatusEntity, id)
		}

		if err := tx.TaskStatuses.Delete(ctx, id); err != nil {
			return classifyDelete(err, taskStatusEntity, id)
		}
		return nil
	})
}
