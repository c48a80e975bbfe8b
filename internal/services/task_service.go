package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/task-manager-api/internal/database"
	"github.com/yukikurage/task-manager-api/internal/dto"
	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/repository"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

const taskEntity = "Task"

// TaskService handles task business logic, including the task/label links
type TaskService struct {
	store *repository.Store
}

// NewTaskService creates a new TaskService
func NewTaskService(store *repository.Store) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) List(ctx context.Context, page *utils.PaginationParams) ([]dto.TaskDTO, int64, error) {
	tasks, total, err := s.store.Tasks.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToTaskDTOs(tasks), total, nil
}

func (s *TaskService) Get(ctx context.Context, id uint64) (*dto.TaskDTO, error) {
	task, err := find(taskEntity, id, func() (*models.Task, error) {
		return s.store.Tasks.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToTaskDTO(*task)
	return &out, nil
}

// Create resolves the status, assignee and labels, inserts the task and
// attaches every label. Nothing is persisted if any reference is missing.
func (s *TaskService) Create(ctx context.Context, req dto.TaskCreateRequest) (*dto.TaskDTO, error) {
	var task *models.Task
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		status, err := resolveStatus(ctx, tx, req.TaskStatus)
		if err != nil {
			return err
		}

		var assignee *models.User
		if req.AssigneeID != nil {
			if assignee, err = resolveAssignee(ctx, tx, *req.AssigneeID); err != nil {
				return err
			}
		}

		labels, err := resolveLabels(ctx, tx, req.LabelIDs)
		if err != nil {
			return err
		}

		task = dto.NewTask(req, *status, assignee)
		if err := tx.Tasks.Create(ctx, task); err != nil {
			return classifyWrite(err, "create task", taskEntity, "name", task.Name)
		}

		for _, label := range labels {
			if err := tx.Tasks.AttachLabel(ctx, task, label); err != nil {
				return fmt.Errorf("failed to attach label %d: %w", label.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToTaskDTO(*task)
	return &out, nil
}

// Update applies a partial update. When labelsIds is present the label set
// is replaced; when absent the current labels are kept.
func (s *TaskService) Update(ctx context.Context, id uint64, req dto.TaskUpdateRequest) (*dto.TaskDTO, error) {
	var task *models.Task
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		task, err = find(taskEntity, id, func() (*models.Task, error) {
			return tx.Tasks.FindByID(ctx, id)
		})
		if err != nil {
			return err
		}

		dto.ApplyTaskUpdate(req, task)

		if req.TaskStatus.Present() {
			status, err := resolveStatus(ctx, tx, req.TaskStatus.Value)
			if err != nil {
				return err
			}
			task.TaskStatusID = status.ID
			task.TaskStatus = *status
		}

		if req.AssigneeID.Set {
			task.AssigneeID = nil
			task.Assignee = nil
			if !req.AssigneeID.Null {
				assignee, err := resolveAssignee(ctx, tx, req.AssigneeID.Value)
				if err != nil {
					return err
				}
				task.AssigneeID = &assignee.ID
				task.Assignee = assignee
			}
		}

		if req.LabelIDs.Set {
			if err := replaceLabels(ctx, tx, task, req.LabelIDs.Value); err != nil {
				return err
			}
		}

		if err := tx.Tasks.Update(ctx, task); err != nil {
			return classifyWrite(err, "update task", taskEntity, "name", task.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToTaskDTO(*task)
	return &out, nil
}

// Delete detaches every label from the task and removes it.
func (s *TaskService) Delete(ctx context.Context, id uint64) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		task, err := find(taskEntity, id, func() (*models.Task, error) {
			return tx.Tasks.FindByID(ctx, id)
		})
		if err != nil {
			return err
		}

		labels, err := tx.Labels.FindByIDs(ctx, task.LabelIDs())
		if err != nil {
			return err
		}
		for _, label := range labels {
			if err := tx.Tasks.DetachLabel(ctx, task, label); err != nil {
				return fmt.Errorf("failed to detach label %d: %w", label.ID, err)
			}
		}

		if err := tx.Tasks.Delete(ctx, id); err != nil {
			return classifyDelete(err, taskEntity, id)
		}
		return nil
	})
}

// replaceLabels makes the task carry exactly the labels in ids.
func replaceLabels(ctx context.Context, tx *repository.Store, task *models.Task, ids []uint64) error {
	wanted, err := resolveLabels(ctx, tx, ids)
	if err != nil {
		return err
	}
	keep := make(map[uint64]bool, len(wanted))
	for _, label := range wanted {
		keep[label.ID] = true
	}

	current, err := tx.Labels.FindByIDs(ctx, task.LabelIDs())
	if err != nil {
		return err
	}
	for _, label := range current {
		if keep[label.ID] {
			continue
		}
		if err := tx.Tasks.DetachLabel(ctx, task, label); err != nil {
			return fmt.Errorf("failed to detach label %d: %w", label.ID, err)
		}
	}

	for _, label := range wanted {
		if err := tx.Tasks.AttachLabel(ctx, task, label); err != nil {
			return fmt.Errorf("failed to attach label %d: %w", label.ID, err)
		}
	}
	return nil
}

func resolveStatus(ctx context.Context, tx *repository.Store, slug string) (*models.TaskStatus, error) {
	status, err := tx.TaskStatuses.FindBySlug(ctx, slug)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, newError(ErrNotFound, "%s with slug %s not found", taskStatusEntity, slug)
		}
		return nil, fmt.Errorf("failed to find task status: %w", err)
	}
	return status, nil
}

func resolveAssignee(ctx context.Context, tx *repository.Store, id uint64) (*models.User, error) {
	return find(userEntity, id, func() (*models.User, error) {
		return tx.Users.FindByID(ctx, id)
	})
}

// resolveLabels loads every label in ids, failing with NotFound on the
// first missing one. Duplicate ids collapse.
func resolveLabels(ctx context.Context, tx *repository.Store, ids []uint64) ([]*models.Label, error) {
	unique := make([]uint64, 0, len(ids))
	seen := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	labels, err := tx.Labels.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(labels) == len(unique) {
		return labels, nil
	}

	found := make(map[uint64]bool, len(labels))
	for _, label := range labels {
		found[label.ID] = true
	}
	for _, id := range unique {
		if !found[id] {
			return nil, notFound(labelEntity, id)
		}
	}
	return labels, nil
}
