package dto

import (
	"errors"
	"time"

	"github.com/yukikurage/task-manager-api/internal/models"
)

// TaskDTO is the wire form of a task. The status is referenced by slug and
// the labels by id.
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Index       *int      `json:"index"`
	CreatedAt   time.Time `json:"createdAt"`
	AssigneeID  *uint64   `json:"assigneeId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaskStatus  string    `json:"taskStatus"`
	LabelIDs    []uint64  `json:"labelsIds"`
}

type TaskCreateRequest struct {
	Name        string   `json:"name" binding:"required,notblank,max=255"`
	Index       *int     `json:"index"`
	Description string   `json:"description"`
	TaskStatus  string   `json:"taskStatus" binding:"required,notblank"`
	AssigneeID  *uint64  `json:"assigneeId"`
	LabelIDs    []uint64 `json:"labelsIds"`
}

// TaskUpdateRequest is a partial update. An explicit null on assigneeId
// unassigns the task; a null or empty labelsIds detaches every label.
type TaskUpdateRequest struct {
	Name        Optional[string]   `json:"name"`
	Index       Optional[int]      `json:"index"`
	Description Optional[string]   `json:"description"`
	TaskStatus  Optional[string]   `json:"taskStatus"`
	AssigneeID  Optional[uint64]   `json:"assigneeId"`
	LabelIDs    Optional[[]uint64] `json:"labelsIds"`
}

func (r TaskUpdateRequest) Validate() error {
	return errors.Join(
		checkOptional("name", r.Name, "required,notblank,max=255", false),
		checkOptional("taskStatus", r.TaskStatus, "required,notblank", false),
	)
}

func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Index:       task.Index,
		CreatedAt:   task.CreatedAt,
		AssigneeID:  task.AssigneeID,
		Name:        task.Name,
		Description: task.Description,
		TaskStatus:  task.TaskStatus.Slug,
		LabelIDs:    task.LabelIDs(),
	}
}

func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	result := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		result[i] = ToTaskDTO(t)
	}
	return result
}

// NewTask builds a task from a create request and its already resolved
// references. Labels are attached separately.
func NewTask(req TaskCreateRequest, status models.TaskStatus, assignee *models.User) *models.Task {
	task := &models.Task{
		Name:         req.Name,
		Index:        req.Index,
		Description:  req.Description,
		TaskStatusID: status.ID,
		TaskStatus:   status,
	}
	if assignee != nil {
		task.AssigneeID = &assignee.ID
		task.Assignee = assignee
	}
	return task
}

// ApplyTaskUpdate copies the scalar fields present in req onto task.
// References (status, assignee, labels) are resolved by the caller.
func ApplyTaskUpdate(req TaskUpdateRequest, task *models.Task) {
	if req.Name.Present() {
		task.Name = req.Name.Value
	}
	if req.Index.Set {
		if req.Index.Null {
			task.Index = nil
		} else {
			index := req.Index.Value
			task.Index = &index
		}
	}
	if req.Description.Set {
		task.Description = req.Description.Value
	}
}
