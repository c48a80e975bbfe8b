package dto

import (
	"errors"
	"time"

	"github.com/yukikurage/task-manager-api/internal/models"
)

type TaskStatusDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type TaskStatusCreateRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
	Slug string `json:"slug" binding:"required,notblank,max=255"`
}

type TaskStatusUpdateRequest struct {
	Name Optional[string] `json:"name"`
	Slug Optional[string] `json:"slug"`
}

func (r TaskStatusUpdateRequest) Validate() error {
	return errors.Join(
		checkOptional("name", r.Name, "required,notblank,max=255", false),
		checkOptional("slug", r.Slug, "required,notblank,max=255", false),
	)
}

func ToTaskStatusDTO(status models.TaskStatus) TaskStatusDTO {
	return TaskStatusDTO{
		ID:        status.ID,
		Name:      status.Name,
		Slug:      status.Slug,
		CreatedAt: status.CreatedAt,
	}
}

func ToTaskStatusDTOs(statuses []models.TaskStatus) []TaskStatusDTO {
	result := make([]TaskStatusDTO, len(statuses))
	for i, s := range statuses {
		result[i] = ToTaskStatusDTO(s)
	}
	return result
}

func NewTaskStatus(req TaskStatusCreateRequest) *models.TaskStatus {
	return &models.TaskStatus{
		Name: req.Name,
		Slug: req.Slug,
	}
}

func ApplyTaskStatusUpdate(req TaskStatusUpdateRequest, status *models.TaskStatus) {
	if req.Name.Present() {
		status.Name = req.Name.Value
	}
	if req.Slug.Present() {
		status.Slug = req.Slug.Value
	}
}
