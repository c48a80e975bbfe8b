package dto

import (
	"time"

	"github.com/yukikurage/task-manager-api/internal/models"
)

type LabelDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type LabelCreateRequest struct {
	Name string `json:"name" binding:"required,labelname"`
}

type LabelUpdateRequest struct {
	Name Optional[string] `json:"name"`
}

func (r LabelUpdateRequest) Validate() error {
	return checkOptional("name", r.Name, "required,labelname", false)
}

func ToLabelDTO(label models.Label) LabelDTO {
	return LabelDTO{
		ID:        label.ID,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
	}
}

func ToLabelDTOs(labels []models.Label) []LabelDTO {
	result := make([]LabelDTO, len(labels))
	for i, l := range labels {
		result[i] = ToLabelDTO(l)
	}
	return result
}

func NewLabel(req LabelCreateRequest) *models.Label {
	return &models.Label{Name: req.Name}
}

func ApplyLabelUpdate(req LabelUpdateRequest, label *models.Label) {
	if req.Name.Present() {
		label.Name = req.Name.Value
	}
}
