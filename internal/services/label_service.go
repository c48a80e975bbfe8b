package services

import (
	"context"

	"github.com/yukikurage/task-manager-api/internal/dto"
	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/repository"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

const labelEntity = "Label"

// LabelService handles label business logic
type LabelService struct {
	store *repository.Store
}

// NewLabelService creates a new LabelService
func NewLabelService(store *repository.Store) *LabelService {
	return &LabelService{store: store}
}

func (s *LabelService) List(ctx context.Context, page *utils.PaginationParams) ([]dto.LabelDTO, int64, error) {
	labels, total, err := s.store.Labels.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToLabelDTOs(labels), total, nil
}

func (s *LabelService) Get(ctx context.Context, id uint64) (*dto.LabelDTO, error) {
	label, err := find(labelEntity, id, func() (*models.Label, error) {
		return s.store.Labels.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToLabelDTO(*label)
	return &out, nil
}

func (s *LabelService) Create(ctx context.Context, req dto.LabelCreateRequest) (*dto.LabelDTO, error) {
	label := dto.NewLabel(req)
	if err := s.store.Labels.Create(ctx, label); err != nil {
		return nil, classifyWrite(err, "create label", labelEntity, "name", label.Name)
	}
	out := dto.ToLabelDTO(*label)
	return &out, nil
}

func (s *LabelService) Update(ctx context.Context, id uint64, req dto.LabelUpdateRequest) (*dto.LabelDTO, error) {
	var label *models.Label
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		label, err = find(labelEntity, id, func() (*models.Label, error) {
			return tx.Labels.FindByID(ctx, id)
		})
		if err != nil {
			return err
		}
		dto.ApplyLabelUpdate(req, label)
		if err := tx.Labels.Update(ctx, label); err != nil {
			return classifyWrite(err, "update label", labelEntity, "name", label.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToLabelDTO(*label)
	return &out, nil
}

// Delete removes a label that is not attached to any task.
func (s *LabelService) Delete(ctx context.Context, id uint64) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := find(labelEntity, id, func() (*models.Label, error) {
			return tx.Labels.FindByID(ctx, id)
		}); err != nil {
			return err
		}

		count, err := tx.Tasks.CountByLabel(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return hasTasks(labelEntity, id)
		}

		if err := tx.Labels.Delete(ctx, id); err != nil {
			return classifyDelete(err, labelEntity, id)
		}
		return nil
	})
}
