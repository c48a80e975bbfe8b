package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yukikurage/task-manager-api/internal/config"
	"github.com/yukikurage/task-manager-api/internal/database"
	"github.com/yukikurage/task-manager-api/internal/dto"
	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/repository"
)

// SeedService makes sure the default user, task statuses and labels exist.
type SeedService struct {
	store  *repository.Store
	hasher dto.PasswordHasher
	cfg    config.SeedConfig
	log    *zap.Logger
}

// NewSeedService creates a new SeedService
func NewSeedService(store *repository.Store, hasher dto.PasswordHasher, cfg config.SeedConfig, log *zap.Logger) *SeedService {
	return &SeedService{store: store, hasher: hasher, cfg: cfg, log: log}
}

// EnsureDefaults inserts every configured default that is not present yet,
// matching on e-mail, slug and name. Running it again changes nothing.
func (s *SeedService) EnsureDefaults(ctx context.Context) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := s.ensureUser(ctx, tx); err != nil {
			return err
		}
		for _, slug := range s.cfg.TaskStatusSlugs {
			if err := s.ensureTaskStatus(ctx, tx, slug); err != nil {
				return err
			}
		}
		for _, name := range s.cfg.Labels {
			if err := s.ensureLabel(ctx, tx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SeedService) ensureUser(ctx context.Context, tx *repository.Store) error {
	if s.cfg.Email == "" {
		return nil
	}
	_, err := tx.Users.FindByEmail(ctx, s.cfg.Email)
	if err == nil {
		return nil
	}
	if !database.IsNotFound(err) {
		return fmt.Errorf("failed to look up seed user: %w", err)
	}

	user, err := dto.NewUser(dto.UserCreateRequest{Email: s.cfg.Email, Password: s.cfg.Password}, s.hasher)
	if err != nil {
		return err
	}
	if err := tx.Users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}
	s.log.Info("seeded user", zap.String("email", user.Email))
	return nil
}

func (s *SeedService) ensureTaskStatus(ctx context.Context, tx *repository.Store, slug string) error {
	_, err := tx.TaskStatuses.FindBySlug(ctx, slug)
	if err == nil {
		return nil
	}
	if !database.IsNotFound(err) {
		return fmt.Errorf("failed to look up task status %s: %w", slug, err)
	}

	status := &models.TaskStatus{Name: statusName(slug), Slug: slug}
	if err := tx.TaskStatuses.Create(ctx, status); err != nil {
		return fmt.Errorf("failed to create task status %s: %w", slug, err)
	}
	s.log.Info("seeded task status", zap.String("slug", slug))
	return nil
}

func (s *SeedService) ensureLabel(ctx context.Context, tx *repository.Store, name string) error {
	_, err := tx.Labels.FindByName(ctx, name)
	if err == nil {
		return nil
	}
	if !database.IsNotFound(err) {
		return fmt.Errorf("failed to look up label %s: %w", name, err)
	}

	if err := tx.Labels.Create(ctx, &models.Label{Name: name}); err != nil {
		return fmt.Errorf("failed to create label %s: %w", name, err)
	}
	s.log.Info("seeded label", zap.String("name", name))
	return nil
}

// statusName derives a display name from a slug: "to_review" becomes "To_review".
func statusName(slug string) string {
	if slug == "" {
		return slug
	}
	return strings.ToUpper(slug[:1]) + slug[1:]
}
