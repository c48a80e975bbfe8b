package services

import (
	"context"

	"github.com/yukikurage/task-manager-api/internal/dto"
	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/repository"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

const userEntity = "User"

// UserService handles user business logic
type UserService struct {
	store  *repository.Store
	hasher dto.PasswordHasher
}

// NewUserService creates a new UserService
func NewUserService(store *repository.Store, hasher dto.PasswordHasher) *UserService {
	return &UserService{store: store, hasher: hasher}
}

func (s *UserService) List(ctx context.Context, page *utils.PaginationParams) ([]dto.UserDTO, int64, error) {
	users, total, err := s.store.Users.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToUserDTOs(users), total, nil
}

func (s *UserService) Get(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := find(userEntity, id, func() (*models.User, error) {
		return s.store.Users.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(*user)
	return &out, nil
}

// Create registers a user. The password is stored only as a digest.
func (s *UserService) Create(ctx context.Context, req dto.UserCreateRequest) (*dto.UserDTO, error) {
	user, err := dto.NewUser(req, s.hasher)
	if err != nil {
		return nil, err
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		return nil, classifyWrite(err, "create user", userEntity, "email", user.Email)
	}
	out := dto.ToUserDTO(*user)
	return &out, nil
}

func (s *UserService) Update(ctx context.Context, id uint64, req dto.UserUpdateRequest) (*dto.UserDTO, error) {
	var user *models.User
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		user, err = find(userEntity, id, func() (*models.User, error) {
			return tx.Users.FindByID(ctx, id)
		})
		if err != nil {
			return err
		}
		if err := dto.ApplyUserUpdate(req, user, s.hasher); err != nil {
			return err
		}
		if err := tx.Users.Update(ctx, user); err != nil {
			return classifyWrite(err, "update user", userEntity, "email", user.Email)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(*user)
	return &out, nil
}

// Delete removes a user that is not assigned to any task.
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := find(userEntity, id, func() (*models.User, error) {
			return tx.Users.FindByID(ctx, id)
		}); err != nil {
			return err
		}

		count, err := tx.Tasks.CountByAssignee(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return hasTasks(userEntity, id)
		}

		if err := tx.Users.Delete(ctx, id); err != nil {
			return classifyDelete(err, userEntity, id)
		}
		return nil
	})
}
