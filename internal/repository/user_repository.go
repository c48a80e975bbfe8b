package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yukikurage/task-manager-api/internal/models"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) List(ctx context.Context, page *utils.PaginationParams) ([]models.User, int64, error) {
	return list[models.User](ctx, r.db, page)
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	return findByID[models.User](ctx, r.db, id)
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return create(ctx, r.db, user)
}

func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	return update(ctx, r.db, user)
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID[models.User](ctx, r.db, id)
}
