package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/task-manager-api/internal/database"
	"github.com/yukikurage/task-manager-api/internal/utils"
)

func list[T any](ctx context.Context, db *gorm.DB, page *utils.PaginationParams, preload ...string) ([]T, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).Scopes(database.Paginate(page)).Order("id ASC")
	for _, p := range preload {
		query = query.Preload(p)
	}

	rows := make([]T, 0)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func findByID[T any](ctx context.Context, db *gorm.DB, id uint64, preload ...string) (*T, error) {
	query := db.WithContext(ctx)
	for _, p := range preload {
		query = query.Preload(p)
	}

	var row T
	if err := query.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func update[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(row).Error
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
