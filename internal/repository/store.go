package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle, so that a
// service can run several of them inside a single transaction.
type Store struct {
	db *gorm.DB

	Users        UserRepository
	TaskStatuses TaskStatusRepository
	Labels       LabelRepository
	Tasks        TaskRepository
}

// NewStore creates a Store backed by db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Users:        NewUserRepository(db),
		TaskStatuses: NewTaskStatusRepository(db),
		Labels:       NewLabelRepository(db),
		Tasks:        NewTaskRepository(db),
	}
}

// Transaction runs fn with a Store bound to a new transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
// Everything inside fn must go through tx.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
