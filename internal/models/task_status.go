package models

import "time"

type TaskStatus struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}
