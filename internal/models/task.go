package models

import "time"

type Task struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Index        *int      `json:"index"`
	Description  string    `gorm:"type:text" json:"description"`
	TaskStatusID uint64    `gorm:"not null;index" json:"taskStatusId"`
	AssigneeID   *uint64   `gorm:"index" json:"assigneeId"`
	CreatedAt    time.Time `json:"createdAt"`

	// Relations
	TaskStatus TaskStatus `gorm:"foreignKey:TaskStatusID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"taskStatus"`
	Assignee   *User      `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"assignee,omitempty"`
	Labels     []*Label   `gorm:"many2many:task_labels" json:"-"`
}

// LabelIDs returns the ids of the labels currently attached to the task.
func (t *Task) LabelIDs() []uint64 {
	ids := make([]uint64, 0, len(t.Labels))
	for _, l := range t.Labels {
		ids = append(ids, l.ID)
	}
	return ids
}

// TaskLabel is a row of the task_labels join table.
type TaskLabel struct {
	TaskID  uint64 `gorm:"primarykey"`
	LabelID uint64 `gorm:"primarykey"`
}

func (TaskLabel) TableName() string {
	return "task_labels"
}
