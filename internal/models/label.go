package models

import "time"

type Label struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(1000);not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Tasks []*Task `gorm:"many2many:task_labels" json:"-"`
}

// AddTask links the task to the label on both sides of the relation.
// It only touches the in-memory graph; persistence is the repository's job.
func (l *Label) AddTask(task *Task) {
	if !containsTask(l.Tasks, task.ID) {
		l.Tasks = append(l.Tasks, task)
	}
	if !containsLabel(task.Labels, l.ID) {
		task.Labels = append(task.Labels, l)
	}
}

// RemoveTask unlinks the task from the label on both sides of the relation.
func (l *Label) RemoveTask(task *Task) {
	l.Tasks = removeTask(l.Tasks, task.ID)
	task.Labels = removeLabel(task.Labels, l.ID)
}

func containsTask(tasks []*Task, id uint64) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func containsLabel(labels []*Label, id uint64) bool {
	for _, l := range labels {
		if l.ID == id {
			return true
		}
	}
	return false
}

func removeTask(tasks []*Task, id uint64) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}

func removeLabel(labels []*Label, id uint64) []*Label {
	result := make([]*Label, 0, len(labels))
	for _, l := range labels {
		if l.ID != id {
			result = append(result, l)
		}
	}
	return result
}
