package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel_AddTaskLinksBothSides(t *testing.T) {
	label := &Label{ID: 1, Name: "bug"}
	task := &Task{ID: 10, Name: "Fix bug"}

	label.AddTask(task)
	label.AddTask(task)

	assert.Len(t, label.Tasks, 1)
	assert.Len(t, task.Labels, 1)
	assert.Same(t, task, label.Tasks[0])
	assert.Same(t, label, task.Labels[0])
	assert.Equal(t, []uint64{1}, task.LabelIDs())
}

func TestLabel_RemoveTaskUnlinksBothSides(t *testing.T) {
	bug := &Label{ID: 1, Name: "bug"}
	feature := &Label{ID: 2, Name: "feature"}
	task := &Task{ID: 10, Name: "Fix bug"}
	other := &Task{ID: 11, Name: "Ship it"}

	bug.AddTask(task)
	feature.AddTask(task)
	bug.AddTask(other)

	bug.RemoveTask(task)

	assert.Equal(t, []uint64{2}, task.LabelIDs())
	assert.Len(t, bug.Tasks, 1)
	assert.Equal(t, uint64(11), bug.Tasks[0].ID)
	assert.Len(t, feature.Tasks, 1)
}
