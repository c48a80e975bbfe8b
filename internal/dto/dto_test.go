package dto

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-manager-api/internal/models"
)

type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func TestNewUser_HashesPassword(t *testing.T) {
	user, err := NewUser(UserCreateRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Password:  "secret",
	}, fakeHasher{})
	require.NoError(t, err)

	assert.Equal(t, "hashed:secret", user.PasswordDigest)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestNewUser_HasherError(t *testing.T) {
	_, err := NewUser(UserCreateRequest{Password: "secret"}, fakeHasher{err: errors.New("boom")})
	assert.Error(t, err)
}

func TestApplyUserUpdate_OnlyTouchesPresentFields(t *testing.T) {
	user := &models.User{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", PasswordDigest: "old"}

	err := ApplyUserUpdate(UserUpdateRequest{LastName: Some("Smith")}, user, fakeHasher{})
	require.NoError(t, err)

	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "old", user.PasswordDigest)

	require.NoError(t, ApplyUserUpdate(UserUpdateRequest{Password: Some("new")}, user, fakeHasher{}))
	assert.Equal(t, "hashed:new", user.PasswordDigest)
}

func TestToUserDTO_OmitsDigest(t *testing.T) {
	out := ToUserDTO(models.User{ID: 1, Email: "a@b.c", PasswordDigest: "secret"})
	assert.Equal(t, uint64(1), out.ID)
	assert.Equal(t, "a@b.c", out.Email)
}

func TestUserUpdateRequest_Validate(t *testing.T) {
	assert.NoError(t, UserUpdateRequest{}.Validate())
	assert.NoError(t, UserUpdateRequest{Email: Some("x@example.com")}.Validate())
	assert.Error(t, UserUpdateRequest{Email: Some("not-an-email")}.Validate())
	assert.Error(t, UserUpdateRequest{Email: Null[string]()}.Validate())
	assert.Error(t, UserUpdateRequest{Password: Some("ab")}.Validate())
	assert.Error(t, UserUpdateRequest{FirstName: Some(strings.Repeat("a", 256))}.Validate())
	assert.NoError(t, UserUpdateRequest{LastName: Null[string]()}.Validate())
}

func TestLabelUpdateRequest_Validate(t *testing.T) {
	assert.NoError(t, LabelUpdateRequest{Name: Some("feature")}.Validate())
	assert.Error(t, LabelUpdateRequest{Name: Some("ab")}.Validate())
	assert.Error(t, LabelUpdateRequest{Name: Some(strings.Repeat("a", 1001))}.Validate())
	assert.Error(t, LabelUpdateRequest{Name: Null[string]()}.Validate())
}

func TestTaskStatusUpdateRequest_Validate(t *testing.T) {
	assert.NoError(t, TaskStatusUpdateRequest{Slug: Some("done")}.Validate())
	assert.Error(t, TaskStatusUpdateRequest{Slug: Some("   ")}.Validate())
	assert.Error(t, TaskStatusUpdateRequest{Name: Some(strings.Repeat("a", 256))}.Validate())
}

func TestTaskUpdateRequest_Validate(t *testing.T) {
	assert.NoError(t, TaskUpdateRequest{AssigneeID: Null[uint64](), LabelIDs: Null[[]uint64]()}.Validate())
	assert.Error(t, TaskUpdateRequest{Name: Some("")}.Validate())
	assert.Error(t, TaskUpdateRequest{TaskStatus: Null[string]()}.Validate())
	assert.Error(t, TaskUpdateRequest{Name: Some(strings.Repeat("a", 256))}.Validate())
}

func TestCreateRequests_BindingTags(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidations(v))

	long := strings.Repeat("a", 256)
	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{"label ok", LabelCreateRequest{Name: "feature"}, false},
		{"label too short", LabelCreateRequest{Name: "ab"}, true},
		{"label at max", LabelCreateRequest{Name: strings.Repeat("a", 1000)}, false},
		{"label too long", LabelCreateRequest{Name: strings.Repeat("a", 1001)}, true},
		{"status ok", TaskStatusCreateRequest{Name: "Done", Slug: "done"}, false},
		{"status slug too long", TaskStatusCreateRequest{Name: "Done", Slug: long}, true},
		{"task name too long", TaskCreateRequest{Name: long, TaskStatus: "draft"}, true},
		{"user ok", UserCreateRequest{Email: "a@example.com", Password: "qwe"}, false},
		{"user first name too long", UserCreateRequest{FirstName: long, Email: "a@example.com", Password: "qwe"}, true},
		{"user email too long", UserCreateRequest{Email: long + "@example.com", Password: "qwe"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTask_ResolvesReferences(t *testing.T) {
	index := 4
	status := models.TaskStatus{ID: 2, Slug: "draft"}
	assignee := &models.User{ID: 7}

	task := NewTask(TaskCreateRequest{Name: "Write docs", Index: &index}, status, assignee)

	assert.Equal(t, "Write docs", task.Name)
	assert.Equal(t, uint64(2), task.TaskStatusID)
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, uint64(7), *task.AssigneeID)
	assert.Equal(t, &index, task.Index)

	unassigned := NewTask(TaskCreateRequest{Name: "x"}, status, nil)
	assert.Nil(t, unassigned.AssigneeID)
}

func TestApplyTaskUpdate(t *testing.T) {
	index := 1
	task := &models.Task{Name: "Old", Index: &index, Description: "desc"}

	ApplyTaskUpdate(TaskUpdateRequest{Name: Some("New"), Index: Null[int]()}, task)

	assert.Equal(t, "New", task.Name)
	assert.Nil(t, task.Index)
	assert.Equal(t, "desc", task.Description)

	ApplyTaskUpdate(TaskUpdateRequest{Index: Some(9), Description: Null[string]()}, task)
	require.NotNil(t, task.Index)
	assert.Equal(t, 9, *task.Index)
	assert.Equal(t, "", task.Description)
}

func TestToTaskDTO(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assignee := uint64(3)
	task := models.Task{
		ID:         10,
		Name:       "Ship",
		AssigneeID: &assignee,
		CreatedAt:  created,
		TaskStatus: models.TaskStatus{Slug: "published"},
		Labels:     []*models.Label{{ID: 1}, {ID: 5}},
	}

	want := TaskDTO{
		ID:         10,
		Name:       "Ship",
		AssigneeID: &assignee,
		CreatedAt:  created,
		TaskStatus: "published",
		LabelIDs:   []uint64{1, 5},
	}
	if diff := cmp.Diff(want, ToTaskDTO(task)); diff != "" {
		t.Errorf("ToTaskDTO mismatch (-want +got):\n%s", diff)
	}
}

func TestToTaskDTO_NoLabelsIsEmptyList(t *testing.T) {
	out := ToTaskDTO(models.Task{})
	assert.NotNil(t, out.LabelIDs)
	assert.Empty(t, out.LabelIDs)
}
