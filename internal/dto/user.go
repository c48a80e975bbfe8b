package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/task-manager-api/internal/models"
)

// UserDTO represents a user in API responses. The password digest is never
// part of it.
type UserDTO struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserCreateRequest struct {
	FirstName string `json:"firstName" binding:"max=255"`
	LastName  string `json:"lastName" binding:"max=255"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=3"`
}

type UserUpdateRequest struct {
	FirstName Optional[string] `json:"firstName"`
	LastName  Optional[string] `json:"lastName"`
	Email     Optional[string] `json:"email"`
	Password  Optional[string] `json:"password"`
}

func (r UserUpdateRequest) Validate() error {
	return errors.Join(
		checkOptional("firstName", r.FirstName, "max=255", true),
		checkOptional("lastName", r.LastName, "max=255", true),
		checkOptional("email", r.Email, "required,email,max=255", false),
		checkOptional("password", r.Password, "required,min=3", false),
	)
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func ToUserDTOs(users []models.User) []UserDTO {
	result := make([]UserDTO, len(users))
	for i, u := range users {
		result[i] = ToUserDTO(u)
	}
	return result
}

// NewUser builds a User from a create request, hashing the password.
func NewUser(req UserCreateRequest, hasher PasswordHasher) (*models.User, error) {
	digest, err := hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordDigest: digest,
	}, nil
}

// ApplyUserUpdate copies the fields present in req onto user. A new password
// is hashed before it is stored.
func ApplyUserUpdate(req UserUpdateRequest, user *models.User, hasher PasswordHasher) error {
	if req.FirstName.Set {
		user.FirstName = req.FirstName.Value
	}
	if req.LastName.Set {
		user.LastName = req.LastName.Value
	}
	if req.Email.Present() {
		user.Email = req.Email.Value
	}
	if req.Password.Present() {
		digest, err := hasher.Hash(req.Password.Value)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordDigest = digest
	}
	return nil
}
