package user

import "github.com/prosperitycompass/backend/pkg/dto"

// NewUser represents the request body for creating a new user.
type NewUser struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
}

// UserResponse is the public view of a user.
type UserResponse = dto.UserRead
