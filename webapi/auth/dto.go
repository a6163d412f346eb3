package auth

import "github.com/prosperitycompass/backend/pkg/dto"

// SignupInput represents the request body for registration.
type SignupInput struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
}

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
}

// SessionResponse is returned by signup and login.
type SessionResponse struct {
	User  *dto.UserRead `json:"user"`
	Token string        `json:"token"`
}

// MeResponse wraps the current user. User is null when the account no
// longer exists.
type MeResponse struct {
	User *dto.UserRead `json:"user"`
}
