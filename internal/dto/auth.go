package dto

import "github.com/mamunbank/bank_trainer_app/internal/core/domain"

// LoginRequest is the trainee login payload: display name plus role.
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// LoginResponse carries the session user and its bearer token.
type LoginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}
