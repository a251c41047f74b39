package dto

import "time"

// RegisterRequest entrada para registro (auth). Role vazio assume operador.
type RegisterRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=8"`
	Role  string `json:"role" validate:"omitempty,oneof=controlador operador"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// ProfileResponse saída de um usuário (sem senha).
type ProfileResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse saída com token JWT.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}
