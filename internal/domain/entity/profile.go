package entity

import "time"

// Roles válidos para Profile.
const (
	RoleControlador = "controlador" // leitura e escrita completas
	RoleOperador    = "operador"    // apenas saídas e leitura
)

// Profile representa um usuário autenticado do sistema.
type Profile struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string // bcrypt hash, nunca em claro no domínio após persistir
	Role      string // controlador | operador
	CreatedAt time.Time
	UpdatedAt time.Time
}
