package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o usuário administrador definido por configuração
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}

// AdminRoleID é o perfil do usuário configurado
const AdminRoleID = 1
