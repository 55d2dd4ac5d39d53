package dto

import "time"

// RegisterRequest body de POST /api/auth/register (rôle CLIENT imposé).
type RegisterRequest struct {
	Nom        string `json:"nom" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"motDePasse" validate:"required,min=8"`
}

// CreateUserRequest body de POST /api/users (réservé ADMIN, rôle libre).
type CreateUserRequest struct {
	Nom        string `json:"nom" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"motDePasse" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=ADMIN AGENT CLIENT"`
}

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"motDePasse" validate:"required"`
}

// UserResponse représentation d'un utilisateur, sans le mot de passe.
type UserResponse struct {
	IDUtilisateur string    `json:"idUtilisateur"`
	Nom           string    `json:"nom"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LoginResponse paire de jetons émise au login.
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	Utilisateur  UserResponse `json:"utilisateur"`
}

// RefreshRequest body de POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshResponse nouveau jeton d'accès.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
