package entity

import "time"

// Rôles valides pour Utilisateur.
const (
	RoleAdmin  = "ADMIN"
	RoleAgent  = "AGENT"
	RoleClient = "CLIENT"
)

// RoleValide indique si r appartient à l'énumération des rôles.
func RoleValide(r string) bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleClient:
		return true
	}
	return false
}

// Utilisateur représente un compte du système.
type Utilisateur struct {
	ID             string
	Nom            string
	Email          string
	MotDePasseHash string // hash bcrypt, jamais en clair après persistance
	Role           string // ADMIN, AGENT, CLIENT
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
