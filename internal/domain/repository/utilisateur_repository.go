package repository

import "github.com/Arnaud70/essikokoe/internal/domain/entity"

// UtilisateurRepository port de persistance des comptes.
type UtilisateurRepository interface {
	Create(u *entity.Utilisateur) error
	// GetByID retourne nil, nil si l'identifiant est inconnu.
	GetByID(id string) (*entity.Utilisateur, error)
	// GetByEmail retourne nil, nil si l'email est inconnu.
	GetByEmail(email string) (*entity.Utilisateur, error)
}
