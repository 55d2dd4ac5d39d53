package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
)

var _ repository.UtilisateurRepository = (*UtilisateurRepo)(nil)

// UtilisateurRepo implémentation des comptes sur PostgreSQL.
type UtilisateurRepo struct {
	q Querier
}

// NewUtilisateurRepository construit l'adaptateur des comptes.
func NewUtilisateurRepository(q Querier) *UtilisateurRepo {
	return &UtilisateurRepo{q: q}
}

// Create insère un compte. domain.ErrEmailAlreadyExists si l'email est pris.
func (r *UtilisateurRepo) Create(u *entity.Utilisateur) error {
	query := `
		INSERT INTO utilisateurs (id, nom, email, mot_de_passe_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nom, u.Email, u.MotDePasseHash, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create utilisateur: %w", err)
	}
	return nil
}

// GetByID retourne nil, nil si l'identifiant est inconnu.
func (r *UtilisateurRepo) GetByID(id string) (*entity.Utilisateur, error) {
	return r.getBy(`id = $1`, id)
}

// GetByEmail retourne nil, nil si l'email est inconnu.
func (r *UtilisateurRepo) GetByEmail(email string) (*entity.Utilisateur, error) {
	return r.getBy(`email = $1`, email)
}

func (r *UtilisateurRepo) getBy(where string, arg any) (*entity.Utilisateur, error) {
	query := `
		SELECT id, nom, email, mot_de_passe_hash, role, created_at, updated_at
		FROM utilisateurs WHERE ` + where
	var u entity.Utilisateur
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nom, &u.Email, &u.MotDePasseHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get utilisateur: %w", err)
	}
	return &u, nil
}
