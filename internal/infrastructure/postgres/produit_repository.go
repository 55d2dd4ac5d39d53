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

var _ repository.ProduitRepository = (*ProduitRepo)(nil)

const produitColumns = `code_produit, nom_produit, format, categorie,
		stock_initial, stock_minimum, prix_unitaire, fournisseur, created_at, updated_at`

// ProduitRepo implémentation de ProduitRepository sur PostgreSQL (pool ou tx).
type ProduitRepo struct {
	q Querier
}

// NewProduitRepository construit l'adaptateur catalogue. Passer pool ou tx.
func NewProduitRepository(q Querier) *ProduitRepo {
	return &ProduitRepo{q: q}
}

// Create insère un produit. domain.ErrDuplicate si le code existe déjà.
func (r *ProduitRepo) Create(p *entity.Produit) error {
	query := `
		INSERT INTO produits (` + produitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.CodeProduit, p.NomProduit, p.Format, p.Categorie,
		p.StockInitial, p.StockMinimum, p.PrixUnitaire, p.Fournisseur,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create produit: %w", err)
	}
	return nil
}

// GetByCode retourne un produit ou nil, nil si le code est inconnu.
func (r *ProduitRepo) GetByCode(code string) (*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits WHERE code_produit = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get produit")
}

// GetByCodeForUpdate verrouille la ligne produit (SELECT FOR UPDATE).
// Sérialise les écritures du grand livre par produit: à appeler uniquement
// dans une transaction.
func (r *ProduitRepo) GetByCodeForUpdate(code string) (*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits WHERE code_produit = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get produit for update")
}

// List retourne tous les produits triés par code.
func (r *ProduitRepo) List() ([]*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits ORDER BY code_produit`
	return r.queryMany(query)
}

// Search cherche par code, nom ou fournisseur (ILIKE).
func (r *ProduitRepo) Search(q string) ([]*entity.Produit, error) {
	query := `
		SELECT ` + produitColumns + ` FROM produits
		WHERE code_produit ILIKE $1 OR nom_produit ILIKE $1 OR fournisseur ILIKE $1
		ORDER BY code_produit`
	return r.queryMany(query, "%"+q+"%")
}

// ListByFormat retourne les produits d'un format, triés par nom.
func (r *ProduitRepo) ListByFormat(format string) ([]*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits WHERE format = $1 ORDER BY nom_produit`
	return r.queryMany(query, format)
}

// Update met à jour les champs modifiables d'un produit. Le stock initial ne
// change jamais après création.
func (r *ProduitRepo) Update(p *entity.Produit) error {
	query := `
		UPDATE produits
		SET nom_produit = $2, categorie = $3, stock_minimum = $4,
			prix_unitaire = $5, fournisseur = $6, updated_at = $7
		WHERE code_produit = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.CodeProduit, p.NomProduit, p.Categorie, p.StockMinimum,
		p.PrixUnitaire, p.Fournisseur, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime un produit par code.
func (r *ProduitRepo) Delete(code string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM produits WHERE code_produit = $1`, code)
	if err != nil {
		return fmt.Errorf("delete produit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProduitRepo) scanOne(row pgx.Row, op string) (*entity.Produit, error) {
	var p entity.Produit
	err := row.Scan(
		&p.CodeProduit, &p.NomProduit, &p.Format, &p.Categorie,
		&p.StockInitial, &p.StockMinimum, &p.PrixUnitaire, &p.Fournisseur,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProduitRepo) queryMany(query string, args ...any) ([]*entity.Produit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()

	var produits []*entity.Produit
	for rows.Next() {
		var p entity.Produit
		if err := rows.Scan(
			&p.CodeProduit, &p.NomProduit, &p.Format, &p.Categorie,
			&p.StockInitial, &p.StockMinimum, &p.PrixUnitaire, &p.Fournisseur,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		produits = append(produits, &p)
	}
	return produits, rows.Err()
}
