package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
)

var _ repository.MouvementRepository = (*MouvementRepo)(nil)

// MouvementRepo implémentation du grand livre sur PostgreSQL (pool ou tx).
// Insertion seule: pas d'UPDATE ni de DELETE sur mouvements_stock.
type MouvementRepo struct {
	q Querier
}

// NewMouvementRepository construit l'adaptateur du grand livre.
func NewMouvementRepository(q Querier) *MouvementRepo {
	return &MouvementRepo{q: q}
}

// Create ajoute un mouvement au grand livre. L'ID est généré s'il est vide.
func (r *MouvementRepo) Create(m *entity.MouvementStock) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO mouvements_stock
			(id, code_produit, type, quantite, motif, stock_avant, stock_apres, date_mouvement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CodeProduit, m.Type, m.Quantite, m.Motif,
		m.StockAvant, m.StockApres, m.DateMouvement,
	)
	if err != nil {
		return fmt.Errorf("create mouvement: %w", err)
	}
	return nil
}

// ListByProduit retourne l'historique d'un produit en ordre d'insertion.
func (r *MouvementRepo) ListByProduit(code string) ([]*entity.MouvementStock, error) {
	query := `
		SELECT id, code_produit, type, quantite, motif, stock_avant, stock_apres, date_mouvement
		FROM mouvements_stock WHERE code_produit = $1
		ORDER BY date_mouvement, id`
	rows, err := r.q.Query(context.Background(), query, code)
	if err != nil {
		return nil, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()

	var mouvements []*entity.MouvementStock
	for rows.Next() {
		var m entity.MouvementStock
		if err := rows.Scan(
			&m.ID, &m.CodeProduit, &m.Type, &m.Quantite, &m.Motif,
			&m.StockAvant, &m.StockApres, &m.DateMouvement,
		); err != nil {
			return nil, fmt.Errorf("scan mouvement: %w", err)
		}
		mouvements = append(mouvements, &m)
	}
	return mouvements, rows.Err()
}

// SommeParProduit totalise entrées et sorties d'un produit en une lecture.
func (r *MouvementRepo) SommeParProduit(code string) (repository.SommeMouvements, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'ENTREE' THEN quantite ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'SORTIE' THEN quantite ELSE 0 END), 0)
		FROM mouvements_stock WHERE code_produit = $1`
	var s repository.SommeMouvements
	if err := r.q.QueryRow(context.Background(), query, code).Scan(&s.Entrees, &s.Sorties); err != nil {
		return repository.SommeMouvements{}, fmt.Errorf("somme mouvements: %w", err)
	}
	return s, nil
}

// SommesTous totalise entrées et sorties par produit en une seule requête.
func (r *MouvementRepo) SommesTous() (map[string]repository.SommeMouvements, error) {
	query := `
		SELECT code_produit,
			COALESCE(SUM(CASE WHEN type = 'ENTREE' THEN quantite ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'SORTIE' THEN quantite ELSE 0 END), 0)
		FROM mouvements_stock GROUP BY code_produit`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sommes mouvements: %w", err)
	}
	defer rows.Close()

	sommes := make(map[string]repository.SommeMouvements)
	for rows.Next() {
		var code string
		var s repository.SommeMouvements
		if err := rows.Scan(&code, &s.Entrees, &s.Sorties); err != nil {
			return nil, fmt.Errorf("scan somme: %w", err)
		}
		sommes[code] = s
	}
	return sommes, rows.Err()
}

// CountByProduit compte les mouvements référençant un produit.
func (r *MouvementRepo) CountByProduit(code string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM mouvements_stock WHERE code_produit = $1`, code).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count mouvements: %w", err)
	}
	return n, nil
}
