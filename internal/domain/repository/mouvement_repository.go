package repository

import "github.com/Arnaud70/essikokoe/internal/domain/entity"

// SommeMouvements totaux d'entrées et de sorties d'un produit.
type SommeMouvements struct {
	Entrees int
	Sorties int
}

// MouvementRepository port du grand livre des mouvements (append-only).
// Aucune opération de mise à jour ni de suppression: un mouvement est un fait.
type MouvementRepository interface {
	Create(m *entity.MouvementStock) error
	// ListByProduit retourne l'historique d'un produit en ordre d'insertion.
	ListByProduit(code string) ([]*entity.MouvementStock, error)
	// SommeParProduit totalise entrées et sorties d'un produit en une lecture.
	SommeParProduit(code string) (SommeMouvements, error)
	// SommesTous totalise entrées et sorties de tous les produits en une seule
	// requête: un instantané cohérent par produit pour les agrégations.
	SommesTous() (map[string]SommeMouvements, error)
	// CountByProduit compte les mouvements référençant un produit.
	CountByProduit(code string) (int, error)
}
