package repository

import "github.com/Arnaud70/essikokoe/internal/domain/entity"

// ProduitRepository port de persistance du catalogue produit.
type ProduitRepository interface {
	Create(p *entity.Produit) error
	// GetByCode retourne nil, nil si le code est inconnu.
	GetByCode(code string) (*entity.Produit, error)
	// GetByCodeForUpdate verrouille la ligne produit (SELECT FOR UPDATE).
	// Point de sérialisation par produit: à utiliser uniquement dans une
	// transaction, avant la séquence lecture-vérification-ajout du grand livre.
	GetByCodeForUpdate(code string) (*entity.Produit, error)
	// List retourne tous les produits triés par code.
	List() ([]*entity.Produit, error)
	// Search cherche par code, nom ou fournisseur (insensible à la casse).
	Search(query string) ([]*entity.Produit, error)
	// ListByFormat retourne les produits d'un format, triés par nom.
	ListByFormat(format string) ([]*entity.Produit, error)
	Update(p *entity.Produit) error
	Delete(code string) error
}
