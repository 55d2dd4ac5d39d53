package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProduitRequest body de POST /api/produits.
type CreateProduitRequest struct {
	CodeProduit  string          `json:"codeProduit" validate:"required"`
	NomProduit   string          `json:"nomProduit" validate:"required"`
	Format       string          `json:"format" validate:"required,oneof=SACHET BOUTEILLE BONBONNE"`
	Categorie    string          `json:"categorie" validate:"required"`
	StockInitial int             `json:"stockInitial" validate:"gte=0"`
	StockMinimum int             `json:"stockMinimum" validate:"gte=0"`
	PrixUnitaire decimal.Decimal `json:"prixUnitaire" validate:"required"`
	Fournisseur  string          `json:"fournisseur" validate:"required"`
}

// UpdateProduitRequest body de PUT /api/produits/:codeProduit.
// Champs optionnels; StockInitial n'est jamais modifiable (solde du grand livre).
type UpdateProduitRequest struct {
	NomProduit   *string          `json:"nomProduit,omitempty"`
	Categorie    *string          `json:"categorie,omitempty"`
	StockMinimum *int             `json:"stockMinimum,omitempty" validate:"omitempty,gte=0"`
	PrixUnitaire *decimal.Decimal `json:"prixUnitaire,omitempty"`
	Fournisseur  *string          `json:"fournisseur,omitempty"`
}

// ProduitResponse représentation d'un produit du catalogue.
type ProduitResponse struct {
	CodeProduit  string          `json:"codeProduit"`
	NomProduit   string          `json:"nomProduit"`
	Format       string          `json:"format"`
	Categorie    string          `json:"categorie"`
	StockInitial int             `json:"stockInitial"`
	StockMinimum int             `json:"stockMinimum"`
	PrixUnitaire decimal.Decimal `json:"prixUnitaire"`
	Fournisseur  string          `json:"fournisseur"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProduitListResponse liste de produits.
type ProduitListResponse struct {
	Total    int               `json:"total"`
	Produits []ProduitResponse `json:"produits"`
}

// StatsParFormatDTO statistique catalogue d'un format.
type StatsParFormatDTO struct {
	Format            string          `json:"format"`
	NombreProduits    int             `json:"nombreProduits"`
	PrixMoyenUnitaire decimal.Decimal `json:"prixMoyenUnitaire"`
}

// StatsParFormatResponse réponse de GET /api/produits/stats/by-format.
type StatsParFormatResponse struct {
	ParFormat     []StatsParFormatDTO `json:"parFormat"`
	TotalProduits int                 `json:"totalProduits"`
}

// DashboardProduitsResponse réponse de GET /api/produits/dashboard/metrics.
type DashboardProduitsResponse struct {
	TotalProduits        int             `json:"totalProduits"`
	ProduitsParFormat    map[string]int  `json:"produitsParFormat"`
	PrixMoyenUnitaire    decimal.Decimal `json:"prixMoyenUnitaire"`
	StockMoyenParProduit int             `json:"stockMoyenParProduit"`
	ValeurTotalStock     decimal.Decimal `json:"valeurTotalStock"`
}
