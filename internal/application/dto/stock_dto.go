package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Les noms de champs JSON reprennent à l'identique le contrat de l'API
// existante (y compris « pourcentageDisponibilité », « distribuitionParFormat »
// et « dateMovement »): des consommateurs en dépendent déjà.

// EntreeStockRequest body de POST /api/stock/entry.
type EntreeStockRequest struct {
	CodeProduit string `json:"codeProduit" validate:"required"`
	Quantite    int    `json:"quantite" validate:"required,gt=0"`
	Format      string `json:"format" validate:"required,oneof=SACHET BOUTEILLE BONBONNE"`
	Motif       string `json:"motif" validate:"required"`
}

// EntreeStockResponse réponse d'une entrée de stock enregistrée.
type EntreeStockResponse struct {
	Message         string `json:"message"`
	CodeProduit     string `json:"codeProduit"`
	QuantiteAjoutee int    `json:"quantiteAjoutee"`
	NouveauStock    int    `json:"nouveauStock"`
}

// DeduireStockRequest body de POST /api/stock/deduct.
type DeduireStockRequest struct {
	CodeProduit string `json:"codeProduit" validate:"required"`
	Quantite    int    `json:"quantite" validate:"required,gt=0"`
	VenteID     string `json:"venteId" validate:"required"`
}

// DeduireStockResponse réponse d'une déduction après vente.
type DeduireStockResponse struct {
	Message         string `json:"message"`
	CodeProduit     string `json:"codeProduit"`
	QuantiteDeduite int    `json:"quantiteDeduite"`
	NouveauStock    int    `json:"nouveauStock"`
	EstCritique     bool   `json:"estCritique"`
}

// InventaireProduitDTO ligne d'inventaire d'un produit avec son stock dérivé.
type InventaireProduitDTO struct {
	CodeProduit              string          `json:"codeProduit"`
	NomProduit               string          `json:"nomProduit"`
	Format                   string          `json:"format"`
	StockActuel              int             `json:"stockActuel"`
	StockMinimum             int             `json:"stockMinimum"`
	PrixUnitaire             decimal.Decimal `json:"prixUnitaire"`
	EstCritique              bool            `json:"estCritique"`
	PourcentageDisponibilite int             `json:"pourcentageDisponibilité"`
}

// InventaireResponse réponse de GET /api/stock/inventory.
type InventaireResponse struct {
	TotalProduits    int                    `json:"totalProduits"`
	StockTotal       int                    `json:"stockTotal"`
	ProduitsEnAlerte int                    `json:"produitsEnAlerte"`
	Inventaire       []InventaireProduitDTO `json:"inventaire"`
}

// StockParFormatDTO agrégat d'un format de conditionnement.
type StockParFormatDTO struct {
	Format         string          `json:"format"`
	Quantite       int             `json:"quantite"`
	NombreProduits int             `json:"nombreProduits"`
	ValeurTotale   decimal.Decimal `json:"valeurTotale"`
}

// StockParFormatResponse réponse de GET /api/stock/by-format.
type StockParFormatResponse struct {
	ParFormat        []StockParFormatDTO `json:"parFormat"`
	TotalUnites      int                 `json:"totalUnites"`
	ValeurTotalStock decimal.Decimal     `json:"valeurTotalStock"`
}

// StocksCritiquesResponse réponse de GET /api/stock/critical.
type StocksCritiquesResponse struct {
	ProduitsEnAlerte []InventaireProduitDTO `json:"produitsEnAlerte"`
	NombreAlertes    int                    `json:"nombreAlertes"`
}

// DashboardStockResponse réponse de GET /api/stock/dashboard.
type DashboardStockResponse struct {
	StockTotal             int             `json:"stockTotal"`
	ValeurTotalStock       decimal.Decimal `json:"valeurTotalStock"`
	ProduitsEnAlerte       int             `json:"produitsEnAlerte"`
	DistribuitionParFormat map[string]int  `json:"distribuitionParFormat"`
	TauxCouverture         int             `json:"tauxCouverture"`
}

// MouvementDTO ligne d'audit du grand livre d'un produit.
type MouvementDTO struct {
	ID            string    `json:"id"`
	CodeProduit   string    `json:"codeProduit"`
	NomProduit    string    `json:"nomProduit"`
	Type          string    `json:"type"`
	Quantite      int       `json:"quantite"`
	Motif         string    `json:"motif"`
	DateMouvement time.Time `json:"dateMovement"`
	StockAvant    int       `json:"stockAvant"`
	StockApres    int       `json:"stockApres"`
}

// MouvementsResponse réponse de GET /api/stock/movements/:codeProduit.
type MouvementsResponse struct {
	Mouvements []MouvementDTO `json:"mouvements"`
	Total      int            `json:"total"`
}
