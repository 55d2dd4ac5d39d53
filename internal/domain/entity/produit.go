package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formats de conditionnement de l'eau (énumération fermée).
const (
	FormatSachet    = "SACHET"
	FormatBouteille = "BOUTEILLE"
	FormatBonbonne  = "BONBONNE"
)

// FormatValide indique si f appartient à l'énumération des formats.
func FormatValide(f string) bool {
	switch f {
	case FormatSachet, FormatBouteille, FormatBonbonne:
		return true
	}
	return false
}

// Produit représente un produit du catalogue. CodeProduit est la clé externe,
// assignée à la main et immuable après création. StockInitial est le solde de
// départ du grand livre: il n'est jamais décrémenté par les ventes, le stock
// courant se dérive toujours des mouvements.
type Produit struct {
	CodeProduit  string
	NomProduit   string
	Format       string // SACHET, BOUTEILLE, BONBONNE
	Categorie    string
	StockInitial int
	StockMinimum int
	PrixUnitaire decimal.Decimal
	Fournisseur  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
