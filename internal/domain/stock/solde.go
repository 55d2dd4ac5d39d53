// Package stock contient les règles pures du grand livre: calcul du solde
// dérivé et des ratios d'alerte (service de domaine, sans effets de bord).
package stock

import "math"

// Solde calcule le stock courant dérivé d'un produit:
// max(0, stockInitial + Σentrées − Σsorties).
func Solde(stockInitial, entrees, sorties int) int {
	s := stockInitial + entrees - sorties
	if s < 0 {
		return 0
	}
	return s
}

// EstCritique indique si le stock dérivé est au niveau ou sous le seuil minimum.
func EstCritique(stockActuel, stockMinimum int) bool {
	return stockActuel <= stockMinimum
}

// PourcentageDisponibilite calcule round(100 × stock / (stock + stockMinimum))
// quand stock > 0, sinon 0. La formule est reprise telle quelle du système
// existant: les consommateurs dépendent de ses valeurs exactes.
func PourcentageDisponibilite(stockActuel, stockMinimum int) int {
	if stockActuel <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(stockActuel) / float64(stockActuel+stockMinimum)))
}

// TauxCouverture calcule round(100 × (total − critiques) / total), le
// pourcentage de produits au-dessus de leur seuil minimum. 0 sans produits.
func TauxCouverture(totalProduits, produitsCritiques int) int {
	if totalProduits <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(totalProduits-produitsCritiques) / float64(totalProduits)))
}
