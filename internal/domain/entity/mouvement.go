package entity

import "time"

// Types de mouvement de stock.
const (
	MouvementEntree = "ENTREE" // livraison, retour client
	MouvementSortie = "SORTIE" // vente
)

// MouvementStock représente un fait immuable du grand livre: une entrée ou une
// sortie affectant le stock dérivé d'un produit. Jamais modifié ni supprimé.
// StockAvant/StockApres sont capturés au moment de l'écriture pour l'audit;
// le calcul du solde ne s'appuie que sur Quantite.
type MouvementStock struct {
	ID            string
	CodeProduit   string
	Type          string // ENTREE, SORTIE
	Quantite      int    // toujours strictement positif
	Motif         string
	StockAvant    int
	StockApres    int
	DateMouvement time.Time
}
