package stock

import (
	"github.com/shopspring/decimal"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
	domainstock "github.com/Arnaud70/essikokoe/internal/domain/stock"
)

// AggregationUseCase calcule les rollups de lecture (inventaire, par format,
// alertes, dashboard) comme des plis purs sur la collection des produits et
// leurs stocks dérivés. Aucun état accumulé entre requêtes, aucun cache.
type AggregationUseCase struct {
	produitRepo repository.ProduitRepository
	calc        *CalculatorUseCase
}

// NewAggregationUseCase construit le cas d'usage.
func NewAggregationUseCase(produitRepo repository.ProduitRepository, calc *CalculatorUseCase) *AggregationUseCase {
	return &AggregationUseCase{produitRepo: produitRepo, calc: calc}
}

// Inventaire retourne l'état complet du stock avec les alertes par produit.
func (uc *AggregationUseCase) Inventaire() (*dto.InventaireResponse, error) {
	produits, stocks, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	inventaire := make([]dto.InventaireProduitDTO, 0, len(produits))
	stockTotal := 0
	enAlerte := 0
	for _, p := range produits {
		s := stocks[p.CodeProduit]
		critique := domainstock.EstCritique(s, p.StockMinimum)
		if critique {
			enAlerte++
		}
		stockTotal += s
		inventaire = append(inventaire, dto.InventaireProduitDTO{
			CodeProduit:              p.CodeProduit,
			NomProduit:               p.NomProduit,
			Format:                   p.Format,
			StockActuel:              s,
			StockMinimum:             p.StockMinimum,
			PrixUnitaire:             p.PrixUnitaire,
			EstCritique:              critique,
			PourcentageDisponibilite: domainstock.PourcentageDisponibilite(s, p.StockMinimum),
		})
	}

	return &dto.InventaireResponse{
		TotalProduits:    len(produits),
		StockTotal:       stockTotal,
		ProduitsEnAlerte: enAlerte,
		Inventaire:       inventaire,
	}, nil
}

// StockParFormat agrège le stock par format de conditionnement
// (SACHET / BOUTEILLE / BONBONNE), dans l'ordre de première apparition.
func (uc *AggregationUseCase) StockParFormat() (*dto.StockParFormatResponse, error) {
	produits, stocks, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	type accumulateur struct {
		quantite int
		nombre   int
		valeur   decimal.Decimal
	}
	parFormat := map[string]*accumulateur{}
	var ordre []string
	for _, p := range produits {
		acc, ok := parFormat[p.Format]
		if !ok {
			acc = &accumulateur{valeur: decimal.Zero}
			parFormat[p.Format] = acc
			ordre = append(ordre, p.Format)
		}
		s := stocks[p.CodeProduit]
		acc.quantite += s
		acc.nombre++
		acc.valeur = acc.valeur.Add(decimal.NewFromInt(int64(s)).Mul(p.PrixUnitaire))
	}

	out := make([]dto.StockParFormatDTO, 0, len(ordre))
	totalUnites := 0
	valeurTotale := decimal.Zero
	for _, f := range ordre {
		acc := parFormat[f]
		totalUnites += acc.quantite
		valeurTotale = valeurTotale.Add(acc.valeur)
		out = append(out, dto.StockParFormatDTO{
			Format:         f,
			Quantite:       acc.quantite,
			NombreProduits: acc.nombre,
			ValeurTotale:   acc.valeur.Round(2),
		})
	}

	return &dto.StockParFormatResponse{
		ParFormat:        out,
		TotalUnites:      totalUnites,
		ValeurTotalStock: valeurTotale.Round(2),
	}, nil
}

// StocksCritiques retourne les produits dont le stock dérivé est au niveau ou
// sous le seuil minimum.
func (uc *AggregationUseCase) StocksCritiques() (*dto.StocksCritiquesResponse, error) {
	inventaire, err := uc.Inventaire()
	if err != nil {
		return nil, err
	}
	critiques := make([]dto.InventaireProduitDTO, 0)
	for _, ligne := range inventaire.Inventaire {
		if ligne.EstCritique {
			critiques = append(critiques, ligne)
		}
	}
	return &dto.StocksCritiquesResponse{
		ProduitsEnAlerte: critiques,
		NombreAlertes:    len(critiques),
	}, nil
}

// TableauDeBord calcule les métriques de stock du dashboard administrateur.
func (uc *AggregationUseCase) TableauDeBord() (*dto.DashboardStockResponse, error) {
	produits, stocks, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	stockTotal := 0
	valeurTotale := decimal.Zero
	critiques := 0
	distribution := map[string]int{}
	for _, p := range produits {
		s := stocks[p.CodeProduit]
		stockTotal += s
		valeurTotale = valeurTotale.Add(decimal.NewFromInt(int64(s)).Mul(p.PrixUnitaire))
		if domainstock.EstCritique(s, p.StockMinimum) {
			critiques++
		}
		distribution[p.Format] += s
	}

	return &dto.DashboardStockResponse{
		StockTotal:             stockTotal,
		ValeurTotalStock:       valeurTotale.Round(2),
		ProduitsEnAlerte:       critiques,
		DistribuitionParFormat: distribution,
		TauxCouverture:         domainstock.TauxCouverture(len(produits), critiques),
	}, nil
}

// snapshot liste les produits et leurs stocks dérivés. La cohérence est
// garantie par produit (une seule lecture agrégée du grand livre), pas entre
// produits: un agrégat peut mêler des états pré/post-mouvement de produits
// différents, jamais une valeur qu'aucun instantané d'un produit n'a portée.
func (uc *AggregationUseCase) snapshot() ([]*entity.Produit, map[string]int, error) {
	produits, err := uc.produitRepo.List()
	if err != nil {
		return nil, nil, err
	}
	stocks, err := uc.calc.StockActuelTous()
	if err != nil {
		return nil, nil, err
	}
	return produits, stocks, nil
}
