package stock

import (
	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
	domainstock "github.com/Arnaud70/essikokoe/internal/domain/stock"
)

// CalculatorUseCase dérive le stock courant depuis le grand livre (lecture
// seule, aucune mutation). Le stock n'est jamais un champ entretenu à part:
// il est toujours reconstruit comme stockInitial + Σentrées − Σsorties.
type CalculatorUseCase struct {
	produitRepo   repository.ProduitRepository
	mouvementRepo repository.MouvementRepository
}

// NewCalculatorUseCase construit le cas d'usage.
func NewCalculatorUseCase(produitRepo repository.ProduitRepository, mouvementRepo repository.MouvementRepository) *CalculatorUseCase {
	return &CalculatorUseCase{produitRepo: produitRepo, mouvementRepo: mouvementRepo}
}

// StockActuel retourne le stock dérivé d'un produit (jamais négatif).
// domain.ErrNotFound si le code est inconnu.
func (uc *CalculatorUseCase) StockActuel(code string) (int, error) {
	produit, err := uc.produitRepo.GetByCode(code)
	if err != nil {
		return 0, err
	}
	if produit == nil {
		return 0, domain.ErrNotFound
	}
	sommes, err := uc.mouvementRepo.SommeParProduit(code)
	if err != nil {
		return 0, err
	}
	return domainstock.Solde(produit.StockInitial, sommes.Entrees, sommes.Sorties), nil
}

// StockActuelTous retourne le stock dérivé de chaque produit du catalogue.
// Les sommes de mouvements viennent d'une seule requête agrégée: le résultat
// est identique à appeler StockActuel produit par produit sur cet instantané.
func (uc *CalculatorUseCase) StockActuelTous() (map[string]int, error) {
	produits, err := uc.produitRepo.List()
	if err != nil {
		return nil, err
	}
	sommes, err := uc.mouvementRepo.SommesTous()
	if err != nil {
		return nil, err
	}
	stocks := make(map[string]int, len(produits))
	for _, p := range produits {
		s := sommes[p.CodeProduit] // zéro pour un produit sans mouvement
		stocks[p.CodeProduit] = domainstock.Solde(p.StockInitial, s.Entrees, s.Sorties)
	}
	return stocks, nil
}

// Historique retourne le grand livre d'un produit en ordre d'insertion, avec
// les stocks avant/après tels qu'enregistrés au moment de chaque mouvement.
func (uc *CalculatorUseCase) Historique(code string) (*dto.MouvementsResponse, error) {
	produit, err := uc.produitRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}
	mouvements, err := uc.mouvementRepo.ListByProduit(code)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MouvementDTO, 0, len(mouvements))
	for _, m := range mouvements {
		out = append(out, dto.MouvementDTO{
			ID:            m.ID,
			CodeProduit:   m.CodeProduit,
			NomProduit:    produit.NomProduit,
			Type:          m.Type,
			Quantite:      m.Quantite,
			Motif:         m.Motif,
			DateMouvement: m.DateMouvement,
			StockAvant:    m.StockAvant,
			StockApres:    m.StockApres,
		})
	}
	return &dto.MouvementsResponse{Mouvements: out, Total: len(out)}, nil
}
