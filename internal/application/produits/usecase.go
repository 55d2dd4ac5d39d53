// Package produits contient les cas d'usage CRUD du catalogue. Le stock
// courant n'est jamais modifié ici: il se dérive du grand livre des mouvements.
package produits

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
)

// UseCase regroupe les cas d'usage du catalogue produit.
type UseCase struct {
	produitRepo   repository.ProduitRepository
	mouvementRepo repository.MouvementRepository
	calc          *appstock.CalculatorUseCase
}

// NewUseCase construit le cas d'usage.
func NewUseCase(produitRepo repository.ProduitRepository, mouvementRepo repository.MouvementRepository, calc *appstock.CalculatorUseCase) *UseCase {
	return &UseCase{produitRepo: produitRepo, mouvementRepo: mouvementRepo, calc: calc}
}

// Create crée un produit. Le code est unique globalement; StockInitial devient
// le solde de départ du grand livre.
func (uc *UseCase) Create(in dto.CreateProduitRequest) (*dto.ProduitResponse, error) {
	if !entity.FormatValide(in.Format) || in.StockInitial < 0 || in.StockMinimum < 0 ||
		!in.PrixUnitaire.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.produitRepo.GetByCode(in.CodeProduit)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	produit := &entity.Produit{
		CodeProduit:  in.CodeProduit,
		NomProduit:   in.NomProduit,
		Format:       in.Format,
		Categorie:    in.Categorie,
		StockInitial: in.StockInitial,
		StockMinimum: in.StockMinimum,
		PrixUnitaire: in.PrixUnitaire,
		Fournisseur:  in.Fournisseur,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.produitRepo.Create(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// GetByCode retourne un produit. domain.ErrNotFound si le code est inconnu.
func (uc *UseCase) GetByCode(code string) (*dto.ProduitResponse, error) {
	produit, err := uc.produitRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}
	return toProduitResponse(produit), nil
}

// List retourne tous les produits triés par code.
func (uc *UseCase) List() (*dto.ProduitListResponse, error) {
	produits, err := uc.produitRepo.List()
	if err != nil {
		return nil, err
	}
	return toListResponse(produits), nil
}

// Search cherche par code, nom ou fournisseur (insensible à la casse).
func (uc *UseCase) Search(query string) (*dto.ProduitListResponse, error) {
	produits, err := uc.produitRepo.Search(query)
	if err != nil {
		return nil, err
	}
	return toListResponse(produits), nil
}

// ListByFormat filtre par format. domain.ErrNotFound quand aucun produit ne
// porte ce format (contrat de l'API existante).
func (uc *UseCase) ListByFormat(format string) (*dto.ProduitListResponse, error) {
	produits, err := uc.produitRepo.ListByFormat(format)
	if err != nil {
		return nil, err
	}
	if len(produits) == 0 {
		return nil, domain.ErrNotFound
	}
	return toListResponse(produits), nil
}

// StatsParFormat calcule, par format, le nombre de produits et le prix moyen
// unitaire arrondi à deux décimales.
func (uc *UseCase) StatsParFormat() (*dto.StatsParFormatResponse, error) {
	produits, err := uc.produitRepo.List()
	if err != nil {
		return nil, err
	}

	type accumulateur struct {
		totalPrix decimal.Decimal
		nombre    int
	}
	parFormat := map[string]*accumulateur{}
	var ordre []string
	for _, p := range produits {
		acc, ok := parFormat[p.Format]
		if !ok {
			acc = &accumulateur{totalPrix: decimal.Zero}
			parFormat[p.Format] = acc
			ordre = append(ordre, p.Format)
		}
		acc.totalPrix = acc.totalPrix.Add(p.PrixUnitaire)
		acc.nombre++
	}

	out := make([]dto.StatsParFormatDTO, 0, len(ordre))
	for _, f := range ordre {
		acc := parFormat[f]
		out = append(out, dto.StatsParFormatDTO{
			Format:            f,
			NombreProduits:    acc.nombre,
			PrixMoyenUnitaire: acc.totalPrix.Div(decimal.NewFromInt(int64(acc.nombre))).Round(2),
		})
	}
	return &dto.StatsParFormatResponse{ParFormat: out, TotalProduits: len(produits)}, nil
}

// Update met à jour les champs fournis. StockInitial n'est jamais modifiable:
// seul le grand livre fait évoluer le stock.
func (uc *UseCase) Update(code string, in dto.UpdateProduitRequest) (*dto.ProduitResponse, error) {
	produit, err := uc.produitRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}
	if in.NomProduit != nil {
		produit.NomProduit = *in.NomProduit
	}
	if in.Categorie != nil {
		produit.Categorie = *in.Categorie
	}
	if in.StockMinimum != nil {
		if *in.StockMinimum < 0 {
			return nil, domain.ErrInvalidInput
		}
		produit.StockMinimum = *in.StockMinimum
	}
	if in.PrixUnitaire != nil {
		if !in.PrixUnitaire.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		produit.PrixUnitaire = *in.PrixUnitaire
	}
	if in.Fournisseur != nil {
		produit.Fournisseur = *in.Fournisseur
	}
	produit.UpdatedAt = time.Now()
	if err := uc.produitRepo.Update(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// Delete supprime un produit. Refusé tant que des mouvements le référencent:
// le grand livre est append-only et ne doit jamais pointer dans le vide.
func (uc *UseCase) Delete(code string) error {
	produit, err := uc.produitRepo.GetByCode(code)
	if err != nil {
		return err
	}
	if produit == nil {
		return domain.ErrNotFound
	}
	n, err := uc.mouvementRepo.CountByProduit(code)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrProduitReference
	}
	return uc.produitRepo.Delete(code)
}

// Dashboard calcule les métriques catalogue du tableau de bord, sur la base
// des stocks dérivés du grand livre.
func (uc *UseCase) Dashboard() (*dto.DashboardProduitsResponse, error) {
	produits, err := uc.produitRepo.List()
	if err != nil {
		return nil, err
	}
	if len(produits) == 0 {
		return &dto.DashboardProduitsResponse{
			ProduitsParFormat: map[string]int{},
			PrixMoyenUnitaire: decimal.Zero,
			ValeurTotalStock:  decimal.Zero,
		}, nil
	}
	stocks, err := uc.calc.StockActuelTous()
	if err != nil {
		return nil, err
	}

	parFormat := map[string]int{}
	totalPrix := decimal.Zero
	totalStock := 0
	valeurTotale := decimal.Zero
	for _, p := range produits {
		parFormat[p.Format]++
		totalPrix = totalPrix.Add(p.PrixUnitaire)
		s := stocks[p.CodeProduit]
		totalStock += s
		valeurTotale = valeurTotale.Add(decimal.NewFromInt(int64(s)).Mul(p.PrixUnitaire))
	}
	n := len(produits)
	return &dto.DashboardProduitsResponse{
		TotalProduits:        n,
		ProduitsParFormat:    parFormat,
		PrixMoyenUnitaire:    totalPrix.Div(decimal.NewFromInt(int64(n))).Round(2),
		StockMoyenParProduit: int(math.Round(float64(totalStock) / float64(n))),
		ValeurTotalStock:     valeurTotale.Round(2),
	}, nil
}

func toProduitResponse(p *entity.Produit) *dto.ProduitResponse {
	return &dto.ProduitResponse{
		CodeProduit:  p.CodeProduit,
		NomProduit:   p.NomProduit,
		Format:       p.Format,
		Categorie:    p.Categorie,
		StockInitial: p.StockInitial,
		StockMinimum: p.StockMinimum,
		PrixUnitaire: p.PrixUnitaire,
		Fournisseur:  p.Fournisseur,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toListResponse(produits []*entity.Produit) *dto.ProduitListResponse {
	out := make([]dto.ProduitResponse, 0, len(produits))
	for _, p := range produits {
		out = append(out, *toProduitResponse(p))
	}
	return &dto.ProduitListResponse{Total: len(out), Produits: out}
}
