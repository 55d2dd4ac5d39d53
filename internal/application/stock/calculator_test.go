package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
)

func newCalculator(produits ...*entity.Produit) (*appstock.CalculatorUseCase, *appstock.LedgerUseCase) {
	store := newMemStore(produits...)
	calc := appstock.NewCalculatorUseCase(&memProduitRepo{store: store}, &memMouvementRepo{store: store})
	ledger := appstock.NewLedgerUseCase(&memTxRunner{store: store})
	return calc, ledger
}

func TestStockActuel_SansMouvementEgalStockInitial(t *testing.T) {
	calc, _ := newCalculator(produitEau("EAU-500", 75, 10))

	s, err := calc.StockActuel("EAU-500")
	require.NoError(t, err)
	assert.Equal(t, 75, s)
}

func TestStockActuel_ProduitInconnu(t *testing.T) {
	calc, _ := newCalculator()

	_, err := calc.StockActuel("INCONNU")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockActuel_DeriveDesEntreesEtSorties(t *testing.T) {
	calc, ledger := newCalculator(produitEau("EAU-500", 10, 0))
	ctx := context.Background()

	_, err := ledger.EnregistrerEntree(ctx, dto.EntreeStockRequest{
		CodeProduit: "EAU-500", Quantite: 40, Format: entity.FormatSachet, Motif: "Livraison",
	})
	require.NoError(t, err)
	_, err = ledger.DeduireStock(ctx, dto.DeduireStockRequest{
		CodeProduit: "EAU-500", Quantite: 25, VenteID: "VTE-1",
	})
	require.NoError(t, err)

	s, err := calc.StockActuel("EAU-500")
	require.NoError(t, err)
	assert.Equal(t, 25, s)
}

func TestStockActuel_Idempotent(t *testing.T) {
	calc, _ := newCalculator(produitEau("EAU-500", 42, 0))

	s1, err := calc.StockActuel("EAU-500")
	require.NoError(t, err)
	s2, err := calc.StockActuel("EAU-500")
	require.NoError(t, err)
	assert.Equal(t, s1, s2, "recalculer sans nouveau mouvement donne la même valeur")
}

func TestStockActuelTous_CoherentAvecLeCalculUnitaire(t *testing.T) {
	calc, ledger := newCalculator(
		produitEau("EAU-1", 10, 0),
		produitEau("EAU-2", 20, 0),
		produitEau("EAU-3", 30, 0),
	)
	ctx := context.Background()

	_, err := ledger.EnregistrerEntree(ctx, dto.EntreeStockRequest{
		CodeProduit: "EAU-2", Quantite: 15, Format: entity.FormatSachet, Motif: "Livraison",
	})
	require.NoError(t, err)
	_, err = ledger.DeduireStock(ctx, dto.DeduireStockRequest{
		CodeProduit: "EAU-3", Quantite: 12, VenteID: "VTE-1",
	})
	require.NoError(t, err)

	tous, err := calc.StockActuelTous()
	require.NoError(t, err)
	require.Len(t, tous, 3)

	for code, attendu := range tous {
		unitaire, err := calc.StockActuel(code)
		require.NoError(t, err)
		assert.Equal(t, attendu, unitaire, "produit %s", code)
	}
	assert.Equal(t, 10, tous["EAU-1"])
	assert.Equal(t, 35, tous["EAU-2"])
	assert.Equal(t, 18, tous["EAU-3"])
}

func TestHistorique_OrdreEtStocksAudit(t *testing.T) {
	calc, ledger := newCalculator(produitEau("EAU-500", 100, 0))
	ctx := context.Background()

	_, err := ledger.EnregistrerEntree(ctx, dto.EntreeStockRequest{
		CodeProduit: "EAU-500", Quantite: 50, Format: entity.FormatSachet, Motif: "Livraison",
	})
	require.NoError(t, err)
	_, err = ledger.DeduireStock(ctx, dto.DeduireStockRequest{
		CodeProduit: "EAU-500", Quantite: 30, VenteID: "VTE-9",
	})
	require.NoError(t, err)

	hist, err := calc.Historique("EAU-500")
	require.NoError(t, err)
	require.Equal(t, 2, hist.Total)

	entree := hist.Mouvements[0]
	assert.Equal(t, entity.MouvementEntree, entree.Type)
	assert.Equal(t, 100, entree.StockAvant)
	assert.Equal(t, 150, entree.StockApres)
	assert.Equal(t, "Eau Pure 500ml", entree.NomProduit)

	sortie := hist.Mouvements[1]
	assert.Equal(t, entity.MouvementSortie, sortie.Type)
	assert.Equal(t, "Vente VTE-9", sortie.Motif)
	assert.Equal(t, 150, sortie.StockAvant)
	assert.Equal(t, 120, sortie.StockApres)
}

func TestHistorique_ProduitInconnu(t *testing.T) {
	calc, _ := newCalculator()

	_, err := calc.Historique("INCONNU")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
