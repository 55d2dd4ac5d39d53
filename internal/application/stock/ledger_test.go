package stock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
)

func produitEau(code string, stockInitial, stockMinimum int) *entity.Produit {
	return &entity.Produit{
		CodeProduit:  code,
		NomProduit:   "Eau Pure 500ml",
		Format:       entity.FormatSachet,
		Categorie:    "EAU",
		StockInitial: stockInitial,
		StockMinimum: stockMinimum,
		PrixUnitaire: decimal.NewFromInt(100),
		Fournisseur:  "Essi Kokoe",
	}
}

func newLedger(produits ...*entity.Produit) (*appstock.LedgerUseCase, *memStore) {
	store := newMemStore(produits...)
	return appstock.NewLedgerUseCase(&memTxRunner{store: store}), store
}

func TestEnregistrerEntree_AugmenteLeStockDerive(t *testing.T) {
	ledger, store := newLedger(produitEau("EAU-500", 100, 10))

	out, err := ledger.EnregistrerEntree(context.Background(), dto.EntreeStockRequest{
		CodeProduit: "EAU-500",
		Quantite:    50,
		Format:      entity.FormatSachet,
		Motif:       "Livraison fournisseur",
	})
	require.NoError(t, err)

	assert.Equal(t, "Entrée de stock enregistrée avec succès", out.Message)
	assert.Equal(t, 50, out.QuantiteAjoutee)
	assert.Equal(t, 150, out.NouveauStock)

	mouvements := store.mouvementsPour("EAU-500")
	require.Len(t, mouvements, 1)
	assert.Equal(t, entity.MouvementEntree, mouvements[0].Type)
	assert.Equal(t, 100, mouvements[0].StockAvant)
	assert.Equal(t, 150, mouvements[0].StockApres)
}

func TestEnregistrerEntree_ProduitInconnu(t *testing.T) {
	ledger, _ := newLedger()

	_, err := ledger.EnregistrerEntree(context.Background(), dto.EntreeStockRequest{
		CodeProduit: "INCONNU",
		Quantite:    10,
		Format:      entity.FormatSachet,
		Motif:       "Livraison",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnregistrerEntree_FormatDiscordantLaisseLeStockIntact(t *testing.T) {
	ledger, store := newLedger(produitEau("EAU-500", 100, 10))

	_, err := ledger.EnregistrerEntree(context.Background(), dto.EntreeStockRequest{
		CodeProduit: "EAU-500",
		Quantite:    10,
		Format:      entity.FormatBonbonne, // le produit est en SACHET
		Motif:       "Livraison",
	})
	assert.ErrorIs(t, err, domain.ErrFormatMismatch)
	assert.Empty(t, store.mouvementsPour("EAU-500"), "aucun mouvement ne doit être ajouté")
}

func TestEnregistrerEntree_QuantiteInvalide(t *testing.T) {
	ledger, _ := newLedger(produitEau("EAU-500", 100, 10))

	for _, q := range []int{0, -5} {
		_, err := ledger.EnregistrerEntree(context.Background(), dto.EntreeStockRequest{
			CodeProduit: "EAU-500",
			Quantite:    q,
			Format:      entity.FormatSachet,
			Motif:       "Livraison",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantite %d", q)
	}
}

func TestDeduireStock_ReduitLeStockEtTraceLaVente(t *testing.T) {
	ledger, store := newLedger(produitEau("EAU-500", 100, 10))

	out, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
		CodeProduit: "EAU-500",
		Quantite:    30,
		VenteID:     "VTE-2024-001",
	})
	require.NoError(t, err)

	assert.Equal(t, "Déduction de stock effectuée", out.Message)
	assert.Equal(t, 70, out.NouveauStock)
	assert.False(t, out.EstCritique)

	mouvements := store.mouvementsPour("EAU-500")
	require.Len(t, mouvements, 1)
	assert.Equal(t, entity.MouvementSortie, mouvements[0].Type)
	assert.Equal(t, "Vente VTE-2024-001", mouvements[0].Motif)
	assert.Equal(t, 100, mouvements[0].StockAvant)
	assert.Equal(t, 70, mouvements[0].StockApres)
}

func TestDeduireStock_StockInsuffisantSansEffet(t *testing.T) {
	ledger, store := newLedger(produitEau("EAU-500", 20, 5))

	_, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
		CodeProduit: "EAU-500",
		Quantite:    21,
		VenteID:     "VTE-1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, store.mouvementsPour("EAU-500"), "une déduction refusée n'ajoute rien au grand livre")
	assert.Empty(t, store.notificationsPour("EAU-500"), "une déduction refusée n'émet pas d'alerte")
}

func TestDeduireStock_DeduireExactementLeStock(t *testing.T) {
	ledger, _ := newLedger(produitEau("EAU-500", 20, 0))

	out, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
		CodeProduit: "EAU-500",
		Quantite:    20,
		VenteID:     "VTE-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NouveauStock)
	assert.True(t, out.EstCritique, "stock 0 avec minimum 0 est critique (s <= min)")
}

func TestDeduireStock_FranchissementDuSeuilEmetUneAlerte(t *testing.T) {
	ledger, store := newLedger(produitEau("EAU-500", 120, 100))

	out, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
		CodeProduit: "EAU-500",
		Quantite:    30, // 120 -> 90, sous le minimum 100
		VenteID:     "VTE-1",
	})
	require.NoError(t, err)
	assert.True(t, out.EstCritique)

	notifications := store.notificationsPour("EAU-500")
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationStockFaible, notifications[0].Type)
	assert.Equal(t,
		"⚠️ Stock critique pour Eau Pure 500ml (Code: EAU-500). Stock actuel: 90, Minimum: 100",
		notifications[0].Message)
}

func TestDeduireStock_AuDessusDuSeuilSansAlerte(t *testing.T) {
	ledger, store := newLedger(produitEau("EAU-500", 180, 100))

	out, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
		CodeProduit: "EAU-500",
		Quantite:    30, // 180 -> 150, au-dessus du minimum 100
		VenteID:     "VTE-1",
	})
	require.NoError(t, err)
	assert.False(t, out.EstCritique)
	assert.Empty(t, store.notificationsPour("EAU-500"))
}

func TestDeduireStock_AlerteAChaqueDeductionSousLeSeuil(t *testing.T) {
	// Pas de déduplication: chaque déduction laissant le produit sous le seuil
	// notifie à nouveau, même pour un venteId déjà vu.
	ledger, store := newLedger(produitEau("EAU-500", 120, 100))

	for i := 0; i < 3; i++ {
		_, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
			CodeProduit: "EAU-500",
			Quantite:    5,
			VenteID:     "VTE-1",
		})
		require.NoError(t, err)
	}
	// 120 -> 115 (pas d'alerte), -> 110 (pas d'alerte), -> 105 (pas d'alerte)
	assert.Empty(t, store.notificationsPour("EAU-500"))

	for i := 0; i < 2; i++ {
		_, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
			CodeProduit: "EAU-500",
			Quantite:    5,
			VenteID:     "VTE-1",
		})
		require.NoError(t, err)
	}
	// -> 100 (critique), -> 95 (critique): deux alertes distinctes
	assert.Len(t, store.notificationsPour("EAU-500"), 2)
}

func TestDeduireStock_ConcurrenceExactementFloorSSurQ(t *testing.T) {
	// N déductions concurrentes de q unités sur un stock S: exactement
	// floor(S/q) réussissent, le reste échoue en stock insuffisant, et le
	// stock final vaut S mod q. Jamais de négatif, jamais de sur-vente.
	const (
		stockInitial = 100
		quantite     = 9
		concurrents  = 30
	)
	ledger, store := newLedger(produitEau("EAU-500", stockInitial, 0))

	var wg sync.WaitGroup
	errs := make(chan error, concurrents)
	for i := 0; i < concurrents; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.DeduireStock(context.Background(), dto.DeduireStockRequest{
				CodeProduit: "EAU-500",
				Quantite:    quantite,
				VenteID:     "VTE-CONC",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succes, insuffisants := 0, 0
	for err := range errs {
		if err == nil {
			succes++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
		insuffisants++
	}
	assert.Equal(t, stockInitial/quantite, succes, "exactement floor(S/q) déductions doivent réussir")
	assert.Equal(t, concurrents-stockInitial/quantite, insuffisants)

	mouvements := store.mouvementsPour("EAU-500")
	assert.Len(t, mouvements, succes)
	totalDeduit := 0
	for _, m := range mouvements {
		assert.GreaterOrEqual(t, m.StockApres, 0, "le stock dérivé ne doit jamais être négatif")
		totalDeduit += m.Quantite
	}
	assert.Equal(t, stockInitial-stockInitial%quantite, totalDeduit)
}

func TestGrandLivre_ConservationEntreesSorties(t *testing.T) {
	ledger, _ := newLedger(produitEau("EAU-500", 10, 0))
	ctx := context.Background()

	_, err := ledger.EnregistrerEntree(ctx, dto.EntreeStockRequest{
		CodeProduit: "EAU-500", Quantite: 40, Format: entity.FormatSachet, Motif: "Livraison",
	})
	require.NoError(t, err)
	_, err = ledger.DeduireStock(ctx, dto.DeduireStockRequest{
		CodeProduit: "EAU-500", Quantite: 15, VenteID: "VTE-1",
	})
	require.NoError(t, err)
	out, err := ledger.DeduireStock(ctx, dto.DeduireStockRequest{
		CodeProduit: "EAU-500", Quantite: 5, VenteID: "VTE-2",
	})
	require.NoError(t, err)

	// 10 + 40 - 15 - 5 = 30
	assert.Equal(t, 30, out.NouveauStock)
}
