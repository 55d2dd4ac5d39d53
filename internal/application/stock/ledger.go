package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
	domainstock "github.com/Arnaud70/essikokoe/internal/domain/stock"
	"github.com/Arnaud70/essikokoe/pkg/metrics"
)

// LedgerUseCase enregistre les mouvements du grand livre de stock de façon
// transactionnelle. Chaque opération verrouille la ligne produit
// (SELECT FOR UPDATE), dérive le stock courant depuis les mouvements, vérifie
// les règles métier puis ajoute le mouvement, le tout dans une seule
// transaction avec Commit/Rollback. Deux déductions concurrentes sur le même
// produit se sérialisent donc sur le verrou: le stock dérivé ne peut jamais
// devenir négatif, quel que soit l'entrelacement.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construit le cas d'usage.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// EnregistrerEntree ajoute des unités au stock d'un produit (livraison,
// retour, etc.). Échoue si le produit est inconnu ou si le format déclaré ne
// correspond pas au produit (garde contre les erreurs de saisie).
func (uc *LedgerUseCase) EnregistrerEntree(ctx context.Context, in dto.EntreeStockRequest) (*dto.EntreeStockResponse, error) {
	if in.CodeProduit == "" || in.Quantite <= 0 || in.Motif == "" || !entity.FormatValide(in.Format) {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.EntreeStockResponse
	err := uc.txRunner.Run(ctx, func(
		produitRepo repository.ProduitRepository,
		mouvementRepo repository.MouvementRepository,
		_ repository.NotificationRepository,
	) error {
		produit, err := produitRepo.GetByCodeForUpdate(in.CodeProduit)
		if err != nil {
			return err
		}
		if produit == nil {
			return domain.ErrNotFound
		}
		if produit.Format != in.Format {
			return domain.ErrFormatMismatch
		}

		sommes, err := mouvementRepo.SommeParProduit(in.CodeProduit)
		if err != nil {
			return err
		}
		stockAvant := domainstock.Solde(produit.StockInitial, sommes.Entrees, sommes.Sorties)
		nouveauStock := stockAvant + in.Quantite

		if err := mouvementRepo.Create(&entity.MouvementStock{
			CodeProduit:   in.CodeProduit,
			Type:          entity.MouvementEntree,
			Quantite:      in.Quantite,
			Motif:         in.Motif,
			StockAvant:    stockAvant,
			StockApres:    nouveauStock,
			DateMouvement: time.Now(),
		}); err != nil {
			return err
		}

		resp = &dto.EntreeStockResponse{
			Message:         "Entrée de stock enregistrée avec succès",
			CodeProduit:     in.CodeProduit,
			QuantiteAjoutee: in.Quantite,
			NouveauStock:    nouveauStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.MouvementsTotal.WithLabelValues(entity.MouvementEntree).Inc()
	return resp, nil
}

// DeduireStock réduit le stock dès qu'une vente est confirmée. La vérification
// de suffisance et l'ajout de la SORTIE forment une seule opération logique:
// une déduction refusée n'ajoute aucun mouvement et n'émet aucune alerte.
// Le venteId est porté dans le motif pour la traçabilité; les re-soumissions
// d'une même vente ne sont pas dédupliquées (comportement du système existant).
func (uc *LedgerUseCase) DeduireStock(ctx context.Context, in dto.DeduireStockRequest) (*dto.DeduireStockResponse, error) {
	if in.CodeProduit == "" || in.Quantite <= 0 || in.VenteID == "" {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.DeduireStockResponse
	err := uc.txRunner.Run(ctx, func(
		produitRepo repository.ProduitRepository,
		mouvementRepo repository.MouvementRepository,
		notificationRepo repository.NotificationRepository,
	) error {
		produit, err := produitRepo.GetByCodeForUpdate(in.CodeProduit)
		if err != nil {
			return err
		}
		if produit == nil {
			return domain.ErrNotFound
		}

		sommes, err := mouvementRepo.SommeParProduit(in.CodeProduit)
		if err != nil {
			return err
		}
		stockAvant := domainstock.Solde(produit.StockInitial, sommes.Entrees, sommes.Sorties)
		if stockAvant < in.Quantite {
			return domain.ErrInsufficientStock
		}
		nouveauStock := stockAvant - in.Quantite

		if err := mouvementRepo.Create(&entity.MouvementStock{
			CodeProduit:   in.CodeProduit,
			Type:          entity.MouvementSortie,
			Quantite:      in.Quantite,
			Motif:         fmt.Sprintf("Vente %s", in.VenteID),
			StockAvant:    stockAvant,
			StockApres:    nouveauStock,
			DateMouvement: time.Now(),
		}); err != nil {
			return err
		}

		estCritique := domainstock.EstCritique(nouveauStock, produit.StockMinimum)
		if estCritique {
			// Alerte à chaque franchissement, sans déduplication: chaque
			// déduction qui laisse le produit sous le seuil notifie à nouveau.
			if err := notificationRepo.Create(&entity.Notification{
				Type: entity.NotificationStockFaible,
				Message: fmt.Sprintf(
					"⚠️ Stock critique pour %s (Code: %s). Stock actuel: %d, Minimum: %d",
					produit.NomProduit, produit.CodeProduit, nouveauStock, produit.StockMinimum,
				),
				CodeProduit: produit.CodeProduit,
				CreatedAt:   time.Now(),
			}); err != nil {
				return err
			}
		}

		resp = &dto.DeduireStockResponse{
			Message:         "Déduction de stock effectuée",
			CodeProduit:     in.CodeProduit,
			QuantiteDeduite: in.Quantite,
			NouveauStock:    nouveauStock,
			EstCritique:     estCritique,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.MouvementsTotal.WithLabelValues(entity.MouvementSortie).Inc()
	if resp.EstCritique {
		metrics.AlertesStockTotal.Inc()
	}
	return resp, nil
}
