package stock

import (
	"context"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de BD, en passant des
// repositories liés à cette transaction. Garantit l'atomicité de la séquence
// lecture-vérification-ajout du grand livre: la vérification de stock et
// l'ajout du mouvement sont observés comme une seule opération logique.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produitRepo repository.ProduitRepository,
		mouvementRepo repository.MouvementRepository,
		notificationRepo repository.NotificationRepository,
	) error) error
}

// RapportGenerator produit le rapport d'inventaire imprimable.
type RapportGenerator interface {
	GenererRapportInventaire(inv *dto.InventaireResponse) ([]byte, error)
}
