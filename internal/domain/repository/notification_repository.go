package repository

import "github.com/Arnaud70/essikokoe/internal/domain/entity"

// NotificationRepository port des alertes de stock (append-only).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// List retourne les notifications les plus récentes d'abord.
	List(limit, offset int) ([]*entity.Notification, error)
	// ListByProduit retourne les notifications d'un produit, récentes d'abord.
	ListByProduit(code string) ([]*entity.Notification, error)
}
