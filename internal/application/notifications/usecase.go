// Package notifications expose la lecture des alertes de stock critique.
// Les alertes sont créées par le grand livre lors des déductions; ici on ne
// fait que les lister.
package notifications

import (
	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
)

// UseCase lecture des notifications.
type UseCase struct {
	repo repository.NotificationRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.NotificationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List retourne les notifications paginées, récentes d'abord.
func (uc *UseCase) List(page dto.PageRequest) (*dto.NotificationsResponse, error) {
	page.DefaultPage()
	notifications, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toResponse(notifications), nil
}

// ListByProduit retourne les notifications d'un produit, récentes d'abord.
func (uc *UseCase) ListByProduit(code string) (*dto.NotificationsResponse, error) {
	notifications, err := uc.repo.ListByProduit(code)
	if err != nil {
		return nil, err
	}
	return toResponse(notifications), nil
}

func toResponse(notifications []*entity.Notification) *dto.NotificationsResponse {
	out := make([]dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationDTO{
			ID:          n.ID,
			Type:        n.Type,
			Message:     n.Message,
			CodeProduit: n.CodeProduit,
			CreatedAt:   n.CreatedAt,
		})
	}
	return &dto.NotificationsResponse{Notifications: out, Total: len(out)}
}
