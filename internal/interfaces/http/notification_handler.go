package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/application/notifications"
)

// NotificationHandler gère la lecture des alertes de stock.
type NotificationHandler struct {
	uc *notifications.UseCase
}

// NewNotificationHandler construit le handler.
func NewNotificationHandler(uc *notifications.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Lister les alertes de stock critique
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "taille de page (défaut 20, max 100)"
// @Param        offset  query  int  false  "décalage"
// @Success      200  {object}  dto.NotificationsResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pagination invalide"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduit godoc
// @Summary      Lister les alertes d'un produit
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        codeProduit  path  string  true  "Code produit"
// @Success      200  {object}  dto.NotificationsResponse
// @Router       /api/notifications/{codeProduit} [get]
func (h *NotificationHandler) ListByProduit(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduit(c.Params("codeProduit"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
