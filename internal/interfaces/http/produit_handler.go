package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	"github.com/Arnaud70/essikokoe/internal/application/produits"
	"github.com/Arnaud70/essikokoe/pkg/validator"
)

// ProduitHandler gère les requêtes HTTP du catalogue produit.
type ProduitHandler struct {
	uc *produits.UseCase
}

// NewProduitHandler construit le handler.
func NewProduitHandler(uc *produits.UseCase) *ProduitHandler {
	return &ProduitHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un produit
// @Tags         produits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProduitRequest  true  "produit"
// @Success      201   {object}  dto.ProduitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produits [post]
func (h *ProduitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "details": details})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les produits
// @Tags         produits
// @Produce      json
// @Success      200  {object}  dto.ProduitListResponse
// @Router       /api/produits [get]
func (h *ProduitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Chercher des produits par code, nom ou fournisseur
// @Tags         produits
// @Produce      json
// @Param        q  query  string  true  "terme de recherche"
// @Success      200  {object}  dto.ProduitListResponse
// @Router       /api/produits/search [get]
func (h *ProduitHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paramètre q requis"})
	}
	out, err := h.uc.Search(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByFormat godoc
// @Summary      Lister les produits d'un format
// @Tags         produits
// @Produce      json
// @Param        format  path  string  true  "SACHET | BOUTEILLE | BONBONNE"
// @Success      200  {object}  dto.ProduitListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/format/{format} [get]
func (h *ProduitHandler) ListByFormat(c *fiber.Ctx) error {
	out, err := h.uc.ListByFormat(c.Params("format"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// StatsByFormat godoc
// @Summary      Statistiques catalogue par format
// @Tags         produits
// @Produce      json
// @Success      200  {object}  dto.StatsParFormatResponse
// @Router       /api/produits/stats/by-format [get]
func (h *ProduitHandler) StatsByFormat(c *fiber.Ctx) error {
	out, err := h.uc.StatsParFormat()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Détail d'un produit
// @Tags         produits
// @Produce      json
// @Param        codeProduit  path  string  true  "Code produit"
// @Success      200  {object}  dto.ProduitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/{codeProduit} [get]
func (h *ProduitHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Params("codeProduit"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour un produit (stock initial exclu)
// @Tags         produits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codeProduit  path  string                    true  "Code produit"
// @Param        body         body  dto.UpdateProduitRequest  true  "champs à modifier"
// @Success      200  {object}  dto.ProduitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/{codeProduit} [put]
func (h *ProduitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "details": details})
	}
	out, err := h.uc.Update(c.Params("codeProduit"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un produit sans mouvement
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        codeProduit  path  string  true  "Code produit"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/produits/{codeProduit} [delete]
func (h *ProduitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("codeProduit")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Produit supprimé avec succès"})
}

// Dashboard godoc
// @Summary      Métriques catalogue du tableau de bord
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardProduitsResponse
// @Router       /api/produits/dashboard/metrics [get]
func (h *ProduitHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
