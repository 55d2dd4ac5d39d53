package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Arnaud70/essikokoe/internal/application/dto"
	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
	"github.com/Arnaud70/essikokoe/pkg/validator"
)

// StockHandler gère les requêtes HTTP du grand livre de stock et de ses vues.
type StockHandler struct {
	ledger      *appstock.LedgerUseCase
	calc        *appstock.CalculatorUseCase
	aggregation *appstock.AggregationUseCase
	rapport     appstock.RapportGenerator
}

// NewStockHandler construit le handler.
func NewStockHandler(
	ledger *appstock.LedgerUseCase,
	calc *appstock.CalculatorUseCase,
	aggregation *appstock.AggregationUseCase,
	rapport appstock.RapportGenerator,
) *StockHandler {
	return &StockHandler{ledger: ledger, calc: calc, aggregation: aggregation, rapport: rapport}
}

// Entry godoc
// @Summary      Enregistrer une entrée de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntreeStockRequest  true  "codeProduit, quantite, format, motif"
// @Success      201   {object}  dto.EntreeStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/entry [post]
func (h *StockHandler) Entry(c *fiber.Ctx) error {
	var in dto.EntreeStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "details": details})
	}
	out, err := h.ledger.EnregistrerEntree(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Deduct godoc
// @Summary      Déduire du stock après une vente
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeduireStockRequest  true  "codeProduit, quantite, venteId"
// @Success      201   {object}  dto.DeduireStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/deduct [post]
func (h *StockHandler) Deduct(c *fiber.Ctx) error {
	var in dto.DeduireStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "details": details})
	}
	out, err := h.ledger.DeduireStock(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Inventory godoc
// @Summary      Inventaire complet avec stocks dérivés
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.InventaireResponse
// @Router       /api/stock/inventory [get]
func (h *StockHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.aggregation.Inventaire()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ByFormat godoc
// @Summary      Agrégats de stock par format de conditionnement
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockParFormatResponse
// @Router       /api/stock/by-format [get]
func (h *StockHandler) ByFormat(c *fiber.Ctx) error {
	out, err := h.aggregation.StockParFormat()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Critical godoc
// @Summary      Produits au niveau ou sous le seuil minimum
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StocksCritiquesResponse
// @Router       /api/stock/critical [get]
func (h *StockHandler) Critical(c *fiber.Ctx) error {
	out, err := h.aggregation.StocksCritiques()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Métriques de stock du tableau de bord
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStockResponse
// @Router       /api/stock/dashboard [get]
func (h *StockHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.aggregation.TableauDeBord()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historique des mouvements d'un produit
// @Tags         stock
// @Produce      json
// @Param        codeProduit  path  string  true  "Code produit"
// @Success      200  {object}  dto.MouvementsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/movements/{codeProduit} [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	out, err := h.calc.Historique(c.Params("codeProduit"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Rapport d'inventaire au format PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Router       /api/stock/inventory/pdf [get]
func (h *StockHandler) InventoryPDF(c *fiber.Ctx) error {
	inv, err := h.aggregation.Inventaire()
	if err != nil {
		return respondDomainError(c, err)
	}
	doc, err := h.rapport.GenererRapportInventaire(inv)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventaire.pdf"`)
	return c.Send(doc)
}
