package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Arnaud70/essikokoe/internal/application/auth"
	"github.com/Arnaud70/essikokoe/internal/application/notifications"
	"github.com/Arnaud70/essikokoe/internal/application/produits"
	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	Ledger         *appstock.LedgerUseCase
	Calculator     *appstock.CalculatorUseCase
	Aggregation    *appstock.AggregationUseCase
	Rapport        appstock.RapportGenerator
	ProduitUC      *produits.UseCase
	AuthUC         *auth.UseCase
	NotificationUC *notifications.UseCase
	JWTSecret      string
}

// Router enregistre les routes de l'API.
// Lectures du catalogue et du stock: publiques. Écritures du grand livre:
// ADMIN ou AGENT. Gestion du catalogue, tableaux de bord, PDF et comptes: ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	stockWriters := RequireRole(entity.RoleAdmin, entity.RoleAgent)

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Comptes (réservé ADMIN)
	api.Post("/users", authRequired, adminOnly, authHandler.CreateUser)

	// Catalogue produits
	produitsGroup := api.Group("/produits")
	produitHandler := NewProduitHandler(deps.ProduitUC)
	produitsGroup.Get("/", produitHandler.List)
	produitsGroup.Get("/search", produitHandler.Search)
	produitsGroup.Get("/format/:format", produitHandler.ListByFormat)
	produitsGroup.Get("/stats/by-format", produitHandler.StatsByFormat)
	produitsGroup.Get("/dashboard/metrics", authRequired, adminOnly, produitHandler.Dashboard)
	produitsGroup.Get("/:codeProduit", produitHandler.GetByCode)
	produitsGroup.Post("/", authRequired, adminOnly, produitHandler.Create)
	produitsGroup.Put("/:codeProduit", authRequired, adminOnly, produitHandler.Update)
	produitsGroup.Delete("/:codeProduit", authRequired, adminOnly, produitHandler.Delete)

	// Grand livre de stock et vues dérivées
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger, deps.Calculator, deps.Aggregation, deps.Rapport)
	stockGroup.Post("/entry", authRequired, stockWriters, stockHandler.Entry)
	stockGroup.Post("/deduct", authRequired, stockWriters, stockHandler.Deduct)
	stockGroup.Get("/inventory", stockHandler.Inventory)
	stockGroup.Get("/inventory/pdf", authRequired, adminOnly, stockHandler.InventoryPDF)
	stockGroup.Get("/by-format", stockHandler.ByFormat)
	stockGroup.Get("/critical", stockHandler.Critical)
	stockGroup.Get("/dashboard", authRequired, adminOnly, stockHandler.Dashboard)
	stockGroup.Get("/movements/:codeProduit", stockHandler.Movements)

	// Alertes de stock critique (ADMIN et AGENT)
	notificationsGroup := api.Group("/notifications", authRequired, stockWriters)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notificationsGroup.Get("/", notificationHandler.List)
	notificationsGroup.Get("/:codeProduit", notificationHandler.ListByProduit)
}
