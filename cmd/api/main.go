package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/Arnaud70/essikokoe/internal/application/auth"
	"github.com/Arnaud70/essikokoe/internal/application/notifications"
	"github.com/Arnaud70/essikokoe/internal/application/produits"
	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
	infrapdf "github.com/Arnaud70/essikokoe/internal/infrastructure/pdf"
	"github.com/Arnaud70/essikokoe/internal/infrastructure/postgres"
	httpRouter "github.com/Arnaud70/essikokoe/internal/interfaces/http"
	"github.com/Arnaud70/essikokoe/pkg/config"
	"github.com/Arnaud70/essikokoe/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	// Les prix sortent en nombres JSON, comme dans l'API existante.
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	produitRepo := postgres.NewProduitRepository(pool)
	mouvementRepo := postgres.NewMouvementRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	utilisateurRepo := postgres.NewUtilisateurRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := appstock.NewLedgerUseCase(txRunner)
	calculatorUC := appstock.NewCalculatorUseCase(produitRepo, mouvementRepo)
	aggregationUC := appstock.NewAggregationUseCase(produitRepo, calculatorUC)
	produitUC := produits.NewUseCase(produitRepo, mouvementRepo, calculatorUC)
	notificationUC := notifications.NewUseCase(notificationRepo)
	authUC := auth.NewUseCase(utilisateurRepo, cfg.JWT)
	rapportGenerator := infrapdf.NewMarotoRapportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Essi Kokoe API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:         ledgerUC,
		Calculator:     calculatorUC,
		Aggregation:    aggregationUC,
		Rapport:        rapportGenerator,
		ProduitUC:      produitUC,
		AuthUC:         authUC,
		NotificationUC: notificationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
