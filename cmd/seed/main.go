// seed applique le schéma SQL initial et crée le compte administrateur par
// défaut s'il n'existe pas encore.
//
// Usage: go run ./cmd/seed
// Variables: DATABASE_URL (ou DB_HOST...), SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/infrastructure/postgres"
	"github.com/Arnaud70/essikokoe/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "charger la configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connexion à PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Schéma: toutes les migrations sont idempotentes (IF NOT EXISTS).
	migrationsDir := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations")
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lire les migrations: %v\n", err)
		os.Exit(1)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sql" {
			continue
		}
		sql, err := os.ReadFile(filepath.Join(migrationsDir, e.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "lire %s: %v\n", e.Name(), err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			fmt.Fprintf(os.Stderr, "appliquer %s: %v\n", e.Name(), err)
			os.Exit(1)
		}
		fmt.Printf("migration appliquée: %s\n", e.Name())
	}

	// Compte administrateur par défaut.
	email := envOr("SEED_ADMIN_EMAIL", "admin@essikokoe.com")
	password := envOr("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		fmt.Println("SEED_ADMIN_PASSWORD non défini: compte admin non créé")
		return
	}

	users := postgres.NewUtilisateurRepository(pool)
	existing, err := users.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vérifier le compte admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("compte admin déjà présent: %s\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hacher le mot de passe: %v\n", err)
		os.Exit(1)
	}
	now := time.Now()
	admin := &entity.Utilisateur{
		ID:             uuid.New().String(),
		Nom:            "Administrateur",
		Email:          email,
		MotDePasseHash: string(hash),
		Role:           entity.RoleAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := users.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "créer le compte admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("compte admin créé: %s\n", email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
