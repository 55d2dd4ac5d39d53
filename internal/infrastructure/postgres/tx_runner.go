package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	appstock "github.com/Arnaud70/essikokoe/internal/application/stock"
	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
	"github.com/Arnaud70/essikokoe/pkg/metrics"
)

var _ appstock.TxRunner = (*TxRunner)(nil)

// maxTxAttempts borne le nombre de tentatives sur échec de sérialisation ou
// deadlock. Au-delà, domain.ErrConflict remonte au client.
const maxTxAttempts = 3

// TxRunner exécute des callbacks dans une transaction PostgreSQL avec repos
// liés à la transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repos liés à la tx et fait
// Commit ou Rollback. Les erreurs de sérialisation (40001) et de deadlock
// (40P01) sont rejouées jusqu'à maxTxAttempts fois; fn doit donc être
// ré-exécutable sans effet de bord hors transaction.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produitRepo repository.ProduitRepository,
	mouvementRepo repository.MouvementRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	return runWithRetry(func() error { return r.runOnce(ctx, fn) })
}

// runWithRetry rejoue attempt sur erreur rejouable, jusqu'à maxTxAttempts
// tentatives. Les autres erreurs remontent telles quelles dès la première.
func runWithRetry(attempt func() error) error {
	var lastErr error
	for i := 0; i < maxTxAttempts; i++ {
		err := attempt()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		metrics.ConflitsTransactionTotal.Inc()
		lastErr = err
	}
	return fmt.Errorf("%w: %v", domain.ErrConflict, lastErr)
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(
	produitRepo repository.ProduitRepository,
	mouvementRepo repository.MouvementRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	produitRepo := NewProduitRepository(tx)
	mouvementRepo := NewMouvementRepository(tx)
	notificationRepo := NewNotificationRepository(tx)

	if err := fn(produitRepo, mouvementRepo, notificationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 40001: serialization_failure, 40P01: deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
