package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implémentation des alertes de stock sur PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construit l'adaptateur des notifications.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create enregistre une notification. L'ID est généré s'il est vide.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	query := `
		INSERT INTO notifications (id, type, message, code_produit, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Type, n.Message, n.CodeProduit, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// List retourne les notifications les plus récentes d'abord.
func (r *NotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, message, code_produit, created_at
		FROM notifications ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListByProduit retourne les notifications d'un produit, récentes d'abord.
func (r *NotificationRepo) ListByProduit(code string) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, message, code_produit, created_at
		FROM notifications WHERE code_produit = $1
		ORDER BY created_at DESC`
	return r.queryMany(query, code)
}

func (r *NotificationRepo) queryMany(query string, args ...any) ([]*entity.Notification, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.CodeProduit, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}
