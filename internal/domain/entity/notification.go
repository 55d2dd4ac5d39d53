package entity

import "time"

// NotificationStockFaible est le type d'alerte émis quand le stock dérivé
// passe au niveau ou sous le seuil minimum.
const NotificationStockFaible = "STOCK_FAIBLE"

// Notification est un enregistrement immuable créé en effet de bord d'une
// déduction critique. Lue par le collaborateur de livraison des notifications.
type Notification struct {
	ID          string
	Type        string
	Message     string
	CodeProduit string
	CreatedAt   time.Time
}
