// Package metrics expose les compteurs Prometheus du grand livre de stock,
// servis sur /metrics par le serveur HTTP.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MouvementsTotal compte les mouvements acceptés, par type (ENTREE/SORTIE).
	MouvementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "essikokoe_mouvements_stock_total",
			Help: "Nombre de mouvements de stock acceptés",
		},
		[]string{"type"},
	)

	// AlertesStockTotal compte les notifications STOCK_FAIBLE émises.
	AlertesStockTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "essikokoe_alertes_stock_total",
			Help: "Nombre de notifications de stock critique émises",
		},
	)

	// ConflitsTransactionTotal compte les transactions rejouées après un
	// conflit de sérialisation ou un deadlock.
	ConflitsTransactionTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "essikokoe_conflits_transaction_total",
			Help: "Nombre de transactions rejouées après conflit",
		},
	)
)
