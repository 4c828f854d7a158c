package worker

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

var leadsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "leads_by_status",
		Help: "Current number of leads per funnel status",
	},
	[]string{"status"},
)

// LeadStatsWorker varre o banco periodicamente e publica o tamanho de cada
// estágio do funil como gauge. Leitura pura: nenhum write, nenhuma automação.
type LeadStatsWorker struct {
	db           *sql.DB
	tickInterval time.Duration
}

func NewLeadStatsWorker(db *sql.DB) *LeadStatsWorker {
	return &LeadStatsWorker{
		db:           db,
		tickInterval: 1 * time.Minute,
	}
}

func (w *LeadStatsWorker) Start(ctx context.Context) {
	log.Println("🕒 Lead stats worker iniciado (1min tick)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Lead stats worker encerrado")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *LeadStatsWorker) sweep(ctx context.Context) {
	rows, err := w.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		log.Printf("⚠️ [STATS] Falha na varredura: %v", err)
		return
	}
	defer rows.Close()

	scanned := map[string]float64{}
	for rows.Next() {
		var status string
		var count float64
		if err := rows.Scan(&status, &count); err != nil {
			log.Printf("⚠️ [STATS] Scan falhou: %v", err)
			return
		}
		scanned[status] = count
	}

	for status, count := range fullFunnel(scanned) {
		leadsByStatus.WithLabelValues(status).Set(count)
	}
}

// fullFunnel completa a varredura com zeros: status que zerou some do
// GROUP BY e sem o reset o gauge congelaria no último valor não nulo.
func fullFunnel(scanned map[string]float64) map[string]float64 {
	counts := make(map[string]float64, len(entity.LeadStatuses))
	for _, status := range entity.LeadStatuses {
		counts[status] = scanned[status]
	}
	return counts
}
