package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
)

// defaultReconcileInterval is how often the reconciler sweeps the
// encrypted-dataset table when no interval is configured.
const defaultReconcileInterval = 15 * time.Minute

// Reconciler periodically surfaces encrypted-dataset records whose mint
// transaction was never confirmed: uploads that exist in the database and on
// the pinning network but still have no token ID attached. It only reports;
// attaching the token remains an explicit finalize call, because the token
// ID is known client-side only.
type Reconciler struct {
	records  store.EncryptedDatasetRepository
	interval time.Duration

	logger *logger.Logger
}

func NewReconciler(records store.EncryptedDatasetRepository, interval time.Duration, logger *logger.Logger) *Reconciler {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}

	return &Reconciler{
		records:  records,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately.
func (r *Reconciler) Run() {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for range ticker.C {
			r.sweep(context.Background())
		}
	}()
}

// sweep performs one pass over the unfinalized records and logs a summary.
func (r *Reconciler) sweep(ctx context.Context) {
	records, err := r.records.ListUnfinalized(ctx)
	if err != nil {
		r.logger.Err(err).Msg("reconciler sweep failed")
		return
	}

	if len(records) == 0 {
		r.logger.Debug().Msg("reconciler sweep: no unfinalized records")
		return
	}

	for _, record := range records {
		r.logger.Warn().
			Str("cid", record.CID).
			Str("name", record.Name).
			Time("uploaded_at", record.CreatedAt).
			Msg("encrypted dataset awaiting finalize")
	}

	r.logger.Info().Int("count", len(records)).Msg("reconciler sweep finished")
}
