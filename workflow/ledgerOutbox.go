package workflow

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/models"
)

const (
	outboxBatchSize   = 50
	outboxMaxAttempts = 5
)

// ProcessLedgerOutbox confirms pending outbox intents. Each intent is settled
// in its own transaction: the source record's ledger entries are re-derived
// from its current state (a deleted record resolves to an unlink), then the
// intent is marked processed. Later intents for the same source make earlier
// confirmations redundant but never wrong, since every pass re-reads the
// record as it is now.
func ProcessLedgerOutbox(ctx context.Context) (int, error) {
	db := config.GetDB()
	pending, err := models.PendingLedgerOutbox(db.WithContext(ctx), outboxMaxAttempts, outboxBatchSize)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, record := range pending {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := models.ReapplyLedgerForSource(tx, record.MillId, record.SourceKind, record.SourceId); err != nil {
				return err
			}
			return models.MarkLedgerOutboxProcessed(tx, record)
		})
		if err != nil {
			config.LogError(config.GetLogger(), "ledgerOutbox.go", "ProcessLedgerOutbox",
				record.CorrelationId, record, err)
			if markErr := models.MarkLedgerOutboxFailed(db.WithContext(ctx), record, err); markErr != nil {
				return processed, markErr
			}
			continue
		}
		processed++
	}
	return processed, nil
}

// StartLedgerOutboxDispatcher runs ProcessLedgerOutbox on a fixed interval
// until ctx is cancelled. Call in its own goroutine.
func StartLedgerOutboxDispatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := ProcessLedgerOutbox(ctx); err != nil {
				config.LogError(config.GetLogger(), "ledgerOutbox.go", "StartLedgerOutboxDispatcher", "", nil, err)
			}
		}
	}
}
