package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// LedgerOutboxRecord is a transactional-outbox intent row: it is written in
// the same DB transaction as the source document mutation, then confirmed (and
// repaired if needed) asynchronously by the dispatcher. The synchronous ledger
// write normally succeeds in the same transaction; the outbox exists so drift
// from a suppressed or partial failure is detectable and repairable.
type LedgerOutboxRecord struct {
	ID            int          `gorm:"primary_key" json:"id"`
	MillId        string       `gorm:"size:36;index;not null" json:"mill_id"`
	SourceKind    SourceKind   `gorm:"size:30;index:idx_ledger_outbox_source,priority:1;not null" json:"source_kind"`
	SourceId      int          `gorm:"index:idx_ledger_outbox_source,priority:2;not null" json:"source_id"`
	Action        OutboxAction `gorm:"size:10;not null" json:"action"`
	IsProcessed   bool         `gorm:"not null;default:false;index" json:"is_processed"`
	Attempts      int          `gorm:"not null;default:0" json:"attempts"`
	LastError     string       `gorm:"size:500" json:"last_error"`
	CorrelationId string       `gorm:"size:64;index" json:"correlation_id"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	ProcessedAt   *time.Time   `json:"processed_at"`
}

// WriteLedgerOutbox records the intent inside the caller's transaction.
func WriteLedgerOutbox(ctx context.Context, tx *gorm.DB, millId string, kind SourceKind, sourceId int, action OutboxAction) error {
	record := LedgerOutboxRecord{
		MillId:        millId,
		SourceKind:    kind,
		SourceId:      sourceId,
		Action:        action,
		CorrelationId: correlationIdFromContextOrNew(ctx),
	}
	if err := tx.Create(&record).Error; err != nil {
		return utils.NewStorageError("write ledger outbox", err)
	}
	return nil
}

func correlationIdFromContextOrNew(ctx context.Context) string {
	if ctx != nil {
		if v, ok := utils.GetCorrelationIdFromContext(ctx); ok && v != "" {
			return v
		}
	}
	return uuid.NewString()
}

// PendingLedgerOutbox returns unprocessed intents below the attempt cap,
// oldest first.
func PendingLedgerOutbox(tx *gorm.DB, maxAttempts int, limit int) ([]*LedgerOutboxRecord, error) {
	var records []*LedgerOutboxRecord
	err := tx.Where("is_processed = ? AND attempts < ?", false, maxAttempts).
		Order("id").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, utils.NewStorageError("fetch pending outbox", err)
	}
	return records, nil
}

func MarkLedgerOutboxProcessed(tx *gorm.DB, record *LedgerOutboxRecord) error {
	now := time.Now().UTC()
	err := tx.Model(record).Updates(map[string]interface{}{
		"IsProcessed": true,
		"ProcessedAt": &now,
	}).Error
	if err != nil {
		return utils.NewStorageError("mark outbox processed", err)
	}
	return nil
}

func MarkLedgerOutboxFailed(tx *gorm.DB, record *LedgerOutboxRecord, cause error) error {
	msg := cause.Error()
	if len(msg) > 500 {
		msg = msg[:500]
	}
	err := tx.Model(record).Updates(map[string]interface{}{
		"Attempts":  record.Attempts + 1,
		"LastError": msg,
	}).Error
	if err != nil {
		return utils.NewStorageError("mark outbox failed", err)
	}
	return nil
}
