package models

import (
	"context"

	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// runSourceDocTx wraps a source-document mutation and its ledger/outbox writes
// in one DB transaction, so a propagated ledger failure rolls the document
// back with it.
func runSourceDocTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db := config.GetDB()
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return utils.NewStorageError("begin transaction", tx.Error)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return utils.NewStorageError("commit transaction", err)
	}
	return nil
}

func listScope(ctx context.Context) *gorm.DB {
	return config.GetDB().WithContext(ctx)
}

func millIdFromContext(ctx context.Context) (string, error) {
	millId, ok := utils.GetMillIdFromContext(ctx)
	if !ok || millId == "" {
		return "", utils.NewValidationError("mill id is required")
	}
	return millId, nil
}
