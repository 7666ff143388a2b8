package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// LedgerEntry is one line of the inventory log: a stock-affecting event with a
// link back to the document that produced it. Entries are never written except
// through the recorder; there is no standalone create API.
type LedgerEntry struct {
	ID         int             `gorm:"primary_key" json:"id"`
	MillId     string          `gorm:"size:36;index;not null" json:"mill_id"`
	EntryDate  time.Time       `gorm:"index;not null" json:"entry_date"`
	Commodity  string          `gorm:"size:100;index;not null" json:"commodity"`
	Variety    string          `gorm:"size:100" json:"variety"`
	Direction  EntryDirection  `gorm:"size:10;not null" json:"direction"`
	Action     string          `gorm:"size:50;index;not null" json:"action"`
	Quantity   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Bags       int             `gorm:"default:0" json:"bags"`
	SourceKind SourceKind      `gorm:"size:30;index:idx_ledger_entries_source,priority:1;not null" json:"source_kind"`
	SourceId   int             `gorm:"index:idx_ledger_entries_source,priority:2;not null" json:"source_id"`
	Remarks    string          `gorm:"size:255" json:"remarks"`
	CreatedBy  string          `gorm:"size:100" json:"created_by"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// validate enforces type/range checks only; cross-record consistency is the
// recorder's job.
func (e *LedgerEntry) validate() error {
	if !e.Direction.Valid() {
		return utils.NewValidationError("unknown direction %q", string(e.Direction))
	}
	if !e.SourceKind.Valid() {
		return utils.NewValidationError("unknown source kind %q", string(e.SourceKind))
	}
	if e.Quantity.IsNegative() {
		return utils.NewValidationError("quantity must not be negative, got %s", e.Quantity)
	}
	if e.Bags < 0 {
		return utils.NewValidationError("bags must not be negative, got %d", e.Bags)
	}
	if e.MillId == "" {
		return utils.NewValidationError("mill id is required")
	}
	if e.Commodity == "" {
		return utils.NewValidationError("commodity is required")
	}
	return nil
}

/* store operations (no business logic) */

func insertLedgerEntries(tx *gorm.DB, entries []*LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return err
		}
	}
	if err := tx.Create(&entries).Error; err != nil {
		return utils.NewStorageError("insert ledger entries", err)
	}
	return nil
}

func updateLedgerEntry(tx *gorm.DB, entry *LedgerEntry, fields map[string]interface{}) error {
	if err := tx.Model(entry).Updates(fields).Error; err != nil {
		return utils.NewStorageError("update ledger entry", err)
	}
	return nil
}

// deleteLedgerEntriesBySource removes every entry owned by one source record.
// Deleting zero rows is a successful no-op.
func deleteLedgerEntriesBySource(tx *gorm.DB, millId string, kind SourceKind, sourceId int) error {
	err := tx.Where("mill_id = ? AND source_kind = ? AND source_id = ?", millId, kind, sourceId).
		Delete(&LedgerEntry{}).Error
	if err != nil {
		return utils.NewStorageError("delete ledger entries by source", err)
	}
	return nil
}

// deleteLedgerEntriesByIds removes entries by primary key. Deleting zero rows
// is a successful no-op.
func deleteLedgerEntriesByIds(tx *gorm.DB, millId string, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	err := tx.Where("mill_id = ? AND id IN ?", millId, ids).Delete(&LedgerEntry{}).Error
	if err != nil {
		return utils.NewStorageError("delete ledger entries by id", err)
	}
	return nil
}

func ledgerEntriesForSource(tx *gorm.DB, millId string, kind SourceKind, sourceId int) ([]*LedgerEntry, error) {
	var entries []*LedgerEntry
	err := tx.Where("mill_id = ? AND source_kind = ? AND source_id = ?", millId, kind, sourceId).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, utils.NewStorageError("fetch ledger entries by source", err)
	}
	return entries, nil
}

// LedgerEntryFilter narrows the raw entry listing. Zero values mean "no filter".
type LedgerEntryFilter struct {
	Commodity string
	Variety   string
	Direction EntryDirection
	Action    string
	StartDate *time.Time
	EndDate   *time.Time
}

// ListLedgerEntries returns one page of raw entries for the caller's mill,
// newest date first.
func ListLedgerEntries(ctx context.Context, filter LedgerEntryFilter, page, limit int) (*PagedResult[LedgerEntry], error) {
	millId, ok := utils.GetMillIdFromContext(ctx)
	if !ok || millId == "" {
		return nil, utils.NewValidationError("mill id is required")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&LedgerEntry{}).Where("mill_id = ?", millId)
	if filter.Commodity != "" {
		dbCtx = dbCtx.Where("commodity = ?", filter.Commodity)
	}
	if filter.Variety != "" {
		dbCtx = dbCtx.Where("variety = ?", filter.Variety)
	}
	if filter.Direction != "" {
		if !filter.Direction.Valid() {
			return nil, utils.NewValidationError("unknown direction %q", string(filter.Direction))
		}
		dbCtx = dbCtx.Where("direction = ?", filter.Direction)
	}
	if filter.Action != "" {
		dbCtx = dbCtx.Where("action = ?", filter.Action)
	}
	if filter.StartDate != nil {
		dbCtx = dbCtx.Where("entry_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		dbCtx = dbCtx.Where("entry_date <= ?", *filter.EndDate)
	}
	dbCtx = dbCtx.Order("entry_date DESC, id DESC")

	return PaginateQuery[LedgerEntry](dbCtx, page, limit)
}
