package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// Reconciliation sweep. The recorder keeps ledger entries consistent on the
// happy path; this module repairs the cases it cannot cover, such as entries
// orphaned by a crash between retries or rows touched by manual SQL. Used by
// the outbox dispatcher (single source) and the rebuild command (whole mill).

func fetchSourceRecord[T any](tx *gorm.DB, millId string, id int) (*T, error) {
	var rec T
	err := tx.Where("mill_id = ?", millId).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.NewStorageError("fetch source record", err)
	}
	return &rec, nil
}

// fetchLedgerSource loads one source record as its adapter interface.
// Returns (nil, nil) when the record has been deleted.
func fetchLedgerSource(tx *gorm.DB, millId string, kind SourceKind, sourceId int) (LedgerSource, error) {
	switch kind {
	case SourceKindPurchaseDeal:
		rec, err := fetchSourceRecord[PurchaseDeal](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindSalesDeal:
		rec, err := fetchSourceRecord[SalesDeal](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindDailyInward:
		rec, err := fetchSourceRecord[DailyInward](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindDailyOutward:
		rec, err := fetchSourceRecord[DailyOutward](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindPaddyMilling:
		rec, err := fetchSourceRecord[PaddyMilling](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindRiceMilling:
		rec, err := fetchSourceRecord[RiceMilling](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindOpeningStock:
		rec, err := fetchSourceRecord[OpeningStock](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindStockAdjustment:
		rec, err := fetchSourceRecord[StockAdjustment](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	case SourceKindStockTransfer:
		rec, err := fetchSourceRecord[StockTransfer](tx, millId, sourceId)
		if rec == nil {
			return nil, err
		}
		return rec, err
	default:
		return nil, utils.NewValidationError("unknown source kind %q", string(kind))
	}
}

// ReapplyLedgerForSource re-derives the entries for one source record from its
// current state, regardless of what the ledger currently holds. A deleted
// record resolves to an unlink.
func ReapplyLedgerForSource(tx *gorm.DB, millId string, kind SourceKind, sourceId int) error {
	src, err := fetchLedgerSource(tx, millId, kind, sourceId)
	if err != nil {
		return err
	}
	if src == nil {
		return UnlinkLedgerEntries(tx, millId, kind, sourceId)
	}
	if err := deleteLedgerEntriesBySource(tx, millId, kind, sourceId); err != nil {
		return err
	}
	return RecordLedgerEntries(tx, src)
}

// LedgerDrift describes one source whose entries do not match what its
// adapter currently derives.
type LedgerDrift struct {
	SourceKind SourceKind `json:"source_kind"`
	SourceId   int        `json:"source_id"`
	Detail     string     `json:"detail"`
}

// LedgerRebuildReport summarizes one mill-wide sweep.
type LedgerRebuildReport struct {
	MillId         string        `json:"mill_id"`
	SourcesChecked int           `json:"sources_checked"`
	Drifts         []LedgerDrift `json:"drifts"`
	Repaired       bool          `json:"repaired"`
}

// specsMatchEntries reports whether the stored entries are exactly what the
// adapter derives now. Order is the insertion order on both sides.
func specsMatchEntries(specs []LedgerEntrySpec, entries []*LedgerEntry) (bool, string) {
	if len(specs) != len(entries) {
		return false, fmt.Sprintf("expected %d entries, found %d", len(specs), len(entries))
	}
	for i, spec := range specs {
		e := entries[i]
		if !e.EntryDate.Equal(utils.TruncateToDay(spec.EntryDate)) ||
			e.Commodity != spec.Commodity ||
			e.Variety != spec.Variety ||
			e.Direction != spec.Direction ||
			!e.Quantity.Equal(spec.Quantity) ||
			e.Bags != spec.Bags ||
			e.Action != spec.Action {
			return false, fmt.Sprintf("entry %d diverges from source", e.ID)
		}
	}
	return true, ""
}

func sweepKind(tx *gorm.DB, millId string, kind SourceKind, apply bool, report *LedgerRebuildReport) error {
	var sourceIds []int
	table := map[SourceKind]interface{}{
		SourceKindPurchaseDeal:    &PurchaseDeal{},
		SourceKindSalesDeal:       &SalesDeal{},
		SourceKindDailyInward:     &DailyInward{},
		SourceKindDailyOutward:    &DailyOutward{},
		SourceKindPaddyMilling:    &PaddyMilling{},
		SourceKindRiceMilling:     &RiceMilling{},
		SourceKindOpeningStock:    &OpeningStock{},
		SourceKindStockAdjustment: &StockAdjustment{},
		SourceKindStockTransfer:   &StockTransfer{},
	}[kind]
	err := tx.Model(table).Where("mill_id = ?", millId).Order("id").Pluck("id", &sourceIds).Error
	if err != nil {
		return utils.NewStorageError("list source ids", err)
	}

	for _, id := range sourceIds {
		report.SourcesChecked++
		src, err := fetchLedgerSource(tx, millId, kind, id)
		if err != nil {
			return err
		}
		if src == nil {
			// Record vanished since the id was listed; the orphan sweep
			// picks up whatever entries it left.
			continue
		}
		entries, err := ledgerEntriesForSource(tx, millId, kind, id)
		if err != nil {
			return err
		}
		ok, detail := specsMatchEntries(src.LedgerEntrySpecs(), entries)
		if ok {
			continue
		}
		report.Drifts = append(report.Drifts, LedgerDrift{SourceKind: kind, SourceId: id, Detail: detail})
		if apply {
			if err := ReapplyLedgerForSource(tx, millId, kind, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// sweepOrphans finds entries whose source record no longer exists.
func sweepOrphans(tx *gorm.DB, millId string, apply bool, report *LedgerRebuildReport) error {
	type sourceRef struct {
		SourceKind SourceKind
		SourceId   int
	}
	var refs []sourceRef
	err := tx.Model(&LedgerEntry{}).
		Distinct("source_kind", "source_id").
		Where("mill_id = ?", millId).
		Find(&refs).Error
	if err != nil {
		return utils.NewStorageError("list entry sources", err)
	}

	for _, ref := range refs {
		src, err := fetchLedgerSource(tx, millId, ref.SourceKind, ref.SourceId)
		if err != nil {
			return err
		}
		if src != nil {
			continue
		}
		report.Drifts = append(report.Drifts, LedgerDrift{
			SourceKind: ref.SourceKind,
			SourceId:   ref.SourceId,
			Detail:     "entries reference a deleted source record",
		})
		if apply {
			if err := UnlinkLedgerEntries(tx, millId, ref.SourceKind, ref.SourceId); err != nil {
				return err
			}
		}
	}
	return nil
}

// RebuildMillLedger re-derives every entry of one mill from its source
// documents. With apply=false it only reports drift; with apply=true the
// repairs run in one transaction, so a partial rebuild never commits.
func RebuildMillLedger(ctx context.Context, millId string, apply bool) (*LedgerRebuildReport, error) {
	if millId == "" {
		return nil, utils.NewValidationError("mill id is required")
	}
	report := &LedgerRebuildReport{MillId: millId, Repaired: apply}

	err := config.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, kind := range AllSourceKinds() {
			if err := sweepKind(tx, millId, kind, apply, report); err != nil {
				return err
			}
		}
		return sweepOrphans(tx, millId, apply, report)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
