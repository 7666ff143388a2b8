package models

import (
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// The recorder owns the referential-completeness contract: after any source
// document mutation, the entries matching (source kind, source id) must exactly
// represent that document's current stock effect. It is called from the source
// services inside their own DB transaction.

// RecordLedgerEntries derives entries from the source record and writes them.
// No-op when the adapter yields zero specs.
func RecordLedgerEntries(tx *gorm.DB, src LedgerSource) error {
	specs := src.LedgerEntrySpecs()
	if len(specs) == 0 {
		return nil
	}

	entries := make([]*LedgerEntry, 0, len(specs))
	actor := ""
	if ctx := tx.Statement.Context; ctx != nil {
		actor, _ = utils.GetUserNameFromContext(ctx)
	}
	for _, spec := range specs {
		entries = append(entries, &LedgerEntry{
			MillId:     src.GetMillId(),
			EntryDate:  utils.TruncateToDay(spec.EntryDate),
			Commodity:  spec.Commodity,
			Variety:    spec.Variety,
			Direction:  spec.Direction,
			Action:     spec.Action,
			Quantity:   spec.Quantity,
			Bags:       spec.Bags,
			SourceKind: src.LedgerSourceKind(),
			SourceId:   src.LedgerSourceId(),
			Remarks:    spec.Remarks,
			CreatedBy:  actor,
		})
	}

	return applyLedgerErrorPolicy(src.LedgerSourceKind(), "RecordLedgerEntries", insertLedgerEntries(tx, entries))
}

// ReplaceLedgerEntries brings the entry set in line with the updated source
// record. Fixed-shape kinds update their single entry's mutable fields in
// place; variable-shape kinds are delete-and-rerecorded because the set of
// non-zero outputs can change between versions.
func ReplaceLedgerEntries(tx *gorm.DB, src LedgerSource) error {
	kind := src.LedgerSourceKind()
	traits, ok := ledgerTraits(kind)
	if !ok {
		return utils.NewValidationError("unknown source kind %q", string(kind))
	}

	if !traits.FixedEntryShape {
		if err := deleteLedgerEntriesBySource(tx, src.GetMillId(), kind, src.LedgerSourceId()); err != nil {
			return applyLedgerErrorPolicy(kind, "ReplaceLedgerEntries", err)
		}
		return RecordLedgerEntries(tx, src)
	}

	specs := src.LedgerEntrySpecs()
	existing, err := ledgerEntriesForSource(tx, src.GetMillId(), kind, src.LedgerSourceId())
	if err != nil {
		return applyLedgerErrorPolicy(kind, "ReplaceLedgerEntries", err)
	}

	// The update removed the record's stock effect entirely.
	if len(specs) == 0 {
		if len(existing) == 0 {
			return nil
		}
		return applyLedgerErrorPolicy(kind, "ReplaceLedgerEntries",
			deleteLedgerEntriesBySource(tx, src.GetMillId(), kind, src.LedgerSourceId()))
	}

	// A fixed-shape record that previously had no stock effect gains one.
	if len(existing) == 0 {
		return RecordLedgerEntries(tx, src)
	}

	// A fixed-shape kind owns at most one entry; surplus rows can only come
	// from drift. Drop them before updating the canonical one.
	if len(existing) > 1 {
		surplus := make([]int, 0, len(existing)-1)
		for _, e := range existing[1:] {
			surplus = append(surplus, e.ID)
		}
		if err := deleteLedgerEntriesByIds(tx, src.GetMillId(), surplus); err != nil {
			return applyLedgerErrorPolicy(kind, "ReplaceLedgerEntries", err)
		}
	}

	spec := specs[0]
	if !spec.Direction.Valid() {
		return utils.NewValidationError("unknown direction %q", string(spec.Direction))
	}
	if spec.Quantity.IsNegative() {
		return utils.NewValidationError("quantity must not be negative, got %s", spec.Quantity)
	}
	err = updateLedgerEntry(tx, existing[0], map[string]interface{}{
		"EntryDate": utils.TruncateToDay(spec.EntryDate),
		"Commodity": spec.Commodity,
		"Variety":   spec.Variety,
		"Direction": spec.Direction,
		"Quantity":  spec.Quantity,
		"Bags":      spec.Bags,
		"Action":    spec.Action,
		"Remarks":   spec.Remarks,
	})
	return applyLedgerErrorPolicy(kind, "ReplaceLedgerEntries", err)
}

// UnlinkLedgerEntries deletes every entry for one source record. Idempotent:
// unlinking a record with no entries succeeds.
func UnlinkLedgerEntries(tx *gorm.DB, millId string, kind SourceKind, sourceId int) error {
	if !kind.Valid() {
		return utils.NewValidationError("unknown source kind %q", string(kind))
	}
	return applyLedgerErrorPolicy(kind, "UnlinkLedgerEntries",
		deleteLedgerEntriesBySource(tx, millId, kind, sourceId))
}

// UnlinkLedgerEntriesBulk unlinks one source id at a time. Sequential, not a
// single batch: a crash mid-loop leaves the remaining ids linked, which the
// rebuild sweep repairs. Do not assume atomicity across ids.
func UnlinkLedgerEntriesBulk(tx *gorm.DB, millId string, kind SourceKind, sourceIds []int) error {
	for _, id := range sourceIds {
		if err := UnlinkLedgerEntries(tx, millId, kind, id); err != nil {
			return err
		}
	}
	return nil
}

// applyLedgerErrorPolicy lets a kind configured as logAndContinue swallow
// StorageErrors only; validation and not-found errors always surface.
func applyLedgerErrorPolicy(kind SourceKind, funcName string, err error) error {
	if err == nil {
		return nil
	}
	traits, ok := ledgerTraits(kind)
	if !ok || traits.ErrorPolicy != LedgerErrorLogAndContinue {
		return err
	}
	if !utils.IsStorageError(err) {
		return err
	}
	config.LogError(config.GetLogger(), "ledgerRecorder.go", funcName, string(kind), nil, err)
	return nil
}
