package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// DailyInward is a gate entry for stock arriving at the mill. The weighbridge
// reading is in kilograms; the ledger quantity is quintals (kg / 100).
type DailyInward struct {
	ID            int             `gorm:"primary_key" json:"id"`
	MillId        string          `gorm:"size:36;index;not null" json:"mill_id"`
	EntryDate     time.Time       `gorm:"not null" json:"entry_date"`
	VehicleNumber string          `gorm:"size:50" json:"vehicle_number"`
	PartyName     string          `gorm:"size:100" json:"party_name"`
	Item          string          `gorm:"size:100" json:"item"`
	Variety       string          `gorm:"size:100" json:"variety"`
	WeightKg      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"weight_kg"`
	Bags          int             `gorm:"default:0" json:"bags"`
	Remarks       string          `gorm:"size:255" json:"remarks"`
	CreatedBy     string          `gorm:"size:100" json:"created_by"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *DailyInward) GetMillId() string            { return d.MillId }
func (d *DailyInward) LedgerSourceKind() SourceKind { return SourceKindDailyInward }
func (d *DailyInward) LedgerSourceId() int          { return d.ID }

type NewDailyInward struct {
	EntryDate     string          `json:"entry_date" validate:"required"`
	VehicleNumber string          `json:"vehicle_number"`
	PartyName     string          `json:"party_name"`
	Item          string          `json:"item"`
	Variety       string          `json:"variety"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	Bags          int             `json:"bags"`
	Remarks       string          `json:"remarks"`
}

func (input *NewDailyInward) validate() (time.Time, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return time.Time{}, err
	}
	if input.WeightKg.IsNegative() {
		return time.Time{}, utils.NewValidationError("weight must not be negative")
	}
	if input.Bags < 0 {
		return time.Time{}, utils.NewValidationError("bags must not be negative")
	}
	return utils.ParseDate(input.EntryDate)
}

func CreateDailyInward(ctx context.Context, input *NewDailyInward) (*DailyInward, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	entryDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	entry := DailyInward{
		MillId:        millId,
		EntryDate:     entryDate,
		VehicleNumber: input.VehicleNumber,
		PartyName:     input.PartyName,
		Item:          input.Item,
		Variety:       input.Variety,
		WeightKg:      input.WeightKg,
		Bags:          input.Bags,
		Remarks:       input.Remarks,
		CreatedBy:     userName,
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return utils.NewStorageError("create daily inward", err)
		}
		if err := RecordLedgerEntries(tx, &entry); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindDailyInward, entry.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func UpdateDailyInward(ctx context.Context, id int, input *NewDailyInward) (*DailyInward, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	entryDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	entry, err := utils.FetchModel[DailyInward](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	entry.EntryDate = entryDate
	entry.VehicleNumber = input.VehicleNumber
	entry.PartyName = input.PartyName
	entry.Item = input.Item
	entry.Variety = input.Variety
	entry.WeightKg = input.WeightKg
	entry.Bags = input.Bags
	entry.Remarks = input.Remarks

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Save(entry).Error; err != nil {
			return utils.NewStorageError("update daily inward", err)
		}
		if err := ReplaceLedgerEntries(tx, entry); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindDailyInward, entry.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteDailyInward(ctx context.Context, id int) (*DailyInward, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := utils.FetchModel[DailyInward](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(entry).Error; err != nil {
			return utils.NewStorageError("delete daily inward", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindDailyInward, entry.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindDailyInward, entry.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// BulkDeleteDailyInwards deletes each id in its own transaction, sequentially.
// Ids with no matching record are skipped. Not atomic across the batch: a
// failure mid-loop leaves earlier deletions committed.
func BulkDeleteDailyInwards(ctx context.Context, ids []int) (int, error) {
	deleted := 0
	for _, id := range utils.UniqueSlice(ids) {
		_, err := DeleteDailyInward(ctx, id)
		if err != nil {
			if utils.IsNotFoundError(err) {
				continue
			}
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func GetDailyInward(ctx context.Context, id int) (*DailyInward, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[DailyInward](ctx, millId, id)
}

func ListDailyInwards(ctx context.Context, startDate, endDate *time.Time, page, limit int) (*PagedResult[DailyInward], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&DailyInward{}).Where("mill_id = ?", millId)
	if startDate != nil {
		dbCtx = dbCtx.Where("entry_date >= ?", *startDate)
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("entry_date <= ?", *endDate)
	}
	dbCtx = dbCtx.Order("entry_date DESC, id DESC")
	return PaginateQuery[DailyInward](dbCtx, page, limit)
}
