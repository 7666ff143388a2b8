package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// PaddyMilling records one milling run: paddy fed into the hopper and the
// resulting outputs. All quantities are quintals. The output columns that are
// zero simply produce no ledger entry, so a run can report anywhere from one
// to six stock movements.
type PaddyMilling struct {
	ID           int             `gorm:"primary_key" json:"id"`
	MillId       string          `gorm:"size:36;index;not null" json:"mill_id"`
	MillingDate  time.Time       `gorm:"not null" json:"milling_date"`
	PaddyVariety string          `gorm:"size:100" json:"paddy_variety"`
	HopperQty    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"hopper_qty"`
	RiceQty      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rice_qty"`
	KhandaQty    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"khanda_qty"`
	KodhaQty     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"kodha_qty"`
	BranQty      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"bran_qty"`
	HuskQty      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"husk_qty"`
	Remarks      string          `gorm:"size:255" json:"remarks"`
	CreatedBy    string          `gorm:"size:100" json:"created_by"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *PaddyMilling) GetMillId() string            { return m.MillId }
func (m *PaddyMilling) LedgerSourceKind() SourceKind { return SourceKindPaddyMilling }
func (m *PaddyMilling) LedgerSourceId() int          { return m.ID }

type NewPaddyMilling struct {
	MillingDate  string          `json:"milling_date" validate:"required"`
	PaddyVariety string          `json:"paddy_variety"`
	HopperQty    decimal.Decimal `json:"hopper_qty"`
	RiceQty      decimal.Decimal `json:"rice_qty"`
	KhandaQty    decimal.Decimal `json:"khanda_qty"`
	KodhaQty     decimal.Decimal `json:"kodha_qty"`
	BranQty      decimal.Decimal `json:"bran_qty"`
	HuskQty      decimal.Decimal `json:"husk_qty"`
	Remarks      string          `json:"remarks"`
}

func (input *NewPaddyMilling) validate() (time.Time, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return time.Time{}, err
	}
	for _, qty := range []decimal.Decimal{
		input.HopperQty, input.RiceQty, input.KhandaQty,
		input.KodhaQty, input.BranQty, input.HuskQty,
	} {
		if qty.IsNegative() {
			return time.Time{}, utils.NewValidationError("quantities must not be negative")
		}
	}
	return utils.ParseDate(input.MillingDate)
}

func CreatePaddyMilling(ctx context.Context, input *NewPaddyMilling) (*PaddyMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	millingDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	run := PaddyMilling{
		MillId:       millId,
		MillingDate:  millingDate,
		PaddyVariety: input.PaddyVariety,
		HopperQty:    input.HopperQty,
		RiceQty:      input.RiceQty,
		KhandaQty:    input.KhandaQty,
		KodhaQty:     input.KodhaQty,
		BranQty:      input.BranQty,
		HuskQty:      input.HuskQty,
		Remarks:      input.Remarks,
		CreatedBy:    userName,
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return utils.NewStorageError("create paddy milling", err)
		}
		if err := RecordLedgerEntries(tx, &run); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindPaddyMilling, run.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func UpdatePaddyMilling(ctx context.Context, id int, input *NewPaddyMilling) (*PaddyMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	millingDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	run, err := utils.FetchModel[PaddyMilling](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	run.MillingDate = millingDate
	run.PaddyVariety = input.PaddyVariety
	run.HopperQty = input.HopperQty
	run.RiceQty = input.RiceQty
	run.KhandaQty = input.KhandaQty
	run.KodhaQty = input.KodhaQty
	run.BranQty = input.BranQty
	run.HuskQty = input.HuskQty
	run.Remarks = input.Remarks

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Save(run).Error; err != nil {
			return utils.NewStorageError("update paddy milling", err)
		}
		if err := ReplaceLedgerEntries(tx, run); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindPaddyMilling, run.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func DeletePaddyMilling(ctx context.Context, id int) (*PaddyMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	run, err := utils.FetchModel[PaddyMilling](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(run).Error; err != nil {
			return utils.NewStorageError("delete paddy milling", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindPaddyMilling, run.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindPaddyMilling, run.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func GetPaddyMilling(ctx context.Context, id int) (*PaddyMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[PaddyMilling](ctx, millId, id)
}

func ListPaddyMillings(ctx context.Context, startDate, endDate *time.Time, page, limit int) (*PagedResult[PaddyMilling], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&PaddyMilling{}).Where("mill_id = ?", millId)
	if startDate != nil {
		dbCtx = dbCtx.Where("milling_date >= ?", *startDate)
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("milling_date <= ?", *endDate)
	}
	dbCtx = dbCtx.Order("milling_date DESC, id DESC")
	return PaginateQuery[PaddyMilling](dbCtx, page, limit)
}
