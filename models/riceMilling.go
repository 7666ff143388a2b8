package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// RiceMilling records a reprocessing run: raw rice fed back through the
// polisher. Quantities in quintals; zero output columns emit no entry.
type RiceMilling struct {
	ID          int             `gorm:"primary_key" json:"id"`
	MillId      string          `gorm:"size:36;index;not null" json:"mill_id"`
	MillingDate time.Time       `gorm:"not null" json:"milling_date"`
	RiceVariety string          `gorm:"size:100" json:"rice_variety"`
	InputQty    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"input_qty"`
	PolishedQty decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"polished_qty"`
	KhandaQty   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"khanda_qty"`
	BranQty     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"bran_qty"`
	Remarks     string          `gorm:"size:255" json:"remarks"`
	CreatedBy   string          `gorm:"size:100" json:"created_by"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *RiceMilling) GetMillId() string            { return m.MillId }
func (m *RiceMilling) LedgerSourceKind() SourceKind { return SourceKindRiceMilling }
func (m *RiceMilling) LedgerSourceId() int          { return m.ID }

type NewRiceMilling struct {
	MillingDate string          `json:"milling_date" validate:"required"`
	RiceVariety string          `json:"rice_variety"`
	InputQty    decimal.Decimal `json:"input_qty"`
	PolishedQty decimal.Decimal `json:"polished_qty"`
	KhandaQty   decimal.Decimal `json:"khanda_qty"`
	BranQty     decimal.Decimal `json:"bran_qty"`
	Remarks     string          `json:"remarks"`
}

func (input *NewRiceMilling) validate() (time.Time, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return time.Time{}, err
	}
	for _, qty := range []decimal.Decimal{
		input.InputQty, input.PolishedQty, input.KhandaQty, input.BranQty,
	} {
		if qty.IsNegative() {
			return time.Time{}, utils.NewValidationError("quantities must not be negative")
		}
	}
	return utils.ParseDate(input.MillingDate)
}

func CreateRiceMilling(ctx context.Context, input *NewRiceMilling) (*RiceMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	millingDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	run := RiceMilling{
		MillId:      millId,
		MillingDate: millingDate,
		RiceVariety: input.RiceVariety,
		InputQty:    input.InputQty,
		PolishedQty: input.PolishedQty,
		KhandaQty:   input.KhandaQty,
		BranQty:     input.BranQty,
		Remarks:     input.Remarks,
		CreatedBy:   userName,
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return utils.NewStorageError("create rice milling", err)
		}
		if err := RecordLedgerEntries(tx, &run); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindRiceMilling, run.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func UpdateRiceMilling(ctx context.Context, id int, input *NewRiceMilling) (*RiceMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	millingDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	run, err := utils.FetchModel[RiceMilling](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	run.MillingDate = millingDate
	run.RiceVariety = input.RiceVariety
	run.InputQty = input.InputQty
	run.PolishedQty = input.PolishedQty
	run.KhandaQty = input.KhandaQty
	run.BranQty = input.BranQty
	run.Remarks = input.Remarks

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Save(run).Error; err != nil {
			return utils.NewStorageError("update rice milling", err)
		}
		if err := ReplaceLedgerEntries(tx, run); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindRiceMilling, run.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func DeleteRiceMilling(ctx context.Context, id int) (*RiceMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	run, err := utils.FetchModel[RiceMilling](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(run).Error; err != nil {
			return utils.NewStorageError("delete rice milling", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindRiceMilling, run.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindRiceMilling, run.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func GetRiceMilling(ctx context.Context, id int) (*RiceMilling, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[RiceMilling](ctx, millId, id)
}

func ListRiceMillings(ctx context.Context, startDate, endDate *time.Time, page, limit int) (*PagedResult[RiceMilling], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&RiceMilling{}).Where("mill_id = ?", millId)
	if startDate != nil {
		dbCtx = dbCtx.Where("milling_date >= ?", *startDate)
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("milling_date <= ?", *endDate)
	}
	dbCtx = dbCtx.Order("milling_date DESC, id DESC")
	return PaginateQuery[RiceMilling](dbCtx, page, limit)
}
