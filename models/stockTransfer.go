package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// StockTransfer moves stock out of this mill to another location (government
// depot, sister mill). Only the sending side is on this system, so the ledger
// sees a single debit. Weight captured at the weighbridge in kilograms.
type StockTransfer struct {
	ID           int             `gorm:"primary_key" json:"id"`
	MillId       string          `gorm:"size:36;index;not null" json:"mill_id"`
	TransferDate time.Time       `gorm:"not null" json:"transfer_date"`
	Destination  string          `gorm:"size:100" json:"destination"`
	Commodity    string          `gorm:"size:100" json:"commodity"`
	Variety      string          `gorm:"size:100" json:"variety"`
	WeightKg     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"weight_kg"`
	Bags         int             `gorm:"default:0" json:"bags"`
	TruckNumber  string          `gorm:"size:50" json:"truck_number"`
	Remarks      string          `gorm:"size:255" json:"remarks"`
	CreatedBy    string          `gorm:"size:100" json:"created_by"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *StockTransfer) GetMillId() string            { return t.MillId }
func (t *StockTransfer) LedgerSourceKind() SourceKind { return SourceKindStockTransfer }
func (t *StockTransfer) LedgerSourceId() int          { return t.ID }

type NewStockTransfer struct {
	TransferDate string          `json:"transfer_date" validate:"required"`
	Destination  string          `json:"destination"`
	Commodity    string          `json:"commodity"`
	Variety      string          `json:"variety"`
	WeightKg     decimal.Decimal `json:"weight_kg"`
	Bags         int             `json:"bags"`
	TruckNumber  string          `json:"truck_number"`
	Remarks      string          `json:"remarks"`
}

func (input *NewStockTransfer) validate() (time.Time, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return time.Time{}, err
	}
	if input.WeightKg.IsNegative() {
		return time.Time{}, utils.NewValidationError("weight must not be negative")
	}
	if input.Bags < 0 {
		return time.Time{}, utils.NewValidationError("bags must not be negative")
	}
	return utils.ParseDate(input.TransferDate)
}

func CreateStockTransfer(ctx context.Context, input *NewStockTransfer) (*StockTransfer, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	transferDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	transfer := StockTransfer{
		MillId:       millId,
		TransferDate: transferDate,
		Destination:  input.Destination,
		Commodity:    input.Commodity,
		Variety:      input.Variety,
		WeightKg:     input.WeightKg,
		Bags:         input.Bags,
		TruckNumber:  input.TruckNumber,
		Remarks:      input.Remarks,
		CreatedBy:    userName,
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&transfer).Error; err != nil {
			return utils.NewStorageError("create stock transfer", err)
		}
		if err := RecordLedgerEntries(tx, &transfer); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindStockTransfer, transfer.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

func UpdateStockTransfer(ctx context.Context, id int, input *NewStockTransfer) (*StockTransfer, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	transferDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	transfer, err := utils.FetchModel[StockTransfer](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	transfer.TransferDate = transferDate
	transfer.Destination = input.Destination
	transfer.Commodity = input.Commodity
	transfer.Variety = input.Variety
	transfer.WeightKg = input.WeightKg
	transfer.Bags = input.Bags
	transfer.TruckNumber = input.TruckNumber
	transfer.Remarks = input.Remarks

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Save(transfer).Error; err != nil {
			return utils.NewStorageError("update stock transfer", err)
		}
		if err := ReplaceLedgerEntries(tx, transfer); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindStockTransfer, transfer.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

func DeleteStockTransfer(ctx context.Context, id int) (*StockTransfer, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	transfer, err := utils.FetchModel[StockTransfer](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(transfer).Error; err != nil {
			return utils.NewStorageError("delete stock transfer", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindStockTransfer, transfer.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindStockTransfer, transfer.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

func GetStockTransfer(ctx context.Context, id int) (*StockTransfer, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[StockTransfer](ctx, millId, id)
}

func ListStockTransfers(ctx context.Context, startDate, endDate *time.Time, page, limit int) (*PagedResult[StockTransfer], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&StockTransfer{}).Where("mill_id = ?", millId)
	if startDate != nil {
		dbCtx = dbCtx.Where("transfer_date >= ?", *startDate)
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("transfer_date <= ?", *endDate)
	}
	dbCtx = dbCtx.Order("transfer_date DESC, id DESC")
	return PaginateQuery[StockTransfer](dbCtx, page, limit)
}
