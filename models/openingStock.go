package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// OpeningStock seeds the ledger with stock that existed before the mill went
// on the system. Quantity in quintals.
type OpeningStock struct {
	ID        int             `gorm:"primary_key" json:"id"`
	MillId    string          `gorm:"size:36;index;not null" json:"mill_id"`
	StockDate time.Time       `gorm:"not null" json:"stock_date"`
	Commodity string          `gorm:"size:100;not null" json:"commodity"`
	Variety   string          `gorm:"size:100" json:"variety"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	Bags      int             `gorm:"default:0" json:"bags"`
	Remarks   string          `gorm:"size:255" json:"remarks"`
	CreatedBy string          `gorm:"size:100" json:"created_by"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *OpeningStock) GetMillId() string            { return s.MillId }
func (s *OpeningStock) LedgerSourceKind() SourceKind { return SourceKindOpeningStock }
func (s *OpeningStock) LedgerSourceId() int          { return s.ID }

type NewOpeningStock struct {
	StockDate string          `json:"stock_date" validate:"required"`
	Commodity string          `json:"commodity" validate:"required"`
	Variety   string          `json:"variety"`
	Quantity  decimal.Decimal `json:"quantity"`
	Bags      int             `json:"bags"`
	Remarks   string          `json:"remarks"`
}

func (input *NewOpeningStock) validate() (time.Time, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return time.Time{}, err
	}
	if input.Quantity.IsNegative() {
		return time.Time{}, utils.NewValidationError("quantity must not be negative")
	}
	if input.Bags < 0 {
		return time.Time{}, utils.NewValidationError("bags must not be negative")
	}
	return utils.ParseDate(input.StockDate)
}

func CreateOpeningStock(ctx context.Context, input *NewOpeningStock) (*OpeningStock, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	stockDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	stock := OpeningStock{
		MillId:    millId,
		StockDate: stockDate,
		Commodity: input.Commodity,
		Variety:   input.Variety,
		Quantity:  input.Quantity,
		Bags:      input.Bags,
		Remarks:   input.Remarks,
		CreatedBy: userName,
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&stock).Error; err != nil {
			return utils.NewStorageError("create opening stock", err)
		}
		if err := RecordLedgerEntries(tx, &stock); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindOpeningStock, stock.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func UpdateOpeningStock(ctx context.Context, id int, input *NewOpeningStock) (*OpeningStock, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	stockDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	stock, err := utils.FetchModel[OpeningStock](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	stock.StockDate = stockDate
	stock.Commodity = input.Commodity
	stock.Variety = input.Variety
	stock.Quantity = input.Quantity
	stock.Bags = input.Bags
	stock.Remarks = input.Remarks

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Save(stock).Error; err != nil {
			return utils.NewStorageError("update opening stock", err)
		}
		if err := ReplaceLedgerEntries(tx, stock); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindOpeningStock, stock.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func DeleteOpeningStock(ctx context.Context, id int) (*OpeningStock, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := utils.FetchModel[OpeningStock](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(stock).Error; err != nil {
			return utils.NewStorageError("delete opening stock", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindOpeningStock, stock.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindOpeningStock, stock.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func GetOpeningStock(ctx context.Context, id int) (*OpeningStock, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[OpeningStock](ctx, millId, id)
}

func ListOpeningStocks(ctx context.Context, page, limit int) (*PagedResult[OpeningStock], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&OpeningStock{}).
		Where("mill_id = ?", millId).
		Order("stock_date DESC, id DESC")
	return PaginateQuery[OpeningStock](dbCtx, page, limit)
}
