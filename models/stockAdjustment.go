package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// StockAdjustment is a manual correction after a physical count. Whether it
// credits or debits the ledger follows AdjustmentType.
type StockAdjustment struct {
	ID             int             `gorm:"primary_key" json:"id"`
	MillId         string          `gorm:"size:36;index;not null" json:"mill_id"`
	AdjustmentDate time.Time       `gorm:"not null" json:"adjustment_date"`
	AdjustmentType AdjustmentType  `gorm:"size:20;not null" json:"adjustment_type"`
	Commodity      string          `gorm:"size:100;not null" json:"commodity"`
	Variety        string          `gorm:"size:100" json:"variety"`
	Quantity       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	Bags           int             `gorm:"default:0" json:"bags"`
	Reason         string          `gorm:"size:255" json:"reason"`
	CreatedBy      string          `gorm:"size:100" json:"created_by"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *StockAdjustment) GetMillId() string            { return a.MillId }
func (a *StockAdjustment) LedgerSourceKind() SourceKind { return SourceKindStockAdjustment }
func (a *StockAdjustment) LedgerSourceId() int          { return a.ID }

type NewStockAdjustment struct {
	AdjustmentDate string          `json:"adjustment_date" validate:"required"`
	AdjustmentType AdjustmentType  `json:"adjustment_type" validate:"required,oneof=Increase Decrease"`
	Commodity      string          `json:"commodity" validate:"required"`
	Variety        string          `json:"variety"`
	Quantity       decimal.Decimal `json:"quantity"`
	Bags           int             `json:"bags"`
	Reason         string          `json:"reason"`
}

func (input *NewStockAdjustment) validate() (time.Time, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return time.Time{}, err
	}
	if input.Quantity.IsNegative() {
		return time.Time{}, utils.NewValidationError("quantity must not be negative")
	}
	if input.Bags < 0 {
		return time.Time{}, utils.NewValidationError("bags must not be negative")
	}
	return utils.ParseDate(input.AdjustmentDate)
}

func CreateStockAdjustment(ctx context.Context, input *NewStockAdjustment) (*StockAdjustment, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	adjDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	adj := StockAdjustment{
		MillId:         millId,
		AdjustmentDate: adjDate,
		AdjustmentType: input.AdjustmentType,
		Commodity:      input.Commodity,
		Variety:        input.Variety,
		Quantity:       input.Quantity,
		Bags:           input.Bags,
		Reason:         input.Reason,
		CreatedBy:      userName,
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&adj).Error; err != nil {
			return utils.NewStorageError("create stock adjustment", err)
		}
		if err := RecordLedgerEntries(tx, &adj); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindStockAdjustment, adj.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &adj, nil
}

func UpdateStockAdjustment(ctx context.Context, id int, input *NewStockAdjustment) (*StockAdjustment, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	adjDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	adj, err := utils.FetchModel[StockAdjustment](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	adj.AdjustmentDate = adjDate
	adj.AdjustmentType = input.AdjustmentType
	adj.Commodity = input.Commodity
	adj.Variety = input.Variety
	adj.Quantity = input.Quantity
	adj.Bags = input.Bags
	adj.Reason = input.Reason

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Save(adj).Error; err != nil {
			return utils.NewStorageError("update stock adjustment", err)
		}
		if err := ReplaceLedgerEntries(tx, adj); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindStockAdjustment, adj.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return adj, nil
}

func DeleteStockAdjustment(ctx context.Context, id int) (*StockAdjustment, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	adj, err := utils.FetchModel[StockAdjustment](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(adj).Error; err != nil {
			return utils.NewStorageError("delete stock adjustment", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindStockAdjustment, adj.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindStockAdjustment, adj.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return adj, nil
}

func GetStockAdjustment(ctx context.Context, id int) (*StockAdjustment, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[StockAdjustment](ctx, millId, id)
}

func ListStockAdjustments(ctx context.Context, startDate, endDate *time.Time, page, limit int) (*PagedResult[StockAdjustment], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&StockAdjustment{}).Where("mill_id = ?", millId)
	if startDate != nil {
		dbCtx = dbCtx.Where("adjustment_date >= ?", *startDate)
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("adjustment_date <= ?", *endDate)
	}
	dbCtx = dbCtx.Order("adjustment_date DESC, id DESC")
	return PaginateQuery[StockAdjustment](dbCtx, page, limit)
}
