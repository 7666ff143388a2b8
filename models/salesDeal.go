package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// SalesDeal is an agreement to sell stock out of the mill. Declared in
// quintals, same as purchase deals.
type SalesDeal struct {
	ID        int             `gorm:"primary_key" json:"id"`
	MillId    string          `gorm:"size:36;index;not null" json:"mill_id"`
	DealDate  time.Time       `gorm:"not null" json:"deal_date"`
	PartyName string          `gorm:"size:100;not null" json:"party_name"`
	Commodity string          `gorm:"size:100" json:"commodity"`
	Variety   string          `gorm:"size:100" json:"variety"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	Bags      int             `gorm:"default:0" json:"bags"`
	Rate      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Remarks   string          `gorm:"size:255" json:"remarks"`
	CreatedBy string          `gorm:"size:100" json:"created_by"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *SalesDeal) GetMillId() string            { return d.MillId }
func (d *SalesDeal) LedgerSourceKind() SourceKind { return SourceKindSalesDeal }
func (d *SalesDeal) LedgerSourceId() int          { return d.ID }

type NewSalesDeal struct {
	DealDate  string          `json:"deal_date" validate:"required"`
	PartyName string          `json:"party_name" validate:"required"`
	Commodity string          `json:"commodity"`
	Variety   string          `json:"variety"`
	Quantity  decimal.Decimal `json:"quantity"`
	Bags      int             `json:"bags"`
	Rate      decimal.Decimal `json:"rate"`
	Remarks   string          `json:"remarks"`
}

func (input *NewSalesDeal) validate() (time.Time, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return time.Time{}, err
	}
	if input.Quantity.IsNegative() {
		return time.Time{}, utils.NewValidationError("quantity must not be negative")
	}
	if input.Bags < 0 {
		return time.Time{}, utils.NewValidationError("bags must not be negative")
	}
	return utils.ParseDate(input.DealDate)
}

func CreateSalesDeal(ctx context.Context, input *NewSalesDeal) (*SalesDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dealDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	deal := SalesDeal{
		MillId:    millId,
		DealDate:  dealDate,
		PartyName: input.PartyName,
		Commodity: input.Commodity,
		Variety:   input.Variety,
		Quantity:  input.Quantity,
		Bags:      input.Bags,
		Rate:      input.Rate,
		Amount:    input.Quantity.Mul(input.Rate),
		Remarks:   input.Remarks,
		CreatedBy: userName,
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&deal).Error; err != nil {
			return utils.NewStorageError("create sales deal", err)
		}
		if err := RecordLedgerEntries(tx, &deal); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindSalesDeal, deal.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func UpdateSalesDeal(ctx context.Context, id int, input *NewSalesDeal) (*SalesDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dealDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	deal, err := utils.FetchModel[SalesDeal](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	deal.DealDate = dealDate
	deal.PartyName = input.PartyName
	deal.Commodity = input.Commodity
	deal.Variety = input.Variety
	deal.Quantity = input.Quantity
	deal.Bags = input.Bags
	deal.Rate = input.Rate
	deal.Amount = input.Quantity.Mul(input.Rate)
	deal.Remarks = input.Remarks

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Save(deal).Error; err != nil {
			return utils.NewStorageError("update sales deal", err)
		}
		if err := ReplaceLedgerEntries(tx, deal); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindSalesDeal, deal.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func DeleteSalesDeal(ctx context.Context, id int) (*SalesDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	deal, err := utils.FetchModel[SalesDeal](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(deal).Error; err != nil {
			return utils.NewStorageError("delete sales deal", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindSalesDeal, deal.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindSalesDeal, deal.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func GetSalesDeal(ctx context.Context, id int) (*SalesDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[SalesDeal](ctx, millId, id)
}

func ListSalesDeals(ctx context.Context, startDate, endDate *time.Time, page, limit int) (*PagedResult[SalesDeal], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&SalesDeal{}).Where("mill_id = ?", millId)
	if startDate != nil {
		dbCtx = dbCtx.Where("deal_date >= ?", *startDate)
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("deal_date <= ?", *endDate)
	}
	dbCtx = dbCtx.Order("deal_date DESC, id DESC")
	return PaginateQuery[SalesDeal](dbCtx, page, limit)
}
