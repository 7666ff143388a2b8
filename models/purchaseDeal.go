package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/utils"
)

// PurchaseDeal is an agreement to buy stock into the mill. Quantity is
// declared in quintals by the parties, no unit conversion.
type PurchaseDeal struct {
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

func (d *PurchaseDeal) GetMillId() string            { return d.MillId }
func (d *PurchaseDeal) LedgerSourceKind() SourceKind { return SourceKindPurchaseDeal }
func (d *PurchaseDeal) LedgerSourceId() int          { return d.ID }

type NewPurchaseDeal struct {
	DealDate  string          `json:"deal_date" validate:"required"`
	PartyName string          `json:"party_name" validate:"required"`
	Commodity string          `json:"commodity"`
	Variety   string          `json:"variety"`
	Quantity  decimal.Decimal `json:"quantity"`
	Bags      int             `json:"bags"`
	Rate      decimal.Decimal `json:"rate"`
	Remarks   string          `json:"remarks"`
}

func (input *NewPurchaseDeal) validate() (time.Time, error) {
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

func CreatePurchaseDeal(ctx context.Context, input *NewPurchaseDeal) (*PurchaseDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dealDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	userName, _ := utils.GetUserNameFromContext(ctx)
	deal := PurchaseDeal{
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
			return utils.NewStorageError("create purchase deal", err)
		}
		if err := RecordLedgerEntries(tx, &deal); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindPurchaseDeal, deal.ID, OutboxActionCreate)
	})
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func UpdatePurchaseDeal(ctx context.Context, id int, input *NewPurchaseDeal) (*PurchaseDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dealDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	deal, err := utils.FetchModel[PurchaseDeal](ctx, millId, id)
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
			return utils.NewStorageError("update purchase deal", err)
		}
		if err := ReplaceLedgerEntries(tx, deal); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindPurchaseDeal, deal.ID, OutboxActionUpdate)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func DeletePurchaseDeal(ctx context.Context, id int) (*PurchaseDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	deal, err := utils.FetchModel[PurchaseDeal](ctx, millId, id)
	if err != nil {
		return nil, err
	}

	err = runSourceDocTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(deal).Error; err != nil {
			return utils.NewStorageError("delete purchase deal", err)
		}
		if err := UnlinkLedgerEntries(tx, millId, SourceKindPurchaseDeal, deal.ID); err != nil {
			return err
		}
		return WriteLedgerOutbox(ctx, tx, millId, SourceKindPurchaseDeal, deal.ID, OutboxActionDelete)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func GetPurchaseDeal(ctx context.Context, id int) (*PurchaseDeal, error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FetchModel[PurchaseDeal](ctx, millId, id)
}

func ListPurchaseDeals(ctx context.Context, startDate, endDate *time.Time, page, limit int) (*PagedResult[PurchaseDeal], error) {
	millId, err := millIdFromContext(ctx)
	if err != nil {
		return nil, err
	}
	dbCtx := listScope(ctx).Model(&PurchaseDeal{}).Where("mill_id = ?", millId)
	if startDate != nil {
		dbCtx = dbCtx.Where("deal_date >= ?", *startDate)
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("deal_date <= ?", *endDate)
	}
	dbCtx = dbCtx.Order("deal_date DESC, id DESC")
	return PaginateQuery[PurchaseDeal](dbCtx, page, limit)
}
