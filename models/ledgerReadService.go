package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// Read-side aggregation. Every query recomputes from the full matching entry
// set; there is no maintained running balance to go stale.

type LedgerBalanceRow struct {
	Commodity string          `json:"commodity"`
	Variety   string          `json:"variety"`
	Balance   decimal.Decimal `json:"balance"`
}

type LedgerSummary struct {
	EntryCount  int64           `json:"entryCount"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	Net         decimal.Decimal `json:"net"`
}

type LedgerActionRow struct {
	Commodity  string          `json:"commodity"`
	EntryCount int64           `json:"entryCount"`
	CreditQty  decimal.Decimal `json:"creditQty"`
	DebitQty   decimal.Decimal `json:"debitQty"`
	NetQty     decimal.Decimal `json:"netQty"`
}

func ledgerScope(ctx context.Context) (*gorm.DB, error) {
	millId, ok := utils.GetMillIdFromContext(ctx)
	if !ok || millId == "" {
		return nil, utils.NewValidationError("mill id is required")
	}
	db := config.GetDB()
	return db.WithContext(ctx).Model(&LedgerEntry{}).Where("mill_id = ?", millId), nil
}

// GetLedgerBalance returns the net signed quantity per (commodity, variety)
// over all entries dated on or before asOf. Groups with no entries are absent;
// no zero rows are synthesized.
func GetLedgerBalance(ctx context.Context, asOf time.Time, commodity string, variety string) ([]*LedgerBalanceRow, error) {
	dbCtx, err := ledgerScope(ctx)
	if err != nil {
		return nil, err
	}

	dbCtx = dbCtx.Where("entry_date <= ?", utils.TruncateToDay(asOf))
	if commodity != "" {
		dbCtx = dbCtx.Where("commodity = ?", commodity)
	}
	if variety != "" {
		dbCtx = dbCtx.Where("variety = ?", variety)
	}

	var rows []*LedgerBalanceRow
	err = dbCtx.
		Select("commodity, variety, SUM(CASE WHEN direction = ? THEN quantity ELSE -quantity END) AS balance", DirectionCredit).
		Group("commodity, variety").
		Order("commodity, variety").
		Scan(&rows).Error
	if err != nil {
		return nil, utils.NewStorageError("ledger balance", err)
	}
	return rows, nil
}

// GetLedgerSummary returns entry count, credit and debit totals and the net
// over the filtered window.
func GetLedgerSummary(ctx context.Context, startDate, endDate *time.Time, commodity string, variety string) (*LedgerSummary, error) {
	dbCtx, err := ledgerScope(ctx)
	if err != nil {
		return nil, err
	}

	if startDate != nil {
		dbCtx = dbCtx.Where("entry_date >= ?", utils.TruncateToDay(*startDate))
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("entry_date <= ?", utils.TruncateToDay(*endDate))
	}
	if commodity != "" {
		dbCtx = dbCtx.Where("commodity = ?", commodity)
	}
	if variety != "" {
		dbCtx = dbCtx.Where("variety = ?", variety)
	}

	var summary LedgerSummary
	err = dbCtx.
		Select(
			"COUNT(*) AS entry_count, "+
				"COALESCE(SUM(CASE WHEN direction = ? THEN quantity ELSE 0 END), 0) AS total_credit, "+
				"COALESCE(SUM(CASE WHEN direction = ? THEN quantity ELSE 0 END), 0) AS total_debit",
			DirectionCredit, DirectionDebit).
		Scan(&summary).Error
	if err != nil {
		return nil, utils.NewStorageError("ledger summary", err)
	}
	summary.Net = summary.TotalCredit.Sub(summary.TotalDebit)
	return &summary, nil
}

// GetLedgerByAction groups the entries of one action label by commodity.
// Answers "how much stock moved via Milling this month" style questions.
func GetLedgerByAction(ctx context.Context, action string, startDate, endDate *time.Time) ([]*LedgerActionRow, error) {
	if action == "" {
		return nil, utils.NewValidationError("action is required")
	}
	dbCtx, err := ledgerScope(ctx)
	if err != nil {
		return nil, err
	}

	dbCtx = dbCtx.Where("action = ?", action)
	if startDate != nil {
		dbCtx = dbCtx.Where("entry_date >= ?", utils.TruncateToDay(*startDate))
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("entry_date <= ?", utils.TruncateToDay(*endDate))
	}

	var rows []*LedgerActionRow
	err = dbCtx.
		Select(
			"commodity, COUNT(*) AS entry_count, "+
				"COALESCE(SUM(CASE WHEN direction = ? THEN quantity ELSE 0 END), 0) AS credit_qty, "+
				"COALESCE(SUM(CASE WHEN direction = ? THEN quantity ELSE 0 END), 0) AS debit_qty",
			DirectionCredit, DirectionDebit).
		Group("commodity").
		Order("commodity").
		Scan(&rows).Error
	if err != nil {
		return nil, utils.NewStorageError("ledger by action", err)
	}
	for _, row := range rows {
		row.NetQty = row.CreditQty.Sub(row.DebitQty)
	}
	return rows, nil
}
