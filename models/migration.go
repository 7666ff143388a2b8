package models

import (
	"github.com/bhoumik1804/krsika-backend/config"
)

// MigrateTable creates/updates every table this service owns.
func MigrateTable() error {
	db := config.GetDB()
	return db.AutoMigrate(
		&Mill{},
		&User{},
		&LedgerEntry{},
		&LedgerOutboxRecord{},
		&PurchaseDeal{},
		&SalesDeal{},
		&DailyInward{},
		&DailyOutward{},
		&PaddyMilling{},
		&RiceMilling{},
		&OpeningStock{},
		&StockAdjustment{},
		&StockTransfer{},
	)
}
