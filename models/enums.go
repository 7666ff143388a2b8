package models

// EntryDirection says whether a ledger entry increases (CREDIT) or decreases
// (DEBIT) the stock of a commodity. Quantity itself is always non-negative.
type EntryDirection string

const (
	DirectionCredit EntryDirection = "CREDIT"
	DirectionDebit  EntryDirection = "DEBIT"
)

func (d EntryDirection) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// SourceKind identifies the document type that produced a ledger entry.
// The ledger carries (source kind, source id) instead of a foreign key so one
// column pair can point at any of the nine source tables.
type SourceKind string

const (
	SourceKindPurchaseDeal    SourceKind = "PurchaseDeal"
	SourceKindSalesDeal       SourceKind = "SalesDeal"
	SourceKindDailyInward     SourceKind = "DailyInward"
	SourceKindDailyOutward    SourceKind = "DailyOutward"
	SourceKindPaddyMilling    SourceKind = "PaddyMilling"
	SourceKindRiceMilling     SourceKind = "RiceMilling"
	SourceKindOpeningStock    SourceKind = "OpeningStock"
	SourceKindStockAdjustment SourceKind = "StockAdjustment"
	SourceKindStockTransfer   SourceKind = "StockTransfer"
)

func (k SourceKind) Valid() bool {
	_, ok := ledgerTraits(k)
	return ok
}

// AllSourceKinds returns every registered kind in a stable order.
// Used by the rebuild sweep and the outbox dispatcher.
func AllSourceKinds() []SourceKind {
	return []SourceKind{
		SourceKindPurchaseDeal,
		SourceKindSalesDeal,
		SourceKindDailyInward,
		SourceKindDailyOutward,
		SourceKindPaddyMilling,
		SourceKindRiceMilling,
		SourceKindOpeningStock,
		SourceKindStockAdjustment,
		SourceKindStockTransfer,
	}
}

// Action labels describing the economic event behind an entry.
const (
	ActionPurchaseDeal = "Purchase Deal"
	ActionSalesDeal    = "Sales Deal"
	ActionInward       = "Inward"
	ActionOutward      = "Outward"
	ActionMilling      = "Milling"
	ActionProduction   = "Production"
	ActionOpeningStock = "Opening Stock"
	ActionAdjustment   = "Adjustment"
	ActionTransfer     = "Transfer"
)

// AdjustmentType declares the direction of a stock adjustment record.
type AdjustmentType string

const (
	AdjustmentIncrease AdjustmentType = "Increase"
	AdjustmentDecrease AdjustmentType = "Decrease"
)

func (t AdjustmentType) Valid() bool {
	return t == AdjustmentIncrease || t == AdjustmentDecrease
}

// User roles for route gating.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// OutboxAction mirrors the source document lifecycle event that produced an
// outbox intent row.
type OutboxAction string

const (
	OutboxActionCreate OutboxAction = "create"
	OutboxActionUpdate OutboxAction = "update"
	OutboxActionDelete OutboxAction = "delete"
)
