package models

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntrySpec is what an adapter produces: one prospective ledger line,
// before the recorder stamps tenant, source link and actor onto it.
type LedgerEntrySpec struct {
	EntryDate time.Time
	Commodity string
	Variety   string
	Direction EntryDirection
	Quantity  decimal.Decimal
	Bags      int
	Action    string
	Remarks   string
}

// LedgerSource is implemented by every source document type. The adapter
// (LedgerEntrySpecs) is a pure function of the record: a record with missing
// stock-relevant fields returns an empty slice, never an error.
type LedgerSource interface {
	GetMillId() string
	LedgerSourceKind() SourceKind
	LedgerSourceId() int
	LedgerEntrySpecs() []LedgerEntrySpec
}

// LedgerErrorPolicy decides what the recorder does with a StorageError after
// the source document write has already been issued. Validation and not-found
// errors always propagate regardless of policy.
type LedgerErrorPolicy string

const (
	// LedgerErrorPropagate fails the surrounding operation. Default for
	// every kind: with the document and ledger writes sharing one
	// transaction, propagation rolls both back together.
	LedgerErrorPropagate LedgerErrorPolicy = "propagate"
	// LedgerErrorLogAndContinue logs the failure and reports success,
	// leaving the ledger behind the document until the outbox dispatcher
	// or a rebuild sweep catches up. Kept expressible for operational
	// overrides; no kind ships with it.
	LedgerErrorLogAndContinue LedgerErrorPolicy = "logAndContinue"
)

// ledgerSourceTraits is the declarative per-kind adapter table. FixedEntryShape
// kinds own at most one entry, so replace can update it in place; variable
// kinds (milling) can change their output set between versions and must be
// delete-and-rerecorded.
type ledgerSourceTraits struct {
	FixedEntryShape bool
	ErrorPolicy     LedgerErrorPolicy
}

var ledgerRegistryMu sync.RWMutex

var ledgerSourceRegistry = map[SourceKind]ledgerSourceTraits{
	SourceKindPurchaseDeal:    {FixedEntryShape: true, ErrorPolicy: LedgerErrorPropagate},
	SourceKindSalesDeal:       {FixedEntryShape: true, ErrorPolicy: LedgerErrorPropagate},
	SourceKindDailyInward:     {FixedEntryShape: true, ErrorPolicy: LedgerErrorPropagate},
	SourceKindDailyOutward:    {FixedEntryShape: true, ErrorPolicy: LedgerErrorPropagate},
	SourceKindPaddyMilling:    {FixedEntryShape: false, ErrorPolicy: LedgerErrorPropagate},
	SourceKindRiceMilling:     {FixedEntryShape: false, ErrorPolicy: LedgerErrorPropagate},
	SourceKindOpeningStock:    {FixedEntryShape: true, ErrorPolicy: LedgerErrorPropagate},
	SourceKindStockAdjustment: {FixedEntryShape: true, ErrorPolicy: LedgerErrorPropagate},
	SourceKindStockTransfer:   {FixedEntryShape: true, ErrorPolicy: LedgerErrorPropagate},
}

// ledgerTraits is the only read path into the registry; it shares the lock
// with SetLedgerErrorPolicy so policy overrides are safe against concurrent
// request handling.
func ledgerTraits(kind SourceKind) (ledgerSourceTraits, bool) {
	ledgerRegistryMu.RLock()
	defer ledgerRegistryMu.RUnlock()
	traits, ok := ledgerSourceRegistry[kind]
	return traits, ok
}

// SetLedgerErrorPolicy overrides the failure policy for one kind.
// Intended for operational use and tests.
func SetLedgerErrorPolicy(kind SourceKind, policy LedgerErrorPolicy) {
	ledgerRegistryMu.Lock()
	defer ledgerRegistryMu.Unlock()
	traits, ok := ledgerSourceRegistry[kind]
	if !ok {
		return
	}
	traits.ErrorPolicy = policy
	ledgerSourceRegistry[kind] = traits
}

var hundred = decimal.NewFromInt(100)

// KgToQuintal converts a weighbridge reading to quintals.
func KgToQuintal(kg decimal.Decimal) decimal.Decimal {
	return kg.Div(hundred)
}
