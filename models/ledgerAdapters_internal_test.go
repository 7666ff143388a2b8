package models

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bhoumik1804/krsika-backend/utils"
)

func TestErrorPolicySwallowsOnlyStorageErrors(t *testing.T) {
	SetLedgerErrorPolicy(SourceKindDailyInward, LedgerErrorLogAndContinue)
	t.Cleanup(func() { SetLedgerErrorPolicy(SourceKindDailyInward, LedgerErrorPropagate) })

	storageErr := utils.NewStorageError("insert ledger entries", utils.ErrorRecordNotFound)
	if got := applyLedgerErrorPolicy(SourceKindDailyInward, "test", storageErr); got != nil {
		t.Fatalf("logAndContinue must swallow storage errors, got %v", got)
	}

	valErr := utils.NewValidationError("bad input")
	if got := applyLedgerErrorPolicy(SourceKindDailyInward, "test", valErr); got == nil {
		t.Fatalf("validation errors must always propagate")
	}

	nfErr := utils.NewNotFoundError("missing")
	if got := applyLedgerErrorPolicy(SourceKindDailyInward, "test", nfErr); got == nil {
		t.Fatalf("not-found errors must always propagate")
	}

	// Default policy propagates everything.
	if got := applyLedgerErrorPolicy(SourceKindSalesDeal, "test", storageErr); got == nil {
		t.Fatalf("propagate policy must surface storage errors")
	}
}

func TestErrorPolicyOverrideIsConcurrencySafe(t *testing.T) {
	t.Cleanup(func() { SetLedgerErrorPolicy(SourceKindStockTransfer, LedgerErrorPropagate) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			SetLedgerErrorPolicy(SourceKindStockTransfer, LedgerErrorLogAndContinue)
			SetLedgerErrorPolicy(SourceKindStockTransfer, LedgerErrorPropagate)
		}
	}()
	storageErr := utils.NewStorageError("insert ledger entries", utils.ErrorRecordNotFound)
	for i := 0; i < 1000; i++ {
		if !SourceKindStockTransfer.Valid() {
			t.Fatalf("registered kind reported invalid")
		}
		_ = applyLedgerErrorPolicy(SourceKindStockTransfer, "test", storageErr)
	}
	<-done
}

func TestSourceRegistryCoversEveryKind(t *testing.T) {
	for _, kind := range AllSourceKinds() {
		traits, ok := ledgerTraits(kind)
		if !ok {
			t.Fatalf("kind %s missing from registry", kind)
		}
		variable := kind == SourceKindPaddyMilling || kind == SourceKindRiceMilling
		if traits.FixedEntryShape == variable {
			t.Fatalf("kind %s has wrong FixedEntryShape=%v", kind, traits.FixedEntryShape)
		}
	}
	if SourceKind("Bogus").Valid() {
		t.Fatalf("unregistered kind must not be valid")
	}
}

func TestKgToQuintal(t *testing.T) {
	cases := map[string]string{
		"100":     "1",
		"12550":   "125.5",
		"0":       "0",
		"9999.99": "99.9999",
	}
	for kg, want := range cases {
		got := KgToQuintal(decimal.RequireFromString(kg))
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("KgToQuintal(%s) = %s, want %s", kg, got, want)
		}
	}
}

func TestRiceMillingSpecsLabelPolishedOutput(t *testing.T) {
	run := &RiceMilling{
		RiceVariety: "IR64",
		InputQty:    decimal.NewFromInt(50),
		PolishedQty: decimal.NewFromInt(47),
		BranQty:     decimal.NewFromInt(2),
	}
	specs := run.LedgerEntrySpecs()
	if len(specs) != 3 {
		t.Fatalf("expected 3 specs, got %d", len(specs))
	}
	if specs[0].Direction != DirectionDebit || specs[0].Commodity != "Rice" || specs[0].Variety != "IR64" {
		t.Fatalf("input spec wrong: %+v", specs[0])
	}
	if specs[1].Commodity != "Rice" || specs[1].Variety != "Polished" {
		t.Fatalf("polished output must be Rice/Polished, got %+v", specs[1])
	}
	if specs[1].Action != ActionProduction {
		t.Fatalf("output action = %s, want %s", specs[1].Action, ActionProduction)
	}
}
