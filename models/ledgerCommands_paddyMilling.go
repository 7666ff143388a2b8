package models

import "github.com/shopspring/decimal"

// LedgerEntrySpecs turns one milling run into its stock movements: a debit of
// paddy consumed from the hopper, then a credit per produced output. Outputs
// reported as zero emit nothing, so the entry set varies run to run.
func (m *PaddyMilling) LedgerEntrySpecs() []LedgerEntrySpec {
	var specs []LedgerEntrySpec

	if m.HopperQty.IsPositive() {
		specs = append(specs, LedgerEntrySpec{
			EntryDate: m.MillingDate,
			Commodity: "Paddy",
			Variety:   m.PaddyVariety,
			Direction: DirectionDebit,
			Quantity:  m.HopperQty,
			Action:    ActionMilling,
		})
	}

	outputs := []struct {
		commodity string
		qty       decimal.Decimal
	}{
		{"Rice", m.RiceQty},
		{"Khanda", m.KhandaQty},
		{"Kodha", m.KodhaQty},
		{"Bran", m.BranQty},
		{"Husk", m.HuskQty},
	}
	for _, out := range outputs {
		if !out.qty.IsPositive() {
			continue
		}
		specs = append(specs, LedgerEntrySpec{
			EntryDate: m.MillingDate,
			Commodity: out.commodity,
			Variety:   m.PaddyVariety,
			Direction: DirectionCredit,
			Quantity:  out.qty,
			Action:    ActionProduction,
		})
	}
	return specs
}
