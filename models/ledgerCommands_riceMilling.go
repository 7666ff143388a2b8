package models

import "github.com/shopspring/decimal"

// LedgerEntrySpecs for a reprocessing run: debit the raw rice consumed, credit
// polished rice and byproducts.
func (m *RiceMilling) LedgerEntrySpecs() []LedgerEntrySpec {
	var specs []LedgerEntrySpec

	if m.InputQty.IsPositive() {
		specs = append(specs, LedgerEntrySpec{
			EntryDate: m.MillingDate,
			Commodity: "Rice",
			Variety:   m.RiceVariety,
			Direction: DirectionDebit,
			Quantity:  m.InputQty,
			Action:    ActionMilling,
		})
	}

	outputs := []struct {
		commodity string
		variety   string
		qty       decimal.Decimal
	}{
		{"Rice", "Polished", m.PolishedQty},
		{"Khanda", "", m.KhandaQty},
		{"Bran", "", m.BranQty},
	}
	for _, out := range outputs {
		if !out.qty.IsPositive() {
			continue
		}
		specs = append(specs, LedgerEntrySpec{
			EntryDate: m.MillingDate,
			Commodity: out.commodity,
			Variety:   out.variety,
			Direction: DirectionCredit,
			Quantity:  out.qty,
			Action:    ActionProduction,
		})
	}
	return specs
}
