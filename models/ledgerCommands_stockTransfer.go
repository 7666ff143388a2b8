package models

// LedgerEntrySpecs debits transferred stock, converted from the weighbridge
// kilograms to quintals. The receiving location is off-system, so there is no
// matching credit.
func (t *StockTransfer) LedgerEntrySpecs() []LedgerEntrySpec {
	if t.Commodity == "" || !t.WeightKg.IsPositive() {
		return nil
	}
	return []LedgerEntrySpec{{
		EntryDate: t.TransferDate,
		Commodity: t.Commodity,
		Variety:   t.Variety,
		Direction: DirectionDebit,
		Quantity:  KgToQuintal(t.WeightKg),
		Bags:      t.Bags,
		Action:    ActionTransfer,
		Remarks:   t.Destination,
	}}
}
