package models

// LedgerEntrySpecs debits the weighed item out of stock, converted to quintals.
func (d *DailyOutward) LedgerEntrySpecs() []LedgerEntrySpec {
	if d.Item == "" || !d.WeightKg.IsPositive() {
		return nil
	}
	return []LedgerEntrySpec{{
		EntryDate: d.EntryDate,
		Commodity: d.Item,
		Variety:   d.Variety,
		Direction: DirectionDebit,
		Quantity:  KgToQuintal(d.WeightKg),
		Bags:      d.Bags,
		Action:    ActionOutward,
		Remarks:   d.PartyName,
	}}
}
