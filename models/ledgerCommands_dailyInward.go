package models

// LedgerEntrySpecs credits the weighed item into stock, converted to quintals.
// Gate entries logged without an item or weight (vehicle passes, empties) have
// no stock effect.
func (d *DailyInward) LedgerEntrySpecs() []LedgerEntrySpec {
	if d.Item == "" || !d.WeightKg.IsPositive() {
		return nil
	}
	return []LedgerEntrySpec{{
		EntryDate: d.EntryDate,
		Commodity: d.Item,
		Variety:   d.Variety,
		Direction: DirectionCredit,
		Quantity:  KgToQuintal(d.WeightKg),
		Bags:      d.Bags,
		Action:    ActionInward,
		Remarks:   d.PartyName,
	}}
}
