package models

// LedgerEntrySpecs maps the adjustment type to an entry direction: Increase
// credits stock, Decrease debits it.
func (a *StockAdjustment) LedgerEntrySpecs() []LedgerEntrySpec {
	if a.Commodity == "" || !a.Quantity.IsPositive() {
		return nil
	}
	direction := DirectionCredit
	if a.AdjustmentType == AdjustmentDecrease {
		direction = DirectionDebit
	}
	return []LedgerEntrySpec{{
		EntryDate: a.AdjustmentDate,
		Commodity: a.Commodity,
		Variety:   a.Variety,
		Direction: direction,
		Quantity:  a.Quantity,
		Bags:      a.Bags,
		Action:    ActionAdjustment,
		Remarks:   a.Reason,
	}}
}
