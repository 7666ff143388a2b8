package models

// LedgerEntrySpecs debits the sold commodity out of stock. Same gating as
// purchase deals: no commodity or zero quantity means no entry.
func (d *SalesDeal) LedgerEntrySpecs() []LedgerEntrySpec {
	if d.Commodity == "" || !d.Quantity.IsPositive() {
		return nil
	}
	return []LedgerEntrySpec{{
		EntryDate: d.DealDate,
		Commodity: d.Commodity,
		Variety:   d.Variety,
		Direction: DirectionDebit,
		Quantity:  d.Quantity,
		Bags:      d.Bags,
		Action:    ActionSalesDeal,
		Remarks:   d.PartyName,
	}}
}
