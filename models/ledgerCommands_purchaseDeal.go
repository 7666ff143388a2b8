package models

// LedgerEntrySpecs credits the bought commodity into stock. A deal drafted
// without commodity or with no quantity has no stock effect yet.
func (d *PurchaseDeal) LedgerEntrySpecs() []LedgerEntrySpec {
	if d.Commodity == "" || !d.Quantity.IsPositive() {
		return nil
	}
	return []LedgerEntrySpec{{
		EntryDate: d.DealDate,
		Commodity: d.Commodity,
		Variety:   d.Variety,
		Direction: DirectionCredit,
		Quantity:  d.Quantity,
		Bags:      d.Bags,
		Action:    ActionPurchaseDeal,
		Remarks:   d.PartyName,
	}}
}
