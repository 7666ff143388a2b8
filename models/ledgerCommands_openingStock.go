package models

// LedgerEntrySpecs credits pre-system stock into the ledger.
func (s *OpeningStock) LedgerEntrySpecs() []LedgerEntrySpec {
	if s.Commodity == "" || !s.Quantity.IsPositive() {
		return nil
	}
	return []LedgerEntrySpec{{
		EntryDate: s.StockDate,
		Commodity: s.Commodity,
		Variety:   s.Variety,
		Direction: DirectionCredit,
		Quantity:  s.Quantity,
		Bags:      s.Bags,
		Action:    ActionOpeningStock,
		Remarks:   s.Remarks,
	}}
}
