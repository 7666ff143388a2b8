package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// newTestMill opens the shared in-memory database, migrates, and creates a
// fresh mill so tests stay isolated from each other through tenant scoping.
func newTestMill(t *testing.T) context.Context {
	t.Helper()

	if err := config.OpenTestDatabase(); err != nil {
		t.Fatalf("OpenTestDatabase: %v", err)
	}
	if err := models.MigrateTable(); err != nil {
		t.Fatalf("MigrateTable: %v", err)
	}

	ctx := context.Background()
	mill, err := models.CreateMill(ctx, &models.NewMill{Name: "Test Mill " + t.Name()})
	if err != nil {
		t.Fatalf("CreateMill: %v", err)
	}
	ctx = utils.SetMillIdInContext(ctx, mill.ID)
	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetUserNameInContext(ctx, "Tester")
	return ctx
}

func balanceFor(t *testing.T, ctx context.Context, commodity, variety string, asOf time.Time) decimal.Decimal {
	t.Helper()
	rows, err := models.GetLedgerBalance(ctx, asOf, commodity, variety)
	if err != nil {
		t.Fatalf("GetLedgerBalance: %v", err)
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Balance)
	}
	return total
}

func entriesForSource(t *testing.T, ctx context.Context, kind models.SourceKind, sourceId int) []*models.LedgerEntry {
	t.Helper()
	result, err := models.ListLedgerEntries(ctx, models.LedgerEntryFilter{}, 1, 200)
	if err != nil {
		t.Fatalf("ListLedgerEntries: %v", err)
	}
	var matched []*models.LedgerEntry
	for _, e := range result.Data {
		if e.SourceKind == kind && e.SourceId == sourceId {
			matched = append(matched, e)
		}
	}
	return matched
}

func TestPurchaseDealRecordsCreditEntry(t *testing.T) {
	ctx := newTestMill(t)

	before := balanceFor(t, ctx, "Paddy", "", time.Now())

	deal, err := models.CreatePurchaseDeal(ctx, &models.NewPurchaseDeal{
		DealDate:  "2026-08-01",
		PartyName: "Sharma Traders",
		Commodity: "Paddy",
		Variety:   "Sona Masoori",
		Quantity:  decimal.RequireFromString("120.5"),
		Bags:      241,
		Rate:      decimal.RequireFromString("2200"),
	})
	if err != nil {
		t.Fatalf("CreatePurchaseDeal: %v", err)
	}
	if !deal.Amount.Equal(decimal.RequireFromString("265100")) {
		t.Fatalf("amount = %s, want 265100", deal.Amount)
	}

	entries := entriesForSource(t, ctx, models.SourceKindPurchaseDeal, deal.ID)
	if len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(entries))
	}
	if entries[0].Direction != models.DirectionCredit {
		t.Fatalf("direction = %s, want CREDIT", entries[0].Direction)
	}
	if entries[0].Action != models.ActionPurchaseDeal {
		t.Fatalf("action = %s, want %s", entries[0].Action, models.ActionPurchaseDeal)
	}

	after := balanceFor(t, ctx, "Paddy", "", time.Now())
	if !after.Sub(before).Equal(decimal.RequireFromString("120.5")) {
		t.Fatalf("balance delta = %s, want 120.5", after.Sub(before))
	}
}

func TestUpdateSalesDealDoesNotDoubleCount(t *testing.T) {
	ctx := newTestMill(t)

	deal, err := models.CreateSalesDeal(ctx, &models.NewSalesDeal{
		DealDate:  "2026-08-02",
		PartyName: "Gupta Rice Co",
		Commodity: "Rice",
		Quantity:  decimal.NewFromInt(40),
		Rate:      decimal.NewFromInt(4000),
	})
	if err != nil {
		t.Fatalf("CreateSalesDeal: %v", err)
	}

	// Update twice; the entry set must stay exactly one entry with the
	// latest quantity.
	for _, qty := range []int64{55, 70} {
		_, err = models.UpdateSalesDeal(ctx, deal.ID, &models.NewSalesDeal{
			DealDate:  "2026-08-03",
			PartyName: "Gupta Rice Co",
			Commodity: "Rice",
			Quantity:  decimal.NewFromInt(qty),
			Rate:      decimal.NewFromInt(4000),
		})
		if err != nil {
			t.Fatalf("UpdateSalesDeal(qty=%d): %v", qty, err)
		}
	}

	entries := entriesForSource(t, ctx, models.SourceKindSalesDeal, deal.ID)
	if len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry after updates, got %d", len(entries))
	}
	if !entries[0].Quantity.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("quantity = %s, want 70", entries[0].Quantity)
	}

	balance := balanceFor(t, ctx, "Rice", "", time.Now())
	if !balance.Equal(decimal.NewFromInt(-70)) {
		t.Fatalf("balance = %s, want -70", balance)
	}
}

func TestDealWithoutCommodityHasNoStockEffect(t *testing.T) {
	ctx := newTestMill(t)

	deal, err := models.CreatePurchaseDeal(ctx, &models.NewPurchaseDeal{
		DealDate:  "2026-08-04",
		PartyName: "Draft Party",
		Quantity:  decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("CreatePurchaseDeal: %v", err)
	}
	if entries := entriesForSource(t, ctx, models.SourceKindPurchaseDeal, deal.ID); len(entries) != 0 {
		t.Fatalf("expected no ledger entries for commodity-less deal, got %d", len(entries))
	}

	// Filling in the commodity on update must create the entry.
	_, err = models.UpdatePurchaseDeal(ctx, deal.ID, &models.NewPurchaseDeal{
		DealDate:  "2026-08-04",
		PartyName: "Draft Party",
		Commodity: "Paddy",
		Quantity:  decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("UpdatePurchaseDeal: %v", err)
	}
	if entries := entriesForSource(t, ctx, models.SourceKindPurchaseDeal, deal.ID); len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry after commodity set, got %d", len(entries))
	}
}

func TestDeleteDealRemovesItsEntries(t *testing.T) {
	ctx := newTestMill(t)

	deal, err := models.CreateSalesDeal(ctx, &models.NewSalesDeal{
		DealDate:  "2026-08-05",
		PartyName: "Verma Exports",
		Commodity: "Rice",
		Quantity:  decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("CreateSalesDeal: %v", err)
	}
	if _, err := models.DeleteSalesDeal(ctx, deal.ID); err != nil {
		t.Fatalf("DeleteSalesDeal: %v", err)
	}

	if entries := entriesForSource(t, ctx, models.SourceKindSalesDeal, deal.ID); len(entries) != 0 {
		t.Fatalf("expected no residual entries, got %d", len(entries))
	}
	if !balanceFor(t, ctx, "Rice", "", time.Now()).IsZero() {
		t.Fatalf("expected zero rice balance after delete")
	}
}

func TestBalanceAsOfExcludesLaterEntries(t *testing.T) {
	ctx := newTestMill(t)

	for _, c := range []struct {
		date string
		qty  int64
	}{
		{"2026-08-01", 100},
		{"2026-08-15", 50},
	} {
		_, err := models.CreateOpeningStock(ctx, &models.NewOpeningStock{
			StockDate: c.date,
			Commodity: "Paddy",
			Quantity:  decimal.NewFromInt(c.qty),
		})
		if err != nil {
			t.Fatalf("CreateOpeningStock(%s): %v", c.date, err)
		}
	}

	asOf, _ := utils.ParseDate("2026-08-10")
	if got := balanceFor(t, ctx, "Paddy", "", asOf); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("as-of balance = %s, want 100", got)
	}
	// Entries dated exactly on the as-of day are included.
	asOf, _ = utils.ParseDate("2026-08-15")
	if got := balanceFor(t, ctx, "Paddy", "", asOf); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("as-of balance = %s, want 150", got)
	}
}

func TestGateEntryConvertsKgToQuintals(t *testing.T) {
	ctx := newTestMill(t)

	entry, err := models.CreateDailyInward(ctx, &models.NewDailyInward{
		EntryDate: "2026-08-06",
		PartyName: "Field Truck 12",
		Item:      "Paddy",
		WeightKg:  decimal.RequireFromString("12550"),
		Bags:      251,
	})
	if err != nil {
		t.Fatalf("CreateDailyInward: %v", err)
	}

	entries := entriesForSource(t, ctx, models.SourceKindDailyInward, entry.ID)
	if len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(entries))
	}
	if !entries[0].Quantity.Equal(decimal.RequireFromString("125.5")) {
		t.Fatalf("quantity = %s qtl, want 125.5", entries[0].Quantity)
	}
	if entries[0].Action != models.ActionInward {
		t.Fatalf("action = %s, want %s", entries[0].Action, models.ActionInward)
	}
}

func TestPaddyMillingEmitsDebitAndOutputs(t *testing.T) {
	ctx := newTestMill(t)

	run, err := models.CreatePaddyMilling(ctx, &models.NewPaddyMilling{
		MillingDate:  "2026-08-07",
		PaddyVariety: "IR64",
		HopperQty:    decimal.NewFromInt(100),
		RiceQty:      decimal.NewFromInt(65),
		BranQty:      decimal.NewFromInt(8),
	})
	if err != nil {
		t.Fatalf("CreatePaddyMilling: %v", err)
	}

	entries := entriesForSource(t, ctx, models.SourceKindPaddyMilling, run.ID)
	if len(entries) != 3 {
		t.Fatalf("expected 3 ledger entries (1 debit + 2 credits), got %d", len(entries))
	}

	if !balanceFor(t, ctx, "Paddy", "", time.Now()).Equal(decimal.NewFromInt(-100)) {
		t.Fatalf("paddy balance wrong after milling")
	}
	if !balanceFor(t, ctx, "Rice", "", time.Now()).Equal(decimal.NewFromInt(65)) {
		t.Fatalf("rice balance wrong after milling")
	}
	if !balanceFor(t, ctx, "Bran", "", time.Now()).Equal(decimal.NewFromInt(8)) {
		t.Fatalf("bran balance wrong after milling")
	}

	// Update that changes the set of non-zero outputs: husk appears, bran
	// drops to zero. Old entries must not linger.
	_, err = models.UpdatePaddyMilling(ctx, run.ID, &models.NewPaddyMilling{
		MillingDate:  "2026-08-07",
		PaddyVariety: "IR64",
		HopperQty:    decimal.NewFromInt(100),
		RiceQty:      decimal.NewFromInt(66),
		HuskQty:      decimal.NewFromInt(20),
	})
	if err != nil {
		t.Fatalf("UpdatePaddyMilling: %v", err)
	}

	entries = entriesForSource(t, ctx, models.SourceKindPaddyMilling, run.ID)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries after reshaping update, got %d", len(entries))
	}
	if !balanceFor(t, ctx, "Bran", "", time.Now()).IsZero() {
		t.Fatalf("bran balance must be zero after output removed")
	}
	if !balanceFor(t, ctx, "Husk", "", time.Now()).Equal(decimal.NewFromInt(20)) {
		t.Fatalf("husk balance wrong after update")
	}
}

func TestDeleteMillingLeavesNoByActionTrace(t *testing.T) {
	ctx := newTestMill(t)

	run, err := models.CreatePaddyMilling(ctx, &models.NewPaddyMilling{
		MillingDate:  "2026-08-08",
		PaddyVariety: "IR64",
		HopperQty:    decimal.NewFromInt(50),
		RiceQty:      decimal.NewFromInt(33),
	})
	if err != nil {
		t.Fatalf("CreatePaddyMilling: %v", err)
	}
	if _, err := models.DeletePaddyMilling(ctx, run.ID); err != nil {
		t.Fatalf("DeletePaddyMilling: %v", err)
	}

	rows, err := models.GetLedgerByAction(ctx, models.ActionMilling, nil, nil)
	if err != nil {
		t.Fatalf("GetLedgerByAction: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no Milling rows after delete, got %d", len(rows))
	}
	rows, err = models.GetLedgerByAction(ctx, models.ActionProduction, nil, nil)
	if err != nil {
		t.Fatalf("GetLedgerByAction: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no Production rows after delete, got %d", len(rows))
	}
}

func TestStockAdjustmentDirectionFollowsType(t *testing.T) {
	ctx := newTestMill(t)

	inc, err := models.CreateStockAdjustment(ctx, &models.NewStockAdjustment{
		AdjustmentDate: "2026-08-09",
		AdjustmentType: models.AdjustmentIncrease,
		Commodity:      "Rice",
		Quantity:       decimal.NewFromInt(5),
		Reason:         "count surplus",
	})
	if err != nil {
		t.Fatalf("CreateStockAdjustment(increase): %v", err)
	}
	dec, err := models.CreateStockAdjustment(ctx, &models.NewStockAdjustment{
		AdjustmentDate: "2026-08-09",
		AdjustmentType: models.AdjustmentDecrease,
		Commodity:      "Rice",
		Quantity:       decimal.NewFromInt(2),
		Reason:         "spillage",
	})
	if err != nil {
		t.Fatalf("CreateStockAdjustment(decrease): %v", err)
	}

	if e := entriesForSource(t, ctx, models.SourceKindStockAdjustment, inc.ID); len(e) != 1 || e[0].Direction != models.DirectionCredit {
		t.Fatalf("increase adjustment must credit")
	}
	if e := entriesForSource(t, ctx, models.SourceKindStockAdjustment, dec.ID); len(e) != 1 || e[0].Direction != models.DirectionDebit {
		t.Fatalf("decrease adjustment must debit")
	}
	if !balanceFor(t, ctx, "Rice", "", time.Now()).Equal(decimal.NewFromInt(3)) {
		t.Fatalf("rice balance wrong after adjustments")
	}
}

func TestStockTransferDebitsInQuintals(t *testing.T) {
	ctx := newTestMill(t)

	transfer, err := models.CreateStockTransfer(ctx, &models.NewStockTransfer{
		TransferDate: "2026-08-10",
		Destination:  "Govt Depot Raipur",
		Commodity:    "Rice",
		WeightKg:     decimal.NewFromInt(20000),
	})
	if err != nil {
		t.Fatalf("CreateStockTransfer: %v", err)
	}
	entries := entriesForSource(t, ctx, models.SourceKindStockTransfer, transfer.ID)
	if len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(entries))
	}
	if entries[0].Direction != models.DirectionDebit || !entries[0].Quantity.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("transfer entry = %s %s, want DEBIT 200", entries[0].Direction, entries[0].Quantity)
	}
}

func TestBulkDeleteSkipsMissingIds(t *testing.T) {
	ctx := newTestMill(t)

	var ids []int
	for i := 0; i < 3; i++ {
		entry, err := models.CreateDailyInward(ctx, &models.NewDailyInward{
			EntryDate: "2026-08-11",
			Item:      "Paddy",
			WeightKg:  decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("CreateDailyInward: %v", err)
		}
		ids = append(ids, entry.ID)
	}

	deleted, err := models.BulkDeleteDailyInwards(ctx, append(ids, 999999))
	if err != nil {
		t.Fatalf("BulkDeleteDailyInwards: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted = %d, want 3", deleted)
	}
	if !balanceFor(t, ctx, "Paddy", "", time.Now()).IsZero() {
		t.Fatalf("expected zero paddy balance after bulk delete")
	}
}

func TestLedgerSummaryTotals(t *testing.T) {
	ctx := newTestMill(t)

	if _, err := models.CreateOpeningStock(ctx, &models.NewOpeningStock{
		StockDate: "2026-08-01",
		Commodity: "Rice",
		Quantity:  decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("CreateOpeningStock: %v", err)
	}
	if _, err := models.CreateSalesDeal(ctx, &models.NewSalesDeal{
		DealDate:  "2026-08-02",
		PartyName: "Buyer",
		Commodity: "Rice",
		Quantity:  decimal.NewFromInt(30),
	}); err != nil {
		t.Fatalf("CreateSalesDeal: %v", err)
	}

	summary, err := models.GetLedgerSummary(ctx, nil, nil, "Rice", "")
	if err != nil {
		t.Fatalf("GetLedgerSummary: %v", err)
	}
	if summary.EntryCount != 2 {
		t.Fatalf("entryCount = %d, want 2", summary.EntryCount)
	}
	if !summary.TotalCredit.Equal(decimal.NewFromInt(100)) || !summary.TotalDebit.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("totals = %s/%s, want 100/30", summary.TotalCredit, summary.TotalDebit)
	}
	if !summary.Net.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("net = %s, want 70", summary.Net)
	}
}

func TestListLedgerEntriesFiltersAndPaginates(t *testing.T) {
	ctx := newTestMill(t)

	for i := 0; i < 5; i++ {
		if _, err := models.CreateOpeningStock(ctx, &models.NewOpeningStock{
			StockDate: "2026-08-01",
			Commodity: "Paddy",
			Quantity:  decimal.NewFromInt(int64(i + 1)),
		}); err != nil {
			t.Fatalf("CreateOpeningStock: %v", err)
		}
	}

	page, err := models.ListLedgerEntries(ctx, models.LedgerEntryFilter{Commodity: "Paddy"}, 1, 2)
	if err != nil {
		t.Fatalf("ListLedgerEntries: %v", err)
	}
	if len(page.Data) != 2 {
		t.Fatalf("page size = %d, want 2", len(page.Data))
	}
	if page.Pagination.Total != 5 || page.Pagination.TotalPages != 3 {
		t.Fatalf("pagination = %+v, want total 5 over 3 pages", page.Pagination)
	}
	if !page.Pagination.HasNextPage || page.Pagination.HasPrevPage {
		t.Fatalf("page 1 must have next but not prev")
	}

	none, err := models.ListLedgerEntries(ctx, models.LedgerEntryFilter{Commodity: "Husk"}, 1, 10)
	if err != nil {
		t.Fatalf("ListLedgerEntries(Husk): %v", err)
	}
	if len(none.Data) != 0 {
		t.Fatalf("expected no husk entries, got %d", len(none.Data))
	}
}

func TestLedgerEntriesAreMillScoped(t *testing.T) {
	ctxA := newTestMill(t)

	millB, err := models.CreateMill(context.Background(), &models.NewMill{Name: "Other Mill"})
	if err != nil {
		t.Fatalf("CreateMill: %v", err)
	}
	ctxB := utils.SetMillIdInContext(context.Background(), millB.ID)
	ctxB = utils.SetUserNameInContext(ctxB, "Other Tester")

	if _, err := models.CreateOpeningStock(ctxA, &models.NewOpeningStock{
		StockDate: "2026-08-01",
		Commodity: "Rice",
		Quantity:  decimal.NewFromInt(42),
	}); err != nil {
		t.Fatalf("CreateOpeningStock: %v", err)
	}

	if got := balanceFor(t, ctxB, "Rice", "", time.Now()); !got.IsZero() {
		t.Fatalf("mill B sees mill A's stock: %s", got)
	}
}

func TestReplaceDropsSurplusDriftRows(t *testing.T) {
	ctx := newTestMill(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	deal, err := models.CreatePurchaseDeal(ctx, &models.NewPurchaseDeal{
		DealDate:  "2026-08-12",
		PartyName: "Dup Traders",
		Commodity: "Paddy",
		Quantity:  decimal.NewFromInt(40),
	})
	if err != nil {
		t.Fatalf("CreatePurchaseDeal: %v", err)
	}

	// Inject a duplicate entry behind the recorder's back.
	dup := &models.LedgerEntry{
		MillId:     millId,
		EntryDate:  time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		Commodity:  "Paddy",
		Direction:  models.DirectionCredit,
		Action:     models.ActionPurchaseDeal,
		Quantity:   decimal.NewFromInt(40),
		SourceKind: models.SourceKindPurchaseDeal,
		SourceId:   deal.ID,
	}
	if err := config.GetDB().Create(dup).Error; err != nil {
		t.Fatalf("inject duplicate: %v", err)
	}

	if _, err := models.UpdatePurchaseDeal(ctx, deal.ID, &models.NewPurchaseDeal{
		DealDate:  "2026-08-12",
		PartyName: "Dup Traders",
		Commodity: "Paddy",
		Quantity:  decimal.NewFromInt(55),
	}); err != nil {
		t.Fatalf("UpdatePurchaseDeal: %v", err)
	}

	entries := entriesForSource(t, ctx, models.SourceKindPurchaseDeal, deal.ID)
	if len(entries) != 1 {
		t.Fatalf("expected surplus row to be dropped, got %d entries", len(entries))
	}
	if !entries[0].Quantity.Equal(decimal.NewFromInt(55)) {
		t.Fatalf("entry quantity = %s, want 55", entries[0].Quantity)
	}
}

func TestRebuildDetectsAndRepairsDrift(t *testing.T) {
	ctx := newTestMill(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	deal, err := models.CreatePurchaseDeal(ctx, &models.NewPurchaseDeal{
		DealDate:  "2026-08-12",
		PartyName: "Drift Traders",
		Commodity: "Paddy",
		Quantity:  decimal.NewFromInt(80),
	})
	if err != nil {
		t.Fatalf("CreatePurchaseDeal: %v", err)
	}

	// Corrupt the ledger behind the recorder's back.
	db := config.GetDB()
	if err := db.Where("mill_id = ? AND source_kind = ? AND source_id = ?",
		millId, models.SourceKindPurchaseDeal, deal.ID).
		Delete(&models.LedgerEntry{}).Error; err != nil {
		t.Fatalf("corrupt ledger: %v", err)
	}

	report, err := models.RebuildMillLedger(ctx, millId, false)
	if err != nil {
		t.Fatalf("RebuildMillLedger(report): %v", err)
	}
	if len(report.Drifts) != 1 {
		t.Fatalf("expected 1 drift, got %d", len(report.Drifts))
	}

	if _, err := models.RebuildMillLedger(ctx, millId, true); err != nil {
		t.Fatalf("RebuildMillLedger(apply): %v", err)
	}
	if !balanceFor(t, ctx, "Paddy", "", time.Now()).Equal(decimal.NewFromInt(80)) {
		t.Fatalf("balance not restored by rebuild")
	}

	report, err = models.RebuildMillLedger(ctx, millId, false)
	if err != nil {
		t.Fatalf("RebuildMillLedger(verify): %v", err)
	}
	if len(report.Drifts) != 0 {
		t.Fatalf("expected no drift after repair, got %d", len(report.Drifts))
	}
}

func TestRebuildUnlinksOrphanedEntries(t *testing.T) {
	ctx := newTestMill(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	deal, err := models.CreateSalesDeal(ctx, &models.NewSalesDeal{
		DealDate:  "2026-08-13",
		PartyName: "Orphan Co",
		Commodity: "Rice",
		Quantity:  decimal.NewFromInt(15),
	})
	if err != nil {
		t.Fatalf("CreateSalesDeal: %v", err)
	}

	// Delete the source row directly, stranding its entries.
	db := config.GetDB()
	if err := db.Where("mill_id = ? AND id = ?", millId, deal.ID).
		Delete(&models.SalesDeal{}).Error; err != nil {
		t.Fatalf("delete source row: %v", err)
	}

	if _, err := models.RebuildMillLedger(ctx, millId, true); err != nil {
		t.Fatalf("RebuildMillLedger: %v", err)
	}
	if entries := entriesForSource(t, ctx, models.SourceKindSalesDeal, deal.ID); len(entries) != 0 {
		t.Fatalf("orphaned entries survived rebuild: %d", len(entries))
	}
}

func TestUnlinkIsIdempotent(t *testing.T) {
	ctx := newTestMill(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	deal, err := models.CreatePurchaseDeal(ctx, &models.NewPurchaseDeal{
		DealDate:  "2026-08-16",
		PartyName: "Idempotent Co",
		Commodity: "Paddy",
		Quantity:  decimal.NewFromInt(9),
	})
	if err != nil {
		t.Fatalf("CreatePurchaseDeal: %v", err)
	}

	db := config.GetDB()
	// Unlinking twice, and unlinking ids that never had entries, must all
	// succeed.
	err = models.UnlinkLedgerEntriesBulk(db, millId, models.SourceKindPurchaseDeal, []int{deal.ID, deal.ID, 777777})
	if err != nil {
		t.Fatalf("UnlinkLedgerEntriesBulk: %v", err)
	}
	if entries := entriesForSource(t, ctx, models.SourceKindPurchaseDeal, deal.ID); len(entries) != 0 {
		t.Fatalf("entries survived unlink: %d", len(entries))
	}
}

func TestValidationRejectsBadInput(t *testing.T) {
	ctx := newTestMill(t)

	_, err := models.CreatePurchaseDeal(ctx, &models.NewPurchaseDeal{
		DealDate:  "01-08-2026",
		PartyName: "Bad Date Co",
	})
	if !utils.IsValidationError(err) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}

	_, err = models.CreateDailyInward(ctx, &models.NewDailyInward{
		EntryDate: "2026-08-14",
		Item:      "Paddy",
		WeightKg:  decimal.NewFromInt(-5),
	})
	if !utils.IsValidationError(err) {
		t.Fatalf("expected validation error for negative weight, got %v", err)
	}

	_, err = models.UpdatePurchaseDeal(ctx, 424242, &models.NewPurchaseDeal{
		DealDate:  "2026-08-14",
		PartyName: "Ghost",
	})
	if !utils.IsNotFoundError(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
