package workflow_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
	"github.com/bhoumik1804/krsika-backend/workflow"
)

func setupDispatcherTest(t *testing.T) context.Context {
	t.Helper()
	if err := config.OpenTestDatabase(); err != nil {
		t.Fatalf("OpenTestDatabase: %v", err)
	}
	if err := models.MigrateTable(); err != nil {
		t.Fatalf("MigrateTable: %v", err)
	}
	mill, err := models.CreateMill(context.Background(), &models.NewMill{Name: "Dispatcher Mill " + t.Name()})
	if err != nil {
		t.Fatalf("CreateMill: %v", err)
	}
	ctx := utils.SetMillIdInContext(context.Background(), mill.ID)
	return utils.SetUserNameInContext(ctx, "Tester")
}

func TestProcessLedgerOutboxRepairsDrift(t *testing.T) {
	ctx := setupDispatcherTest(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	deal, err := models.CreatePurchaseDeal(ctx, &models.NewPurchaseDeal{
		DealDate:  "2026-08-20",
		PartyName: "Outbox Traders",
		Commodity: "Paddy",
		Quantity:  decimal.NewFromInt(60),
	})
	if err != nil {
		t.Fatalf("CreatePurchaseDeal: %v", err)
	}

	// Simulate the drift the outbox exists for: the document committed but
	// its entries were lost.
	db := config.GetDB()
	if err := db.Where("mill_id = ? AND source_kind = ? AND source_id = ?",
		millId, models.SourceKindPurchaseDeal, deal.ID).
		Delete(&models.LedgerEntry{}).Error; err != nil {
		t.Fatalf("corrupt ledger: %v", err)
	}

	processed, err := workflow.ProcessLedgerOutbox(ctx)
	if err != nil {
		t.Fatalf("ProcessLedgerOutbox: %v", err)
	}
	if processed < 1 {
		t.Fatalf("expected at least 1 processed intent, got %d", processed)
	}

	rows, err := models.GetLedgerBalance(ctx, deal.DealDate, "Paddy", "")
	if err != nil {
		t.Fatalf("GetLedgerBalance: %v", err)
	}
	if len(rows) != 1 || !rows[0].Balance.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("balance not restored by dispatcher: %+v", rows)
	}

	// Nothing left pending.
	pending, err := models.PendingLedgerOutbox(db, 5, 10)
	if err != nil {
		t.Fatalf("PendingLedgerOutbox: %v", err)
	}
	for _, p := range pending {
		if p.MillId == millId {
			t.Fatalf("outbox intent still pending: %+v", p)
		}
	}
}

func TestProcessLedgerOutboxSettlesDeleteIntents(t *testing.T) {
	ctx := setupDispatcherTest(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	entry, err := models.CreateDailyOutward(ctx, &models.NewDailyOutward{
		EntryDate: "2026-08-21",
		Item:      "Rice",
		WeightKg:  decimal.NewFromInt(5000),
	})
	if err != nil {
		t.Fatalf("CreateDailyOutward: %v", err)
	}
	if _, err := models.DeleteDailyOutward(ctx, entry.ID); err != nil {
		t.Fatalf("DeleteDailyOutward: %v", err)
	}

	if _, err := workflow.ProcessLedgerOutbox(ctx); err != nil {
		t.Fatalf("ProcessLedgerOutbox: %v", err)
	}

	// The delete intent re-resolves to an unlink; no entries may reappear.
	result, err := models.ListLedgerEntries(ctx, models.LedgerEntryFilter{Commodity: "Rice"}, 1, 10)
	if err != nil {
		t.Fatalf("ListLedgerEntries: %v", err)
	}
	for _, e := range result.Data {
		if e.SourceKind == models.SourceKindDailyOutward && e.SourceId == entry.ID && e.MillId == millId {
			t.Fatalf("entries reappeared for deleted source: %+v", e)
		}
	}
}
