// Command ledger-rebuild re-derives a mill's ledger entries from its source
// documents. Run with -apply=false first to see the drift report.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/models"
)

func main() {
	millId := flag.String("mill", "", "mill id to rebuild (default: every mill)")
	apply := flag.Bool("apply", false, "repair drift instead of only reporting it")
	flag.Parse()

	config.ConnectDatabaseWithRetry()
	ctx := context.Background()

	var millIds []string
	if *millId != "" {
		if _, err := models.GetMillById(ctx, *millId); err != nil {
			log.Fatalf("mill lookup failed: %v", err)
		}
		millIds = []string{*millId}
	} else {
		mills, err := models.ListMills(ctx)
		if err != nil {
			log.Fatalf("list mills failed: %v", err)
		}
		for _, m := range mills {
			millIds = append(millIds, m.ID)
		}
	}

	drifted := false
	reports := make([]*models.LedgerRebuildReport, 0, len(millIds))
	for _, id := range millIds {
		report, err := models.RebuildMillLedger(ctx, id, *apply)
		if err != nil {
			log.Fatalf("rebuild failed for mill %s: %v", id, err)
		}
		reports = append(reports, report)
		if len(report.Drifts) > 0 {
			drifted = true
		}
	}

	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Println(string(out))

	if drifted && !*apply {
		// Non-zero exit so cron/CI notices unrepaired drift.
		os.Exit(1)
	}
}
