package config

import (
	"os"
	"strings"
)

// LedgerLogAndContinueKinds lists source kinds whose ledger failures should be
// logged and deferred to the outbox dispatcher instead of failing the request.
// Default is empty: every kind propagates.
//
// Set via env:
// - LEDGER_LOG_AND_CONTINUE_KINDS="DailyInward,DailyOutward"
func LedgerLogAndContinueKinds() []string {
	raw := strings.TrimSpace(os.Getenv("LEDGER_LOG_AND_CONTINUE_KINDS"))
	if raw == "" {
		return nil
	}
	var kinds []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			kinds = append(kinds, part)
		}
	}
	return kinds
}
