package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// The ledger surface is read-only over HTTP. Entries are written exclusively
// by the source-document services.

func ListLedgerEntriesHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	filter := models.LedgerEntryFilter{
		Commodity: c.Query("commodity"),
		Variety:   c.Query("variety"),
		Direction: models.EntryDirection(c.Query("direction")),
		Action:    c.Query("action"),
		StartDate: startDate,
		EndDate:   endDate,
	}
	page, limit := parsePagination(c)
	result, err := models.ListLedgerEntries(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LedgerBalanceHandler answers "how much of each commodity do we hold as of
// this date". Defaults to today.
func LedgerBalanceHandler(c *gin.Context) {
	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		asOf = parsed
	}
	rows, err := models.GetLedgerBalance(c.Request.Context(), asOf, c.Query("commodity"), c.Query("variety"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"as_of": utils.TruncateToDay(asOf).Format(utils.DateLayout), "data": rows})
}

func LedgerSummaryHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	summary, err := models.GetLedgerSummary(c.Request.Context(), startDate, endDate, c.Query("commodity"), c.Query("variety"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func LedgerByActionHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	rows, err := models.GetLedgerByAction(c.Request.Context(), c.Query("action"), startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"action": c.Query("action"), "data": rows})
}
