package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

/* opening stock */

func CreateOpeningStockHandler(c *gin.Context) {
	var input models.NewOpeningStock
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	stock, err := models.CreateOpeningStock(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stock)
}

func UpdateOpeningStockHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewOpeningStock
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	stock, err := models.UpdateOpeningStock(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func DeleteOpeningStockHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	stock, err := models.DeleteOpeningStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func GetOpeningStockHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	stock, err := models.GetOpeningStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func ListOpeningStocksHandler(c *gin.Context) {
	page, limit := parsePagination(c)
	result, err := models.ListOpeningStocks(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

/* stock adjustments */

func CreateStockAdjustmentHandler(c *gin.Context) {
	var input models.NewStockAdjustment
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	adj, err := models.CreateStockAdjustment(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adj)
}

func UpdateStockAdjustmentHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewStockAdjustment
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	adj, err := models.UpdateStockAdjustment(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adj)
}

func DeleteStockAdjustmentHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	adj, err := models.DeleteStockAdjustment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adj)
}

func GetStockAdjustmentHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	adj, err := models.GetStockAdjustment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adj)
}

func ListStockAdjustmentsHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListStockAdjustments(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

/* stock transfers */

func CreateStockTransferHandler(c *gin.Context) {
	var input models.NewStockTransfer
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	transfer, err := models.CreateStockTransfer(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transfer)
}

func UpdateStockTransferHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewStockTransfer
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	transfer, err := models.UpdateStockTransfer(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfer)
}

func DeleteStockTransferHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	transfer, err := models.DeleteStockTransfer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfer)
}

func GetStockTransferHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	transfer, err := models.GetStockTransfer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfer)
}

func ListStockTransfersHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListStockTransfers(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
