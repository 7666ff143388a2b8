package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

/* purchase deals */

func CreatePurchaseDealHandler(c *gin.Context) {
	var input models.NewPurchaseDeal
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	deal, err := models.CreatePurchaseDeal(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deal)
}

func UpdatePurchaseDealHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewPurchaseDeal
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	deal, err := models.UpdatePurchaseDeal(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func DeletePurchaseDealHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	deal, err := models.DeletePurchaseDeal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func GetPurchaseDealHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	deal, err := models.GetPurchaseDeal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func ListPurchaseDealsHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListPurchaseDeals(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

/* sales deals */

func CreateSalesDealHandler(c *gin.Context) {
	var input models.NewSalesDeal
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	deal, err := models.CreateSalesDeal(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deal)
}

func UpdateSalesDealHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewSalesDeal
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	deal, err := models.UpdateSalesDeal(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func DeleteSalesDealHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	deal, err := models.DeleteSalesDeal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func GetSalesDealHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	deal, err := models.GetSalesDeal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func ListSalesDealsHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListSalesDeals(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
