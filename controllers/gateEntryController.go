package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

type bulkDeleteRequest struct {
	Ids []int `json:"ids"`
}

/* daily inward */

func CreateDailyInwardHandler(c *gin.Context) {
	var input models.NewDailyInward
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	entry, err := models.CreateDailyInward(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdateDailyInwardHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewDailyInward
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	entry, err := models.UpdateDailyInward(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteDailyInwardHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	entry, err := models.DeleteDailyInward(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func BulkDeleteDailyInwardsHandler(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Ids) == 0 {
		respondError(c, utils.NewValidationError("ids are required"))
		return
	}
	deleted, err := models.BulkDeleteDailyInwards(c.Request.Context(), req.Ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func GetDailyInwardHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	entry, err := models.GetDailyInward(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func ListDailyInwardsHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListDailyInwards(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

/* daily outward */

func CreateDailyOutwardHandler(c *gin.Context) {
	var input models.NewDailyOutward
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	entry, err := models.CreateDailyOutward(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdateDailyOutwardHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewDailyOutward
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	entry, err := models.UpdateDailyOutward(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteDailyOutwardHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	entry, err := models.DeleteDailyOutward(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func BulkDeleteDailyOutwardsHandler(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Ids) == 0 {
		respondError(c, utils.NewValidationError("ids are required"))
		return
	}
	deleted, err := models.BulkDeleteDailyOutwards(c.Request.Context(), req.Ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func GetDailyOutwardHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	entry, err := models.GetDailyOutward(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func ListDailyOutwardsHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListDailyOutwards(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
