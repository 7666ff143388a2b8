package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

/* paddy milling */

func CreatePaddyMillingHandler(c *gin.Context) {
	var input models.NewPaddyMilling
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	run, err := models.CreatePaddyMilling(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

func UpdatePaddyMillingHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewPaddyMilling
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	run, err := models.UpdatePaddyMilling(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func DeletePaddyMillingHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	run, err := models.DeletePaddyMilling(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func GetPaddyMillingHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	run, err := models.GetPaddyMilling(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func ListPaddyMillingsHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListPaddyMillings(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

/* rice milling */

func CreateRiceMillingHandler(c *gin.Context) {
	var input models.NewRiceMilling
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	run, err := models.CreateRiceMilling(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

func UpdateRiceMillingHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	var input models.NewRiceMilling
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	run, err := models.UpdateRiceMilling(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func DeleteRiceMillingHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	run, err := models.DeleteRiceMilling(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func GetRiceMillingHandler(c *gin.Context) {
	id, ok := parseIdParam(c)
	if !ok {
		return
	}
	run, err := models.GetRiceMilling(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func ListRiceMillingsHandler(c *gin.Context) {
	startDate, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	result, err := models.ListRiceMillings(c.Request.Context(), startDate, endDate, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
