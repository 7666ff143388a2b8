package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// GetMillHandler returns the caller's own mill profile.
func GetMillHandler(c *gin.Context) {
	ctx := c.Request.Context()
	millId, ok := utils.GetMillIdFromContext(ctx)
	if !ok || millId == "" {
		respondError(c, utils.NewValidationError("mill id is required"))
		return
	}
	mill, err := models.GetMillById(ctx, millId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mill)
}

// UpdateMillHandler edits the caller's mill profile. Admin only, enforced at
// the route.
func UpdateMillHandler(c *gin.Context) {
	ctx := c.Request.Context()
	millId, ok := utils.GetMillIdFromContext(ctx)
	if !ok || millId == "" {
		respondError(c, utils.NewValidationError("mill id is required"))
		return
	}
	var input models.NewMill
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	mill, err := models.UpdateMill(ctx, millId, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mill)
}
