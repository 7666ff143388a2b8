package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(c, utils.NewValidationError("username and password are required"))
		return
	}

	token, user, err := models.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Do not leak whether the username exists.
		if utils.IsNotFoundError(err) || utils.IsValidationError(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// CreateUserHandler registers a user in the caller's mill. Admin only,
// enforced at the route.
func CreateUserHandler(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("invalid request body"))
		return
	}
	user, err := models.CreateUser(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
