package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservio/internal/auth"
)

type registerPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/register
func (h *RoomsHandler) Register(c *gin.Context) {
	var payload registerPayload
	if !bindJSON(c, &payload, "registration") {
		return
	}

	user, token, err := h.Auth.Register(c.Request.Context(), auth.RegisterInput{
		Username: payload.Username,
		Email:    payload.Email,
		FullName: payload.FullName,
		Password: payload.Password,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	h.Log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *RoomsHandler) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "login") {
		return
	}

	user, token, err := h.Auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
