package handlers

import (
	"errors"
	"net/http"
	"parley/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusUnprocessableEntity, "username is required")
		return
	}

	user, err := h.users.Create(req.Username)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			jsonError(c, http.StatusBadRequest, "Username already taken")
			return
		}
		jsonError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	c.JSON(http.StatusOK, user)
}
