package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"medha-admin/models"
	"medha-admin/storage"
)

type UserHandler struct {
	store storage.RegistrantStore
}

func NewUserHandler(store storage.RegistrantStore) *UserHandler {
	return &UserHandler{store: store}
}

// GetUsers returns the full registrant list in store order.
func (h *UserHandler) GetUsers(c *gin.Context) {
	registrants, err := h.store.ListAll(c)
	if err != nil {
		logger.Errorf("Failed to list registrants: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	c.JSON(http.StatusOK, registrants)
}

// GetUsersPaginated serves ?page=&limit= slices. Kept as an optional
// capability; the console fetches the full list instead.
func (h *UserHandler) GetUsersPaginated(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	registrants, err := h.store.ListPage(c, page, limit)
	if err != nil {
		logger.Errorf("Failed to list registrants page %d: %v", page, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	c.JSON(http.StatusOK, registrants)
}

// UpdateUser patches the admin-editable fields of one registrant and
// returns the updated document.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateRegistrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.store.UpdateByID(c, id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Errorf("Failed to update registrant %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteUser removes one registrant.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteByID(c, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Errorf("Failed to delete registrant %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
