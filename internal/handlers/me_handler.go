package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
	"github.com/BruksfildServices01/tutor-contacts/internal/middleware"
	"github.com/BruksfildServices01/tutor-contacts/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "The account no longer exists")
		return
	}

	var contacts int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Contact{}).
		Where("user_id = ?", userID).
		Count(&contacts).Error; err != nil {
		httperr.FromError(c, err, "failed_to_count_contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     userJSON(&user),
		"contacts": contacts,
	})
}
