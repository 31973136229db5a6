package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/audit"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httpresp"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/middleware"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

// Gestión de barberos: listar, buscar usuarios y promover/degradar roles.

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, audit *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: audit}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ======================================================
// LIST BARBERS
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// SEARCH USERS (para promover por correo)
// ======================================================

func (h *BarberHandler) SearchUsers(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_query"})
		return
	}

	like := "%" + query + "%"

	var users []models.User
	if err := h.db.
		Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", like, like).
		Order("id ASC").
		Limit(20).
		Find(&users).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_search_users"})
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// UPDATE ROLE
// ======================================================

func (h *BarberHandler) UpdateRole(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != models.RoleClient && role != models.RoleBarber && role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	// un admin no puede degradarse a sí mismo y dejar el panel sin dueño
	if user.ID == actorID && role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot_demote_self"})
		return
	}

	user.Role = role
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_role"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "role_updated",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": role},
	})

	c.JSON(http.StatusOK, user)
}
