package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/audit"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/middleware"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

// Horario semanal de un barbero. El PUT reemplaza la semana completa
// (borrar + insertar), igual que lo edita el panel.

type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewScheduleHandler(db *gorm.DB, audit *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{db: db, audit: audit}
}

type ScheduleDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID, ok := h.barberFromPath(c)
	if !ok {
		return
	}

	var schedules []models.Schedule
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&schedules).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, ok := h.barberFromPath(c)
	if !ok {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if d.Active && (d.StartTime == "" || d.EndTime == "" || d.StartTime >= d.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_window",
				"weekday": d.Weekday,
			})
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}

		var toCreate []models.Schedule
		for _, d := range req.Days {
			toCreate = append(toCreate, models.Schedule{
				BarberID:  barberID,
				Weekday:   d.Weekday,
				Active:    d.Active,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "schedule_updated",
		Entity:   "user",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) barberFromPath(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return 0, false
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, models.RoleBarber).
		First(&barber).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return 0, false
	}

	return barber.ID, true
}
