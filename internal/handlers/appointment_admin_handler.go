package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/middleware"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/timezone"
	ucAppointment "github.com/dvelezmarulanda-coder/barber-platform/internal/usecase/appointment"
)

// ======================================================
// HANDLER — agenda del panel (admin y barberos)
// ======================================================

type AppointmentAdminHandler struct {
	db          *gorm.DB
	listByDate  *ucAppointment.ListAppointmentsByDate
	listByMonth *ucAppointment.ListAppointmentsByMonth
	confirmUC   *ucAppointment.ConfirmAppointment
	completeUC  *ucAppointment.CompleteAppointment
	cancelUC    *ucAppointment.CancelAppointment
}

func NewAppointmentAdminHandler(
	db *gorm.DB,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
) *AppointmentAdminHandler {
	return &AppointmentAdminHandler{
		db:          db,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		confirmUC:   confirmUC,
		completeUC:  completeUC,
		cancelUC:    cancelUC,
	}
}

// Los barberos solo ven y tocan su propia agenda; el admin, toda.
func (h *AppointmentAdminHandler) scope(c *gin.Context) (actorID uint, barberScope uint) {
	actorID = c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == models.RoleBarber {
		return actorID, actorID
	}
	return actorID, 0
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentAdminHandler) ListByDate(c *gin.Context) {
	_, barberScope := h.scope(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	var settings models.ShopSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Error de configuración.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(settings.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), barberScope, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar la agenda.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentAdminHandler) ListByMonth(c *gin.Context) {
	_, barberScope := h.scope(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), barberScope, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar la agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentAdminHandler) Confirm(c *gin.Context) {
	actorID, barberScope := h.scope(c)

	id, ok := appointmentIDFromPath(c)
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), actorID, barberScope, id)
	if err != nil {
		mapStateChangeErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentAdminHandler) Complete(c *gin.Context) {
	actorID, barberScope := h.scope(c)

	id, ok := appointmentIDFromPath(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), actorID, barberScope, id)
	if err != nil {
		mapStateChangeErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentAdminHandler) Cancel(c *gin.Context) {
	actorID, barberScope := h.scope(c)

	id, ok := appointmentIDFromPath(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.ExecuteStaff(c.Request.Context(), actorID, barberScope, id)
	if err != nil {
		mapStateChangeErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// HELPERS
// ======================================================

func appointmentIDFromPath(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func mapStateChangeErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "La cita no admite esa transición.")
	default:
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar la cita.")
	}
}
