package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/middleware"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/timezone"
	ucAppointment "github.com/dvelezmarulanda-coder/barber-platform/internal/usecase/appointment"
)

// ======================================================
// HANDLER — flujo público de reserva
// ======================================================

type BookingHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
}

func NewBookingHandler(
	db *gorm.DB,
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
) *BookingHandler {
	return &BookingHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicCreateAppointmentRequest struct {
	BarberID  string `json:"barber_id"` // id numérico, "any" o vacío
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm

	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
	GuestEmail string `json:"guest_email"`

	Notes string `json:"notes"`
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *BookingHandler) ListServices(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *BookingHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Select("id", "name").
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar barberos.")
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{"id": b.ID, "name": b.Name})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha y servicio son obligatorios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	barberID, ok := parseBarberSelector(c.Query("barber_id"))
	if !ok {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
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

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:  barberID,
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Servicio inválido.")
			return
		}

		httperr.Internal(c, "availability_failed", "Error al calcular horarios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	barberID, ok := parseBarberSelector(req.BarberID)
	if !ok {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	// identidad de sesión si existe (middleware de auth opcional)
	var clientID *uint
	if v, exists := c.Get(middleware.ContextUserID); exists {
		if id, isUint := v.(uint); isUint {
			clientID = &id
		}
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			BarberID:   barberID,
			ServiceID:  req.ServiceID,
			Date:       req.Date,
			Time:       req.Time,
			ClientID:   clientID,
			GuestName:  req.GuestName,
			GuestPhone: req.GuestPhone,
			GuestEmail: req.GuestEmail,
			Notes:      req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LOOKUP / CANCEL POR CÓDIGO (invitados)
// ======================================================

func (h *BookingHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")

	var ap models.Appointment
	if err := h.db.
		Preload("Barber").
		Preload("Service").
		Where("code = ?", code).
		First(&ap).Error; err != nil {

		httperr.NotFound(c, "appointment_not_found", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *BookingHandler) CancelByCode(c *gin.Context) {
	code := c.Param("code")

	ap, err := h.cancelUC.ExecuteByCode(c.Request.Context(), code)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Reserva no encontrada.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "La reserva ya no puede cancelarse.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Error al cancelar la reserva.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// HELPERS
// ======================================================

// "any", "" y "0" significan sin preferencia.
func parseBarberSelector(raw string) (uint, bool) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" || raw == "any" || raw == "0" {
		return 0, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_guest_details"):
		httperr.BadRequest(c, "missing_guest_details", "Completa tu nombre y teléfono.")
	case httperr.IsBusiness(err, "invalid_guest_phone"):
		httperr.BadRequest(c, "invalid_guest_phone", "Teléfono inválido.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horario inválido.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fuera del horario de atención.")
	case httperr.IsBusiness(err, "no_barbers_scheduled"):
		httperr.Conflict(c, "no_barbers_scheduled", "No hay barberos trabajando ese día.")
	case httperr.IsBusiness(err, "no_barber_covers_time"):
		httperr.Conflict(c, "no_barber_covers_time", "Ningún barbero cubre ese horario.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "El horario que elegiste ya no está disponible. Elige otro.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Error al crear la reserva.")
	}
}
