package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httpresp"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/middleware"
	ucAppointment "github.com/dvelezmarulanda-coder/barber-platform/internal/usecase/appointment"
)

// Panel del cliente: sus reservas y cancelación de las propias.

type MyAppointmentsHandler struct {
	listUC   *ucAppointment.ListMyAppointments
	cancelUC *ucAppointment.CancelAppointment
}

func NewMyAppointmentsHandler(
	listUC *ucAppointment.ListMyAppointments,
	cancelUC *ucAppointment.CancelAppointment,
) *MyAppointmentsHandler {
	return &MyAppointmentsHandler{
		listUC:   listUC,
		cancelUC: cancelUC,
	}
}

func (h *MyAppointmentsHandler) List(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	appointments, err := h.listUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar tus reservas.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *MyAppointmentsHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.ExecuteOwner(c.Request.Context(), clientID, uint(id))
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
