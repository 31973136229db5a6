package appointment

import (
	"context"
	"time"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

type Repository interface {
	// -------- Settings --------
	GetSettings(ctx context.Context) (*models.ShopSettings, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Barbers / Schedules --------
	ListBarberIDs(ctx context.Context) ([]uint, error)

	GetSchedule(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.Schedule, error)

	ListSchedulesForWeekday(
		ctx context.Context,
		barberIDs []uint,
		weekday int,
	) ([]models.Schedule, error)

	// -------- Availability reads (excluyen canceladas) --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberIDs []uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListConflicts(
		ctx context.Context,
		barberIDs []uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment write --------
	// CreateAppointment ejecuta la verificación final de disponibilidad y el
	// insert en una sola transacción con lock sobre las filas en conflicto.
	// Devuelve slot_taken si el horario se ocupó entre la consulta y el insert.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / lookup) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentByCode(
		ctx context.Context,
		code string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	// barberID = 0 lista todos los barberos.
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListClientAppointments(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
