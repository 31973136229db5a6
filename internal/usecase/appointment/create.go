package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/audit"
	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/timezone"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID  uint // 0 = sin preferencia → se resuelve antes de persistir
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	// Sesión autenticada o datos de invitado.
	ClientID   *uint
	GuestName  string
	GuestPhone string
	GuestEmail string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1) Invitado: nombre y teléfono antes de tocar nada
	// --------------------------------------------------
	if in.ClientID == nil {
		if strings.TrimSpace(in.GuestName) == "" || strings.TrimSpace(in.GuestPhone) == "" {
			return nil, httperr.ErrBusiness("missing_guest_details")
		}
		if !validators.IsPhoneValid(in.GuestPhone) {
			return nil, httperr.ErrBusiness("invalid_guest_phone")
		}
	}

	// --------------------------------------------------
	// 2) Fecha / hora en el timezone de la barbería
	// --------------------------------------------------
	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(settings.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3) Antecedencia mínima (nunca en el pasado)
	// --------------------------------------------------
	now := timezone.NowIn(settings.Timezone)
	minAdvance := time.Duration(settings.MinAdvanceMinutes) * time.Minute
	if start.Before(now.Add(minAdvance)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4) Servicio → duración del intervalo
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	end := start.Add(duration)

	// --------------------------------------------------
	// 5) Barbero: resolver "sin preferencia" o validar ventana
	// --------------------------------------------------
	barberID := in.BarberID
	weekday := int(start.Weekday())

	if barberID == 0 {
		allBarbers, err := uc.repo.ListBarberIDs(ctx)
		if err != nil {
			return nil, err
		}

		schedules, err := uc.repo.ListSchedulesForWeekday(ctx, allBarbers, weekday)
		if err != nil {
			return nil, err
		}

		candidateIDs := make([]uint, 0, len(schedules))
		for _, s := range schedules {
			candidateIDs = append(candidateIDs, s.BarberID)
		}

		conflicts, err := uc.repo.ListConflicts(ctx, candidateIDs, start, end)
		if err != nil {
			return nil, err
		}

		barberID, err = domain.ResolveBarber(start, duration, schedules, conflicts)
		if err != nil {
			return nil, err
		}
	} else {
		sched, err := uc.repo.GetSchedule(ctx, barberID, weekday)
		if err != nil || !domain.CoversInterval(sched, start, end) {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}
	}

	// --------------------------------------------------
	// 6) Insert con verificación final (transacción + lock)
	// --------------------------------------------------
	ap := &models.Appointment{
		Code:       uuid.NewString(),
		BarberID:   barberID,
		ServiceID:  service.ID,
		ClientID:   in.ClientID,
		GuestName:  strings.TrimSpace(in.GuestName),
		GuestPhone: strings.TrimSpace(in.GuestPhone),
		GuestEmail: strings.TrimSpace(in.GuestEmail),
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if in.ClientID != nil {
		ap.GuestName = ""
		ap.GuestPhone = ""
		ap.GuestEmail = ""
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7) Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id":  barberID,
			"service_id": service.ID,
			"start":      start,
		},
	})

	return ap, nil
}
