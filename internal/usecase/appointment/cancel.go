package appointment

import (
	"context"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/audit"
	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ExecuteStaff cancela desde el panel (admin o barbero sobre su agenda).
func (uc *CancelAppointment) ExecuteStaff(
	ctx context.Context,
	actorID uint,
	barberScope uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if barberScope != 0 && ap.BarberID != barberScope {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return uc.cancel(ctx, &actorID, ap)
}

// ExecuteOwner cancela una cita propia del cliente autenticado.
func (uc *CancelAppointment) ExecuteOwner(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.ClientID == nil || *ap.ClientID != clientID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return uc.cancel(ctx, &clientID, ap)
}

// ExecuteByCode cancela por código público (reservas de invitados).
func (uc *CancelAppointment) ExecuteByCode(
	ctx context.Context,
	code string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByCode(ctx, code)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return uc.cancel(ctx, nil, ap)
}

func (uc *CancelAppointment) cancel(
	ctx context.Context,
	actorID *uint,
	ap *models.Appointment,
) (*models.Appointment, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(settings.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
