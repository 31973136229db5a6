package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/audit"
	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo implementa domain.Repository en memoria para los tests de los
// casos de uso. `createErr` simula la verificación final de la transacción.
type fakeRepo struct {
	settings  *models.ShopSettings
	service   *models.Service
	barberIDs []uint
	schedules []models.Schedule
	dayAppts  []models.Appointment
	conflicts []models.Appointment

	appointments map[uint]*models.Appointment

	createErr error
	created   *models.Appointment
	updated   *models.Appointment

	calls []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		settings: &models.ShopSettings{
			ID:       1,
			Name:     "Barbería",
			Timezone: "UTC",
		},
		service: &models.Service{
			ID:          7,
			Name:        "Corte clásico",
			DurationMin: 30,
			Active:      true,
		},
		appointments: make(map[uint]*models.Appointment),
	}
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func (f *fakeRepo) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeRepo) GetSettings(ctx context.Context) (*models.ShopSettings, error) {
	f.record("GetSettings")
	return f.settings, nil
}

func (f *fakeRepo) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	f.record("GetService")
	if f.service == nil || f.service.ID != serviceID {
		return nil, errNotFound
	}
	return f.service, nil
}

func (f *fakeRepo) ListBarberIDs(ctx context.Context) ([]uint, error) {
	f.record("ListBarberIDs")
	return f.barberIDs, nil
}

func (f *fakeRepo) GetSchedule(ctx context.Context, barberID uint, weekday int) (*models.Schedule, error) {
	f.record("GetSchedule")
	for i := range f.schedules {
		if f.schedules[i].BarberID == barberID {
			return &f.schedules[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListSchedulesForWeekday(ctx context.Context, barberIDs []uint, weekday int) ([]models.Schedule, error) {
	f.record("ListSchedulesForWeekday")
	return f.schedules, nil
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, barberIDs []uint, start, end time.Time) ([]models.Appointment, error) {
	f.record("ListAppointmentsForDay")
	return f.dayAppts, nil
}

func (f *fakeRepo) ListConflicts(ctx context.Context, barberIDs []uint, start, end time.Time) ([]models.Appointment, error) {
	f.record("ListConflicts")
	return f.conflicts, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.record("CreateAppointment")
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = uint(len(f.appointments) + 1)
	f.appointments[ap.ID] = ap
	f.created = ap
	return nil
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	f.record("GetAppointmentByID")
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return nil, errNotFound
	}
	return ap, nil
}

func (f *fakeRepo) GetAppointmentByCode(ctx context.Context, code string) (*models.Appointment, error) {
	f.record("GetAppointmentByCode")
	for _, ap := range f.appointments {
		if ap.Code == code {
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.record("UpdateAppointment")
	f.appointments[ap.ID] = ap
	f.updated = ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	f.record("ListAppointmentsForPeriod")
	var out []models.Appointment
	for _, ap := range f.appointments {
		if barberID != 0 && ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListClientAppointments(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	f.record("ListClientAppointments")
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID != nil && *ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
