package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

func activeWindow(barberID uint, start, end string) models.Schedule {
	return models.Schedule{
		BarberID:  barberID,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
}

func guestInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		BarberID:   1,
		ServiceID:  7,
		Date:       "2030-03-12",
		Time:       "10:00",
		GuestName:  "Juan Pérez",
		GuestPhone: "+57 300 123 4567",
	}
}

func TestCreateGuestValidationShortCircuits(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	in := guestInput()
	in.GuestName = ""

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "missing_guest_details"))
	assert.Empty(t, repo.calls, "no debe tocar el repo antes de validar al invitado")
}

func TestCreateInvalidGuestPhone(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	in := guestInput()
	in.GuestPhone = "abc-123"

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "invalid_guest_phone"))
	assert.Empty(t, repo.calls)
}

func TestCreateRejectsPastStart(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = []models.Schedule{activeWindow(1, "09:00", "18:00")}
	uc := NewCreateAppointment(repo, testDispatcher())

	in := guestInput()
	in.Date = "2020-01-01"

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateServiceNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	in := guestInput()
	in.ServiceID = 99

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateOutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo()
	// la ventana cierra a las 10:00: la cita 10:00–10:30 no cabe
	repo.schedules = []models.Schedule{activeWindow(1, "09:00", "10:00")}
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), guestInput())

	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
	assert.Nil(t, repo.created)
}

func TestCreateConcreteBarber(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = []models.Schedule{activeWindow(1, "09:00", "18:00")}
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), guestInput())
	require.NoError(t, err)

	assert.Equal(t, uint(1), ap.BarberID)
	assert.Equal(t, "pending", ap.Status)
	assert.NotEmpty(t, ap.Code)
	assert.Equal(t, "Juan Pérez", ap.GuestName)
	assert.Equal(t, 30*time.Minute, ap.EndTime.Sub(ap.StartTime))
	require.NotNil(t, repo.created)
}

func TestCreateAuthenticatedClearsGuestFields(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = []models.Schedule{activeWindow(1, "09:00", "18:00")}
	uc := NewCreateAppointment(repo, testDispatcher())

	clientID := uint(42)
	in := guestInput()
	in.ClientID = &clientID
	in.GuestName = "no debería quedar"
	in.GuestPhone = "3001234567"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, ap.ClientID)
	assert.Equal(t, clientID, *ap.ClientID)
	assert.Empty(t, ap.GuestName)
	assert.Empty(t, ap.GuestPhone)
	assert.Empty(t, ap.GuestEmail)
}

func TestCreateAnyResolvesFreeBarber(t *testing.T) {
	repo := newFakeRepo()
	repo.barberIDs = []uint{1, 2}
	repo.schedules = []models.Schedule{
		activeWindow(1, "09:00", "18:00"),
		activeWindow(2, "09:00", "18:00"),
	}
	repo.conflicts = []models.Appointment{
		{
			BarberID:  1,
			StartTime: time.Date(2030, 3, 12, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2030, 3, 12, 10, 30, 0, 0, time.UTC),
			Status:    "confirmed",
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher())

	in := guestInput()
	in.BarberID = 0

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, uint(2), ap.BarberID)
}

func TestCreateAnyNoBarbersScheduled(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	in := guestInput()
	in.BarberID = 0

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "no_barbers_scheduled"))
}

// la verificación final dentro de la transacción aborta el insert
func TestCreateGuardRace(t *testing.T) {
	repo := newFakeRepo()
	repo.schedules = []models.Schedule{activeWindow(1, "09:00", "18:00")}
	repo.createErr = httperr.ErrBusiness("slot_taken")
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), guestInput())

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	assert.Nil(t, repo.created)
	assert.Empty(t, repo.appointments)
}
