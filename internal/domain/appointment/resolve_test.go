package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

func TestResolveBarberNoSchedules(t *testing.T) {
	_, err := ResolveBarber(atClock(testDate, "10:00"), 30*time.Minute, nil, nil)

	assert.True(t, httperr.IsBusiness(err, "no_barbers_scheduled"))
}

func TestResolveBarberNoCoverage(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "10:00")}

	// la ventana termina a las 10:00: el tick de las 10:00 ya no está cubierto
	_, err := ResolveBarber(atClock(testDate, "10:00"), 30*time.Minute, schedules, nil)

	assert.True(t, httperr.IsBusiness(err, "no_barber_covers_time"))
}

func TestResolveBarberAllBusy(t *testing.T) {
	schedules := []models.Schedule{
		schedule(1, "09:00", "12:00"),
		schedule(2, "09:00", "12:00"),
	}
	appointments := []models.Appointment{
		booking(1, "10:00", "10:30", StatusPending),
		booking(2, "09:45", "10:15", StatusConfirmed),
	}

	_, err := ResolveBarber(atClock(testDate, "10:00"), 30*time.Minute, schedules, appointments)

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestResolveBarberPicksOnlyFreeBarber(t *testing.T) {
	schedules := []models.Schedule{
		schedule(1, "09:00", "12:00"),
		schedule(2, "09:00", "12:00"),
	}
	appointments := []models.Appointment{
		booking(1, "10:00", "10:30", StatusPending),
	}

	// la elección es aleatoria entre libres: nunca debe salir el ocupado
	for i := 0; i < 20; i++ {
		id, err := ResolveBarber(atClock(testDate, "10:00"), 30*time.Minute, schedules, appointments)
		require.NoError(t, err)
		assert.Equal(t, uint(2), id)
	}
}

func TestResolveBarberIgnoresCancelled(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "12:00")}
	appointments := []models.Appointment{
		booking(1, "10:00", "10:30", StatusCancelled),
	}

	id, err := ResolveBarber(atClock(testDate, "10:00"), 30*time.Minute, schedules, appointments)

	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
}

func TestResolveBarberIgnoresInactiveSchedules(t *testing.T) {
	inactive := schedule(1, "09:00", "12:00")
	inactive.Active = false

	_, err := ResolveBarber(atClock(testDate, "10:00"), 30*time.Minute, []models.Schedule{inactive}, nil)

	assert.True(t, httperr.IsBusiness(err, "no_barber_covers_time"))
}
