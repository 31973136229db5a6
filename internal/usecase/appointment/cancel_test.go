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

func seedAppointment(repo *fakeRepo, ap models.Appointment) *models.Appointment {
	if ap.ID == 0 {
		ap.ID = uint(len(repo.appointments) + 1)
	}
	repo.appointments[ap.ID] = &ap
	return repo.appointments[ap.ID]
}

func TestCancelOwnerRejectsForeignAppointment(t *testing.T) {
	repo := newFakeRepo()
	owner := uint(42)
	seedAppointment(repo, models.Appointment{
		ID:       1,
		ClientID: &owner,
		Status:   "pending",
	})
	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.ExecuteOwner(context.Background(), 99, 1)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelOwner(t *testing.T) {
	repo := newFakeRepo()
	owner := uint(42)
	seedAppointment(repo, models.Appointment{
		ID:       1,
		ClientID: &owner,
		Status:   "confirmed",
	})
	uc := NewCancelAppointment(repo, testDispatcher())

	ap, err := uc.ExecuteOwner(context.Background(), owner, 1)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
	require.NotNil(t, repo.updated)
}

func TestCancelByCode(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, models.Appointment{
		ID:        1,
		Code:      "abc-123",
		GuestName: "Juan",
		Status:    "pending",
	})
	uc := NewCancelAppointment(repo, testDispatcher())

	ap, err := uc.ExecuteByCode(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)

	_, err = uc.ExecuteByCode(context.Background(), "nope")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

// un barbero no puede tocar la agenda de otro
func TestCancelStaffScope(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, models.Appointment{
		ID:       1,
		BarberID: 5,
		Status:   "pending",
	})
	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.ExecuteStaff(context.Background(), 7, 7, 1)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	// el admin (scope 0) sí puede
	ap, err := uc.ExecuteStaff(context.Background(), 9, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
}

func TestCancelTerminalState(t *testing.T) {
	repo := newFakeRepo()
	done := time.Now()
	seedAppointment(repo, models.Appointment{
		ID:          1,
		Status:      "completed",
		CompletedAt: &done,
	})
	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.ExecuteStaff(context.Background(), 9, 0, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
