package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

var availabilityDate = time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC)

func TestGetAvailabilityServiceNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 99,
		Date:      availabilityDate,
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailabilityNoBarbers(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 7,
		Date:      availabilityDate,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityNoSchedulesForDay(t *testing.T) {
	repo := newFakeRepo()
	repo.barberIDs = []uint{1}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 7,
		Date:      availabilityDate,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityBuildsDaySlots(t *testing.T) {
	repo := newFakeRepo()
	repo.barberIDs = []uint{1}
	repo.schedules = []models.Schedule{activeWindow(1, "09:00", "12:00")}
	repo.dayAppts = []models.Appointment{
		{
			BarberID:  1,
			StartTime: time.Date(2030, 3, 12, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2030, 3, 12, 10, 30, 0, 0, time.UTC),
			Status:    "pending",
		},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ServiceID: 7,
		Date:      availabilityDate,
	})
	require.NoError(t, err)
	require.Len(t, slots, 6)

	for _, s := range slots {
		if s.Start == "10:00" {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, "slot %s", s.Start)
		}
	}
}
