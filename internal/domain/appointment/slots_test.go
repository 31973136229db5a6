package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

// martes, lejos de cualquier "hoy"
var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

// now en otro día para que el corte de "hoy" no aplique
var otherDay = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

func schedule(barberID uint, start, end string) models.Schedule {
	return models.Schedule{
		BarberID:  barberID,
		Weekday:   int(testDate.Weekday()),
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
}

func booking(barberID uint, start, end string, status Status) models.Appointment {
	return models.Appointment{
		BarberID:  barberID,
		StartTime: atClock(testDate, start),
		EndTime:   atClock(testDate, end),
		Status:    string(status),
	}
}

func slotByStart(t *testing.T, slots []TimeSlot, start string) TimeSlot {
	t.Helper()
	for _, s := range slots {
		if s.Start == start {
			return s
		}
	}
	t.Fatalf("slot %s not found", start)
	return TimeSlot{}
}

func TestBuildSlotsFullWindow(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "12:00")}

	slots := BuildSlots(testDate, 30*time.Minute, schedules, nil, otherDay)

	require.Len(t, slots, 6)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "11:30", slots[5].Start)
	assert.Equal(t, "12:00", slots[5].End)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Start)
	}
}

// el último slot cabe cuando termina exactamente al cierre de la ventana
func TestBuildSlotsExactFitAtWindowEnd(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "12:00")}

	slots := BuildSlots(testDate, 60*time.Minute, schedules, nil, otherDay)

	require.NotEmpty(t, slots)
	last := slots[len(slots)-1]
	assert.Equal(t, "11:00", last.Start)
	assert.Equal(t, "12:00", last.End)
}

func TestBuildSlotsConflictUsesHalfOpenIntervals(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "12:00")}
	appointments := []models.Appointment{
		booking(1, "10:00", "10:30", StatusConfirmed),
	}

	slots := BuildSlots(testDate, 30*time.Minute, schedules, appointments, otherDay)

	assert.False(t, slotByStart(t, slots, "10:00").Available)

	// espalda con espalda: los vecinos no chocan
	assert.True(t, slotByStart(t, slots, "09:30").Available)
	assert.True(t, slotByStart(t, slots, "10:30").Available)
}

func TestBuildSlotsCancelledIsNotAConflict(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "12:00")}
	appointments := []models.Appointment{
		booking(1, "10:00", "10:30", StatusCancelled),
	}

	slots := BuildSlots(testDate, 30*time.Minute, schedules, appointments, otherDay)

	assert.True(t, slotByStart(t, slots, "10:00").Available)
}

func TestBuildSlotsTodayCutoff(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "12:00")}

	now := time.Date(2026, 3, 10, 10, 5, 0, 0, time.UTC)
	slots := BuildSlots(testDate, 30*time.Minute, schedules, nil, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:30", slots[0].Start)
}

// un now exactamente sobre el límite de 30 minutos no descarta ese tick
func TestBuildSlotsTodayCutoffOnBoundary(t *testing.T) {
	schedules := []models.Schedule{schedule(1, "09:00", "12:00")}

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	slots := BuildSlots(testDate, 30*time.Minute, schedules, nil, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[0].Start)
}

// sin preferencia: el tick queda disponible si al menos un barbero está libre
func TestBuildSlotsUnionAcrossBarbers(t *testing.T) {
	schedules := []models.Schedule{
		schedule(1, "09:00", "12:00"),
		schedule(2, "09:00", "12:00"),
	}
	appointments := []models.Appointment{
		booking(1, "10:00", "10:30", StatusPending),
	}

	slots := BuildSlots(testDate, 30*time.Minute, schedules, appointments, otherDay)

	assert.True(t, slotByStart(t, slots, "10:00").Available)

	// con ambos ocupados el tick cae
	appointments = append(appointments, booking(2, "10:00", "10:30", StatusPending))
	slots = BuildSlots(testDate, 30*time.Minute, schedules, appointments, otherDay)

	assert.False(t, slotByStart(t, slots, "10:00").Available)
}

func TestBuildSlotsInactiveScheduleIgnored(t *testing.T) {
	sched := schedule(1, "09:00", "12:00")
	sched.Active = false

	slots := BuildSlots(testDate, 30*time.Minute, []models.Schedule{sched}, nil, otherDay)

	assert.Empty(t, slots)
}

func TestOverlaps(t *testing.T) {
	a := atClock(testDate, "10:00")
	b := atClock(testDate, "10:30")
	c := atClock(testDate, "11:00")

	assert.True(t, Overlaps(a, c, b, c))
	assert.False(t, Overlaps(a, b, b, c), "back to back")
	assert.False(t, Overlaps(b, c, a, b), "back to back reversed")
}

func TestCoversInterval(t *testing.T) {
	sched := schedule(1, "09:00", "12:00")

	start := atClock(testDate, "11:00")
	end := atClock(testDate, "12:00")
	assert.True(t, CoversInterval(&sched, start, end), "exact fit at close")

	end = atClock(testDate, "12:30")
	assert.False(t, CoversInterval(&sched, start, end))

	assert.False(t, CoversInterval(nil, start, end))

	inactive := schedule(1, "09:00", "12:00")
	inactive.Active = false
	assert.False(t, CoversInterval(&inactive, start, atClock(testDate, "12:00")))
}
