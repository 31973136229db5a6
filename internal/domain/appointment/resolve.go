package appointment

import (
	"math/rand"
	"time"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

// ResolveBarber asigna un barbero concreto cuando el cliente reservó "sin
// preferencia". Recibe las ventanas activas del día y las citas no
// canceladas de esos barberos que tocan el día; devuelve uno al azar entre
// los que cubren la hora y no tienen conflicto.
//
// Errores de negocio, en orden de diagnóstico:
//   - no_barbers_scheduled: nadie tiene horario ese día;
//   - no_barber_covers_time: hay horarios, pero ninguno incluye la hora;
//   - slot_taken: hay cobertura, pero todos están ocupados (perdimos la
//     carrera → el cliente debe elegir otro horario).
func ResolveBarber(
	start time.Time,
	duration time.Duration,
	schedules []models.Schedule,
	appointments []models.Appointment,
) (uint, error) {

	if len(schedules) == 0 {
		return 0, httperr.ErrBusiness("no_barbers_scheduled")
	}

	hm := start.Format("15:04")

	var candidates []uint
	for _, sched := range schedules {
		if !sched.Active {
			continue
		}
		if sched.StartTime <= hm && sched.EndTime > hm {
			candidates = append(candidates, sched.BarberID)
		}
	}

	if len(candidates) == 0 {
		return 0, httperr.ErrBusiness("no_barber_covers_time")
	}

	end := start.Add(duration)

	busy := make(map[uint]bool)
	for _, ap := range appointments {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			busy[ap.BarberID] = true
		}
	}

	var free []uint
	for _, id := range candidates {
		if !busy[id] {
			free = append(free, id)
		}
	}

	if len(free) == 0 {
		return 0, httperr.ErrBusiness("slot_taken")
	}

	return free[rand.Intn(len(free))], nil
}
