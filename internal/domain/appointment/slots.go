package appointment

import (
	"sort"
	"time"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

// BuildSlots enumera los slots candidatos de un día, con cadencia fija de
// 30 minutos, sobre todas las ventanas de trabajo recibidas.
//
// Con una sola ventana (barbero concreto) el resultado es la agenda de ese
// barbero: los ticks en conflicto se emiten con Available=false. Con varias
// ventanas (sin preferencia de barbero) el resultado es la unión: un tick
// queda disponible si al menos un barbero está libre en él.
//
// Reglas de borde:
//   - intervalos semiabiertos [inicio, fin): citas espalda con espalda no
//     chocan;
//   - un tick se emite solo si [tick, tick+duración] cabe completo antes del
//     fin de la ventana (el límite exacto sí cabe);
//   - si la fecha es hoy, no se generan ticks antes del siguiente límite de
//     30 minutos igual o posterior a `now`;
//   - las citas canceladas no cuentan como conflicto.
func BuildSlots(
	date time.Time,
	duration time.Duration,
	schedules []models.Schedule,
	appointments []models.Appointment,
	now time.Time,
) []TimeSlot {

	status := make(map[int64]bool)

	cutoff := time.Time{}
	if sameDay(date, now) {
		cutoff = nextTick(now)
	}

	for _, sched := range schedules {
		if !sched.Active || sched.StartTime == "" || sched.EndTime == "" {
			continue
		}

		windowStart := atClock(date, sched.StartTime)
		windowEnd := atClock(date, sched.EndTime)

		cur := windowStart
		if !cutoff.IsZero() && cur.Before(cutoff) {
			cur = cutoff
		}

		for !cur.Add(duration).After(windowEnd) {
			booked := false
			for _, ap := range appointments {
				if ap.BarberID != sched.BarberID {
					continue
				}
				if ap.Status == string(StatusCancelled) {
					continue
				}
				if Overlaps(cur, cur.Add(duration), ap.StartTime, ap.EndTime) {
					booked = true
					break
				}
			}

			key := cur.Unix()
			// si otro barbero ya lo dejó disponible, se mantiene disponible
			status[key] = status[key] || !booked

			cur = cur.Add(SlotInterval)
		}
	}

	keys := make([]int64, 0, len(status))
	for k := range status {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	loc := date.Location()
	slots := make([]TimeSlot, 0, len(keys))
	for _, k := range keys {
		start := time.Unix(k, 0).In(loc)
		slots = append(slots, TimeSlot{
			Start:     start.Format("15:04"),
			End:       start.Add(duration).Format("15:04"),
			Available: status[k],
		})
	}

	return slots
}

// Overlaps aplica semántica de intervalos semiabiertos: hay conflicto solo
// con solapamiento no vacío.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// CoversInterval indica si [start, end] cae dentro de la ventana activa.
func CoversInterval(sched *models.Schedule, start, end time.Time) bool {
	if sched == nil || !sched.Active || sched.StartTime == "" || sched.EndTime == "" {
		return false
	}

	windowStart := atClock(start, sched.StartTime)
	windowEnd := atClock(start, sched.EndTime)

	return !start.Before(windowStart) && !end.After(windowEnd)
}

// atClock ancla una hora "HH:MM" sobre la fecha dada, en su timezone.
func atClock(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// nextTick redondea hacia arriba al límite de 30 minutos igual o posterior.
func nextTick(now time.Time) time.Time {
	truncated := time.Date(
		now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute()-now.Minute()%SlotIntervalMinutes, 0, 0,
		now.Location(),
	)
	if truncated.Equal(now) {
		return truncated
	}
	return truncated.Add(SlotInterval)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
