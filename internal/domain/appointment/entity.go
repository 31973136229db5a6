package appointment

import "time"

// Cadencia fija de la agenda pública.
const SlotIntervalMinutes = 30

const SlotInterval = SlotIntervalMinutes * time.Minute

type AvailabilityInput struct {
	BarberID  uint // 0 = sin preferencia de barbero
	ServiceID uint
	Date      time.Time // medianoche en el timezone de la barbería
}

// TimeSlot es derivado: se recalcula en cada consulta, nunca se persiste.
// Un slot dentro de ventana pero en conflicto se emite con Available=false
// (deshabilitado, no oculto).
type TimeSlot struct {
	Start     string `json:"start"` // "HH:MM"
	End       string `json:"end"`
	Available bool   `json:"available"`
}
