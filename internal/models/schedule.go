package models

import "time"

// Ventana semanal de trabajo de un barbero. Como máximo una fila por
// (barbero, día de la semana); si no existe fila, el barbero no trabaja
// ese día.
type Schedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_schedule_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_schedule_barber_weekday" json:"weekday"` // 0=domingo .. 6=sábado

	StartTime string `gorm:"size:5" json:"start_time"` // "HH:MM"
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
