package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código público para consultar/cancelar sin sesión (invitados).
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Cliente autenticado o datos de invitado, nunca ambos.
	ClientID   *uint  `json:"client_id"`
	Client     *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`
	GuestName  string `gorm:"size:100" json:"guest_name"`
	GuestPhone string `gorm:"size:20" json:"guest_phone"`
	GuestEmail string `gorm:"size:100" json:"guest_email"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) ClientDisplayName() string {
	if a.Client != nil {
		return a.Client.Name
	}
	return a.GuestName
}
