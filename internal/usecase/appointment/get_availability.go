package appointment

import (
	"context"
	"time"

	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// barbero concreto o todos (sin preferencia)
	var barberIDs []uint
	if in.BarberID != 0 {
		barberIDs = []uint{in.BarberID}
	} else {
		barberIDs, err = uc.repo.ListBarberIDs(ctx)
		if err != nil {
			return nil, err
		}
	}

	if len(barberIDs) == 0 {
		return []domain.TimeSlot{}, nil
	}

	weekday := int(in.Date.Weekday())

	schedules, err := uc.repo.ListSchedulesForWeekday(ctx, barberIDs, weekday)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return []domain.TimeSlot{}, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		barberIDs,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	now := timezone.NowIn(settings.Timezone)

	return domain.BuildSlots(in.Date, duration, schedules, appointments, now), nil
}
