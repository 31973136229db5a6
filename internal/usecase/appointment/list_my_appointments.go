package appointment

import (
	"context"

	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(
	repo domain.Repository,
) *ListMyAppointments {
	return &ListMyAppointments{
		repo: repo,
	}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListClientAppointments(ctx, clientID)
}
