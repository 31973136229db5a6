package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/dvelezmarulanda-coder/barber-platform/internal/domain/appointment"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/httperr"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSettings(
	ctx context.Context,
) (*models.ShopSettings, error) {

	var settings models.ShopSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", serviceID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Barbers / Schedules
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBarberIDs(
	ctx context.Context,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *AppointmentGormRepository) GetSchedule(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.Schedule, error) {

	var sched models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&sched).Error; err != nil {
		return nil, err
	}
	return &sched, nil
}

func (r *AppointmentGormRepository) ListSchedulesForWeekday(
	ctx context.Context,
	barberIDs []uint,
	weekday int,
) ([]models.Schedule, error) {

	if len(barberIDs) == 0 {
		return []models.Schedule{}, nil
	}

	var scheds []models.Schedule
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id IN ? AND weekday = ? AND active = true",
			barberIDs, weekday,
		).
		Order("barber_id ASC").
		Find(&scheds).Error; err != nil {
		return nil, err
	}
	return scheds, nil
}

// --------------------------------------------------
// Availability reads
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberIDs []uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	if len(barberIDs) == 0 {
		return []models.Appointment{}, nil
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("barber_id", "start_time", "end_time", "status").
		Where(
			"barber_id IN ? AND status <> ? AND start_time >= ? AND start_time < ?",
			barberIDs, string(domain.StatusCancelled), start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListConflicts(
	ctx context.Context,
	barberIDs []uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	if len(barberIDs) == 0 {
		return []models.Appointment{}, nil
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("barber_id", "start_time", "end_time", "status").
		Where(
			"barber_id IN ? AND status <> ? AND start_time < ? AND end_time > ?",
			barberIDs, string(domain.StatusCancelled), end, start,
		).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment write (guard + insert, una transacción)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				ap.BarberID, string(domain.StatusCancelled), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change / lookup)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByCode(
	ctx context.Context,
	code string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("code = ?", code).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Client").
		Preload("Service").
		Where("start_time >= ? AND start_time < ?", start, end)

	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListClientAppointments(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
