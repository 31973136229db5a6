package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/dvelezmarulanda-coder/barber-platform/internal/audit"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/config"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/handlers"
	infraRepo "github.com/dvelezmarulanda-coder/barber-platform/internal/infra/repository"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/infra/storage"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/middleware"
	"github.com/dvelezmarulanda-coder/barber-platform/internal/models"
	ucAppointment "github.com/dvelezmarulanda-coder/barber-platform/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	imageStore := storage.NewImageStore(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	listMyAppointmentsUC := ucAppointment.NewListMyAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
	)

	myAppointmentsHandler := handlers.NewMyAppointmentsHandler(
		listMyAppointmentsUC,
		cancelAppointmentUC,
	)

	appointmentAdminHandler := handlers.NewAppointmentAdminHandler(
		db,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
	)

	serviceHandler := handlers.NewServiceHandler(db, imageStore)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimitMiddleware(rdb, 60, time.Minute))
		{
			publicAPI.GET("/services", bookingHandler.ListServices)
			publicAPI.GET("/barbers", bookingHandler.ListBarbers)
			publicAPI.GET("/availability", bookingHandler.Availability)

			// identidad opcional: un cliente logueado reserva a su nombre
			publicAPI.POST(
				"/appointments",
				middleware.OptionalAuthMiddleware(cfg),
				bookingHandler.CreateAppointment,
			)
			publicAPI.GET("/appointments/:code", bookingHandler.GetByCode)
			publicAPI.PATCH("/appointments/:code/cancel", bookingHandler.CancelByCode)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware(rdb, 20, time.Minute))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/appointments", myAppointmentsHandler.List)
			secured.PATCH("/me/appointments/:id/cancel", myAppointmentsHandler.Cancel)

			// ------------------------------
			// PANEL (admin y barberos)
			// ------------------------------
			staff := secured.Group("/admin")
			staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleBarber))
			{
				staff.GET("/appointments", appointmentAdminHandler.ListByDate)
				staff.GET("/appointments/month", appointmentAdminHandler.ListByMonth)
				staff.PATCH("/appointments/:id/confirm", appointmentAdminHandler.Confirm)
				staff.PATCH("/appointments/:id/complete", appointmentAdminHandler.Complete)
				staff.PATCH("/appointments/:id/cancel", appointmentAdminHandler.Cancel)
			}

			// ------------------------------
			// PANEL (solo admin)
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.POST("/services/:id/image", serviceHandler.UploadImage)

				admin.GET("/barbers", barberHandler.List)
				admin.GET("/users/search", barberHandler.SearchUsers)
				admin.PATCH("/users/:id/role", barberHandler.UpdateRole)

				admin.GET("/barbers/:id/schedule", scheduleHandler.Get)
				admin.PUT("/barbers/:id/schedule", scheduleHandler.Update)

				admin.GET("/settings", settingsHandler.Get)
				admin.PATCH("/settings", settingsHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
