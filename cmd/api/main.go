package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"clinicops/internal/audit"
	"clinicops/internal/config"
	"clinicops/internal/database"
	"clinicops/internal/middleware"
	"clinicops/internal/modules/auth"
	"clinicops/internal/modules/availability"
	"clinicops/internal/modules/booking"
	"clinicops/internal/modules/directory"
	"clinicops/internal/modules/roster"
	jwtsvc "clinicops/internal/pkg/jwt"
	"clinicops/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	clinicianRepo := repository.NewClinicianRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	shiftRepo := repository.NewStaffShiftRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	templateRepo := repository.NewShiftTemplateRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	recorder := audit.NewRecorder(auditRepo)
	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authService := auth.NewService(userRepo, j, recorder)
	authHandler := auth.NewHandler(authService)

	rosterService := roster.NewService(clinicianRepo, userRepo, shiftRepo, leaveRepo, templateRepo, recorder, cfg.ShiftEnforcement)
	rosterHandler := roster.NewHandler(rosterService)

	bookingService := booking.NewService(bookingRepo, roomRepo, rosterService, recorder)
	bookingHandler := booking.NewHandler(bookingService)

	availabilityService := availability.NewService(clinicianRepo, roomRepo, rosterService, bookingRepo, cfg.SlotMinutes, cfg.DayStart, cfg.DayEnd)
	availabilityHandler := availability.NewHandler(availabilityService)

	directoryService := directory.NewService(clinicianRepo, patientRepo, roomRepo, recorder)
	directoryHandler := directory.NewHandler(directoryService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// any authenticated staff member
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			authHandler.RegisterPrivateRoutes(authed)
			directoryHandler.RegisterPublicRoutes(authed)
			availabilityHandler.RegisterRoutes(authed)

			// booking mutations are limited to scheduling roles
			scheduling := authed.Group("/")
			scheduling.Use(middleware.CanManageBookings())
			{
				bookingHandler.RegisterRoutes(scheduling)
			}

			admin := authed.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
				directoryHandler.RegisterAdminRoutes(admin)
				rosterHandler.RegisterRoutes(admin)
			}
		}
	}

	log.Println("listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
