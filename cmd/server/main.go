package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-backend/internal/config"
	"hospital-backend/internal/database"
	"hospital-backend/internal/handler"
	"hospital-backend/internal/middleware"
	"hospital-backend/internal/models"
	"hospital-backend/internal/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	gin.SetMode(cfg.Server.GinMode)

	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	db := database.Connect(cfg)

	// Repositories
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	clinicalRepo := repository.NewClinicalRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	admissionRepo := repository.NewAdmissionRepo(db)
	billRepo := repository.NewBillRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// Services
	authService := service.NewAuthService(userRepo, auditRepo)
	profileService := service.NewProfileService(profileRepo, userRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, profileRepo)
	clinicalService := service.NewClinicalService(clinicalRepo, profileRepo)
	facilityService := service.NewFacilityService(departmentRepo, roomRepo, admissionRepo, auditRepo)
	admissionService := service.NewAdmissionService(admissionRepo, profileRepo, roomRepo, billRepo, auditRepo)
	billingService := service.NewBillingService(billRepo, profileRepo, auditRepo)
	auditService := service.NewAuditService(auditRepo)
	workerService := service.NewWorkerService(appointmentRepo, cfg.Worker.SweepInterval)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService, profileService)
	clinicalHandler := handler.NewClinicalHandler(clinicalService, profileService)
	facilityHandler := handler.NewFacilityHandler(facilityService)
	admissionHandler := handler.NewAdmissionHandler(admissionService)
	billingHandler := handler.NewBillingHandler(billingService)
	auditHandler := handler.NewAuditHandler(auditService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// Profiles
		patients := api.Group("/patients")
		{
			patients.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), profileHandler.CreatePatient)
			patients.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RoleStaff), profileHandler.ListPatients)
			patients.GET("/:id", profileHandler.GetPatient)
			patients.GET("/:id/records", clinicalHandler.ListMedicalRecords)
			patients.GET("/:id/lab-reports", clinicalHandler.ListLabReports)
			patients.GET("/:id/admissions", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RoleStaff), admissionHandler.ListByPatient)
			patients.GET("/:id/bills", billingHandler.ListByPatient)
		}

		doctors := api.Group("/doctors")
		{
			doctors.POST("", middleware.RequireRoles(models.RoleAdmin), profileHandler.CreateDoctor)
			doctors.GET("", profileHandler.ListDoctors)
			doctors.GET("/:id", profileHandler.GetDoctor)
		}

		staff := api.Group("/staff")
		{
			staff.POST("", middleware.RequireRoles(models.RoleAdmin), profileHandler.CreateStaff)
			staff.GET("", middleware.RequireRoles(models.RoleAdmin), profileHandler.ListStaff)
			staff.POST("/assignments", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), profileHandler.CreateAssignment)
			staff.GET("/:id/assignments", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), profileHandler.ListAssignments)
		}

		// Appointments
		appointments := api.Group("/appointments")
		{
			appointments.POST("", middleware.RequireRoles(models.RolePatient), appointmentHandler.Book)
			appointments.GET("", appointmentHandler.ListMine)
			appointments.PATCH("/:id/status", middleware.RequireRoles(models.RoleDoctor), appointmentHandler.UpdateStatus)
		}

		// Clinical
		records := api.Group("/medical-records")
		{
			records.POST("", middleware.RequireRoles(models.RoleDoctor), clinicalHandler.CreateMedicalRecord)
			records.GET("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RoleStaff), clinicalHandler.GetMedicalRecord)
		}

		api.POST("/lab-reports", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RoleStaff), clinicalHandler.CreateLabReport)

		// Facility
		departments := api.Group("/departments")
		{
			departments.GET("", facilityHandler.ListDepartments)
			departments.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), facilityHandler.CreateDepartment)
			departments.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), facilityHandler.UpdateDepartment)
			departments.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), facilityHandler.DeleteDepartment)
			departments.GET("/:id/rooms", facilityHandler.ListDepartmentRooms)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", facilityHandler.ListRooms)
			rooms.GET("/:id", facilityHandler.GetRoom)
			rooms.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), facilityHandler.CreateRoom)
			rooms.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), facilityHandler.UpdateRoom)
			rooms.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), facilityHandler.DeleteRoom)
			rooms.POST("/:id/beds", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), facilityHandler.CreateBed)
		}

		beds := api.Group("/beds")
		{
			beds.GET("", facilityHandler.ListBeds)
			beds.PATCH("/:id/status", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), facilityHandler.OverrideBedStatus)
		}

		// Admissions
		admissions := api.Group("/admissions")
		{
			admissions.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), admissionHandler.Admit)
			admissions.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RoleStaff), admissionHandler.List)
			admissions.GET("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor, models.RoleStaff), admissionHandler.Get)
			admissions.GET("/:id/bills", billingHandler.ListByAdmission)
			admissions.POST("/:id/discharge", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), admissionHandler.Discharge)
			admissions.POST("/:id/transfer", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), admissionHandler.Transfer)
		}

		// Billing
		bills := api.Group("/bills")
		{
			bills.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), billingHandler.CreateBill)
			bills.GET("/:id", billingHandler.GetBill)
			bills.POST("/:id/mark-paid", middleware.RequireRoles(models.RoleAdmin), billingHandler.MarkPaid)
			bills.POST("/:id/payments", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff), billingHandler.RecordPayment)
			bills.GET("/:id/payments", billingHandler.ListPayments)
		}

		// Audit trail
		api.GET("/audit-logs", middleware.RequireRoles(models.RoleAdmin), auditHandler.List)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go workerService.Start(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
