package database

import (
	"fmt"
	"log"
	"time"

	"hospital-backend/internal/config"
	"hospital-backend/internal/models"
	"hospital-backend/pkg/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seed(db)

	log.Println("Successfully connected to database")

	return db
}

// migrate runs AutoMigrate in parent->child order so foreign keys resolve
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Department{},
		&models.Doctor{},
		&models.Patient{},
		&models.Staff{},
		&models.StaffAssignment{},
		&models.Appointment{},
		&models.MedicalRecord{},
		&models.LabReport{},
		&models.Room{},
		&models.Bed{},
		&models.Admission{},
		&models.Bill{},
		&models.Payment{},
		&models.AuditLog{},
	)
}

// seed ensures a default admin account and baseline departments exist.
// Idempotent: every run checks before inserting.
func seed(db *gorm.DB) {
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := utils.HashPassword("admin123")
		if err != nil {
			log.Printf("Warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username:     "admin",
				Email:        "admin@hospital.local",
				PasswordHash: hash,
				Role:         models.RoleAdmin,
				FirstName:    "System",
				LastName:     "Admin",
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("Warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var deptCount int64
	db.Model(&models.Department{}).Count(&deptCount)
	if deptCount == 0 {
		departments := []models.Department{
			{Name: "General Medicine", Floor: 1},
			{Name: "Surgery", Floor: 2},
			{Name: "Intensive Care", Floor: 3},
		}
		if err := db.Create(&departments).Error; err != nil {
			log.Printf("Warning: failed to seed departments: %v", err)
		} else {
			log.Println("Departments seeded")
		}
	}
}
