package config

import (
	"time"

	"github.com/Anubhavy999/engineering-resource-mgmt/constants"
	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(dsn string) *gorm.DB {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		logging.Logger.Infof("trying to connect to DB (attempt %d/%d)", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logging.Logger.Info("connected to DB successfully")
			break
		}

		logging.Logger.Warnf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		logging.Logger.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Assignment{},
		&models.AssignmentBackup{},
		&models.Notification{},
		&models.TaskComment{},
	)
}

// SeedSuperAdmin creates the single distinguished super-admin account when
// no super-admin exists yet. Credentials come from the environment so the
// account never ships with a hardcoded password.
func SeedSuperAdmin(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("is_super_admin = ?", true).
		Count(&count).Error; err != nil {
		logging.Logger.Warnf("failed to check super-admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logging.Logger.Warnf("failed to hash super-admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Super Admin",
		Email:        email,
		Password:     string(hash),
		Role:         constants.RoleManager,
		IsSuperAdmin: true,
		MaxCapacity:  constants.DefaultMaxCapacity,
	}

	if err := db.Create(&admin).Error; err != nil {
		logging.Logger.Warnf("failed to create super-admin: %v", err)
		return
	}

	logging.Logger.Infof("created super-admin user: %s", email)
}
