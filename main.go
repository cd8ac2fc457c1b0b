package main

import (
	"github.com/Anubhavy999/engineering-resource-mgmt/config"
	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/routes"
	"github.com/Anubhavy999/engineering-resource-mgmt/utils"
)

func main() {
	cfg := config.Load()
	logging.InitLogger(cfg.LogFile)
	utils.SetJWTSecret(cfg.JWTSecret)

	db := config.ConnectDB(cfg.DBDSN)
	if err := config.Migrate(db); err != nil {
		logging.Logger.Fatalf("failed to migrate: %v", err)
	}
	config.SeedSuperAdmin(db, cfg.AdminEmail, cfg.AdminPassword)

	r := routes.SetupRouter(db)

	logging.Logger.Infof("starting server on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logging.Logger.Fatalf("server error: %v", err)
	}
}
