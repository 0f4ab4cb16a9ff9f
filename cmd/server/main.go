package main

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ah0048/BrainWise-JobTask/internal/config"
	"github.com/ah0048/BrainWise-JobTask/internal/db"
	"github.com/ah0048/BrainWise-JobTask/internal/models"
	"github.com/ah0048/BrainWise-JobTask/internal/records"
	"github.com/ah0048/BrainWise-JobTask/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	if err := bootstrapAdmin(cfg, records.NewService(database)); err != nil {
		log.Fatalf("admin bootstrap error: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, database, cfg)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// bootstrapAdmin seeds the first admin account from the environment so a
// fresh deployment has a way in. An existing account with the same email is
// left alone.
func bootstrapAdmin(cfg config.Config, service *records.Service) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	if _, err := service.FindUserByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, records.ErrNotFound) {
		return err
	}

	_, err := service.CreateUser(ctx, records.UserInput{
		Email:    cfg.AdminEmail,
		Name:     "Administrator",
		Password: cfg.AdminPassword,
		Role:     models.RoleAdmin,
	})
	return err
}
