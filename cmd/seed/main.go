package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/service"
	"github.com/burningbushdesign/storefront-api/internal/infrastructure/config"
	mongodb "github.com/burningbushdesign/storefront-api/internal/infrastructure/db/mongo"
	"github.com/burningbushdesign/storefront-api/pkg/logger"
)

// Seeds the initial super-admin account so a fresh deployment has a way into
// the back office. Running twice is harmless; an existing account is left
// untouched.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	repo := mongodb.NewAdminRepository(db)
	email := strings.ToLower(cfg.Seed.AdminEmail)

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin account already exists, nothing to do")
		return
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := service.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	created, err := repo.Create(ctx, &domain.AdminUser{
		Email:        email,
		Username:     "admin",
		Name:         cfg.Seed.AdminName,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("id", created.ID).Str("email", created.Email).Msg("seeded super admin")
}
