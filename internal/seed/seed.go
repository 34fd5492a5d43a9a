package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/mesconnect/backend/internal/app/models"
	appRepos "github.com/mesconnect/backend/internal/app/repositories"
	"github.com/mesconnect/backend/internal/config"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	adminEmail := cfg.Seed.AdminEmail
	if adminEmail == "" {
		lgr.Info().Msg("No seed admin email configured, skipping default admin creation")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		lgr.Debug().Str("email", adminEmail).Msg("Default admin account already present")
		return nil
	}

	password := cfg.Seed.AdminPassword
	if password == "" {
		lgr.Warn().Str("email", adminEmail).Msg("No seed admin password configured, skipping default admin creation")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Email:      adminEmail,
		Password:   string(hashed),
		Role:       appModels.RoleAdmin,
		FirstName:  "Platform",
		LastName:   "Admin",
		IsVerified: true,
	}

	id, err := userRepo.Create(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Int64("userId", id).Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
