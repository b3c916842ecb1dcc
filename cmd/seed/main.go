// Command seed provisions the administrator account and exits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/config"
	mongodao "github.com/gidacan/blog-backend/internal/domain/dao/mongo"
	"github.com/gidacan/blog-backend/internal/domain/repository/impl"
	"github.com/gidacan/blog-backend/internal/security"
	"github.com/gidacan/blog-backend/internal/seed"
	"github.com/gidacan/blog-backend/pkg/logger"
)

func main() {
	var (
		configDir   string
		profilePath string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision the administrator account",
		Long: `Seed upserts the administrator account keyed by email.
Running it repeatedly converges on a single admin record, so it is safe
to include in deployment scripts.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configDir, profilePath)
		},
	}

	cmd.Flags().StringVarP(&configDir, "config", "c", "", "directory containing config.yaml")
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "YAML file describing the admin profile")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configDir, profilePath string) error {
	log := logger.WithContext(logger.Default(), zap.String("component", "seed"))
	defer log.Sync() //nolint:errcheck

	var extraPaths []string
	if configDir != "" {
		extraPaths = append(extraPaths, configDir)
	}
	cfg, err := config.LoadSeed(extraPaths...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	profile := seed.DefaultProfile()
	if profilePath != "" {
		profile, err = seed.LoadProfile(profilePath)
		if err != nil {
			return err
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Database.MongoURI()))
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	// Disconnect runs on every exit path, success or failure
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn("failed to disconnect from mongodb", zap.Error(err))
		}
	}()

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(cfg.Database.Name)
	idCounter := mongodao.NewIDCounter(db)
	userDAO := mongodao.NewUserDAO(db, idCounter)
	users := impl.NewUserRepository(userDAO, nil)
	seeder := seed.NewSeeder(users, security.NewPasswordHasher(), log)

	result, err := seeder.Run(ctx, profile)
	if err != nil {
		return err
	}

	log.Info("seed completed",
		zap.String("email", profile.Email),
		zap.String("result", string(result)))
	return nil
}
