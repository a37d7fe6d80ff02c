package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/app/services/core/treatments"
	"doctors-portal-service/internal/app/services/core/users"
	"doctors-portal-service/internal/app/services/shared/redis"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const commandTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Doctors portal administration",
	}

	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(grantAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the service catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			services := treatments.DefaultCatalog()
			if file != "" {
				var err error
				services, err = readCatalog(file)
				if err != nil {
					return err
				}
			}

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewZapLogger(driverConfig, internalConfig, constvars.ProcessPortalctl)
			defer log.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			db := database.NewMongoDB(ctx, driverConfig, log)
			defer db.Client().Disconnect(context.Background())

			written, err := treatments.NewTreatmentMongoRepository(db).ReplaceAll(ctx, services)
			if err != nil {
				return err
			}

			redisClient := database.NewRedisClient(ctx, driverConfig, log)
			defer redisClient.Close()
			err = redis.NewRedisRepository(redisClient).Delete(ctx, constvars.RedisKeyCatalogServices)
			if err != nil {
				log.Warn("Failed to invalidate catalog cache", zap.Error(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d services\n", written)
			return nil
		},
	}
	cmd.Flags().String("file", "", "JSON file with [{\"name\", \"slots\"}]; defaults to the built-in catalog")
	return cmd
}

func grantAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin <email>",
		Short: "Give an existing user the admin role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := utils.SanitizeEmail(args[0])

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewZapLogger(driverConfig, internalConfig, constvars.ProcessPortalctl)
			defer log.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			db := database.NewMongoDB(ctx, driverConfig, log)
			defer db.Client().Disconnect(context.Background())

			result, err := users.NewUserMongoRepository(db).SetRole(ctx, email, models.RoleAdmin)
			if err != nil {
				return err
			}
			if result.MatchedCount == 0 {
				return fmt.Errorf("no user with email %s, sign in once before granting admin", email)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", email, models.RoleAdmin)
			return nil
		},
	}
}

func readCatalog(path string) ([]models.Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var services []models.Service
	err = json.Unmarshal(raw, &services)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, service := range services {
		if service.Name == "" {
			return nil, fmt.Errorf("service %d has no name", i)
		}
		if service.Slots == nil {
			services[i].Slots = []string{}
		}
	}
	return services, nil
}
