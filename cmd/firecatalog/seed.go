package main

import (
	"context"
	"fmt"

	"firecatalog/internal/db"
	"firecatalog/internal/seed"
	"firecatalog/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with initial data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		departmentRepo := store.NewDepartmentRepository(pool)
		truckRepo := store.NewTruckRepository(pool)

		logrus.Info("Seeding departments...")
		departments, err := seed.SeedDepartments(ctx, departmentRepo)
		if err != nil {
			return fmt.Errorf("failed to seed departments: %w", err)
		}

		logrus.Info("Seeding trucks...")
		if err := seed.SeedTrucks(ctx, truckRepo, departments); err != nil {
			return fmt.Errorf("failed to seed trucks: %w", err)
		}

		logrus.Info("Seed data loaded successfully")

		return nil
	},
}
