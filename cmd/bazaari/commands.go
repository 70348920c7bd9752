package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adityakr/bazaari/config"
	"github.com/adityakr/bazaari/database/migrations"
	"github.com/adityakr/bazaari/database/seeders"
	"github.com/adityakr/bazaari/internal/server"
	"github.com/adityakr/bazaari/pkg/migration"
	"github.com/adityakr/bazaari/pkg/mongodb"
)

// withDB loads config, connects to Mongo, runs fn and disconnects.
func withDB(fn func(ctx context.Context) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := mongodb.Connect(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	defer func() { _ = mongodb.Disconnect(ctx) }()
	return fn(ctx)
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed products and users into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(seeders.Run)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(ctx context.Context) error {
				return migration.Apply(ctx, migrations.All())
			})
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print the registered API routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range server.Routes() {
				fmt.Printf("%-7s %s\n", info.Method, info.Pattern)
			}
			return nil
		},
	}
}
