// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package main

import (
	"context"
	"fmt"

	"github.com/avoronov/go-fin-tracker/internal/config"
	"github.com/avoronov/go-fin-tracker/internal/handler"
	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/server"
	"github.com/avoronov/go-fin-tracker/internal/service"
	"github.com/avoronov/go-fin-tracker/internal/store"
	"github.com/avoronov/go-fin-tracker/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fin-tracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	var db *store.DB
	switch cfg.Storage.DB.Driver {
	case migrations.DriverPostgres:
		db, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	default:
		db, err = store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
