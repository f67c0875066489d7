// Package main is the entry point for the batch-service application.
package main

import (
	"github.com/guttosm/batch-service/config"
	"github.com/guttosm/batch-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	err := server.Run()
	cleanup()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
