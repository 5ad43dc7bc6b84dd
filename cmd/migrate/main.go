package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jwalitptl/staff-directory/internal/config"
	"github.com/jwalitptl/staff-directory/internal/repository/postgres"
	"github.com/jwalitptl/staff-directory/pkg/logger"
)

func main() {
	direction := flag.String("direction", postgres.MigrateUp, "migration direction: up or down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{Level: logger.ParseLevel(cfg.Log.Level), JSON: cfg.Log.JSON})

	if err := postgres.Migrate(cfg.Database.URL(), *direction); err != nil {
		log.Fatal(err, "migration failed", "direction", *direction)
	}
	log.Info("migrations applied", "direction", *direction)
}
