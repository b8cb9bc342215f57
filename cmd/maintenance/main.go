// maintenance runs one-off jobs against the fitness db: schema migrations and
// the empty workouts sweep, outside the api process.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/fitnessapi/internal/config"
	"github.com/2beens/fitnessapi/internal/db"
	"github.com/2beens/fitnessapi/internal/logging"
	"github.com/2beens/fitnessapi/internal/workouts"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	migrate := flag.Bool("migrate", true, "run schema migrations")
	cleanEmpty := flag.Bool("clean-empty", false, "delete empty workouts older than the configured max age")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	if err := logging.Setup(logging.LoggerSetupParams{
		ServiceName:   "fitness-maintenance",
		Environment:   cfg.Environment,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	}); err != nil {
		log.Fatalf("setup logging: %s", err)
	}

	dbParams := db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITNESS_POSTGRES_PASS"),
	}

	if *migrate {
		log.Println("running migrations ...")
		if err := db.Migrate(dbParams); err != nil {
			log.Fatalf("migrate: %s", err)
		}
	}

	if !*cleanEmpty {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	maxAge := cfg.EmptyWorkoutMaxAge.Duration
	deleted, err := workouts.NewWorkoutsRepo(dbPool).DeleteEmptyWorkouts(ctx, time.Now().Add(-maxAge))
	if err != nil {
		log.Fatalf("clean empty workouts: %s", err)
	}
	log.Printf("deleted %d empty workouts older than %s", deleted, maxAge)
}
