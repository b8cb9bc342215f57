package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/fitnessapi/internal"
	"github.com/2beens/fitnessapi/internal/config"
	"github.com/2beens/fitnessapi/internal/logging"
	"github.com/2beens/fitnessapi/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	versionInfo, versionErr := tryGetLastCommitHash()

	if err := logging.Setup(logging.LoggerSetupParams{
		ServiceName:   "fitness-api",
		Environment:   cfg.Environment,
		Version:       versionInfo,
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Rotation: logging.FileRotation{
			MaxSizeMB:  cfg.LogFileMaxSizeMB,
			MaxBackups: cfg.LogFileMaxBackups,
			MaxAgeDays: cfg.LogFileMaxAgeDays,
		},
		SentryEnabled:          cfg.SentryEnabled,
		SentryDSN:              os.Getenv("SENTRY_DSN"),
		SentryTracesSampleRate: cfg.SentryTracesSampleRate,
	}); err != nil {
		log.Fatalf("setup logging: %s", err)
	}

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	if versionErr != nil {
		log.Tracef("failed to get last commit hash / version info: %s", versionErr)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	redisPassword := os.Getenv("FITNESS_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITNESS_REDIS_PASS")
	}

	postgresPassword := os.Getenv("FITNESS_POSTGRES_PASS")
	if postgresPassword == "" {
		log.Warnln("postgres password not set. use FITNESS_POSTGRES_PASS")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			PostgresPassword:        postgresPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
