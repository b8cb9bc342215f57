package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitnessapi/internal/auth"
	"github.com/2beens/fitnessapi/internal/config"
	"github.com/2beens/fitnessapi/internal/db"
	"github.com/2beens/fitnessapi/internal/exercises"
	"github.com/2beens/fitnessapi/internal/middleware"
	"github.com/2beens/fitnessapi/internal/telemetry/metrics"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/internal/users"
	"github.com/2beens/fitnessapi/internal/weightlogs"
	"github.com/2beens/fitnessapi/internal/workouts"
	"github.com/2beens/fitnessapi/pkg"
)

const (
	serviceName          = "fitness-api"
	dbPoolMetricsName    = "fitness_db"
	sessionSweepInterval = 8 * time.Hour
)

type sessionChecker interface {
	UserIDForToken(ctx context.Context, token string) (int, bool, error)
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient    *redis.Client
	authService    *auth.Service
	sessionChecker sessionChecker
	rateLimiter    middleware.RequestRateLimiter

	workoutsService *workouts.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	otelShutdown := func() {}
	if params.HoneycombTracingEnabled {
		// use honeycomb distro to setup OpenTelemetry SDK
		shutdown, err := tracing.HoneycombSetup(serviceName)
		if err != nil {
			return nil, fmt.Errorf("honeycomb setup: %w", err)
		}
		otelShutdown = shutdown
	}

	dbParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if params.Config.PostgresMigrate {
		if err := db.Migrate(dbParams); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	if err := metrics.RegisterDBPoolCollector(promRegistry, dbPool, dbPoolMetricsName); err != nil {
		return nil, fmt.Errorf("register db pool collector: %w", err)
	}
	metricsManager := metrics.NewManager("fitness", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(params.Config.SessionTTL.Duration, rdb)

	workoutsService := workouts.NewService(
		workouts.NewTemplatesRepo(dbPool),
		workouts.NewWorkoutsRepo(dbPool),
		params.Config.CommonUserID,
		metricsManager,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:    rdb,
		authService:    authService,
		sessionChecker: auth.NewSessionChecker(authService),
		rateLimiter:    redis_rate.NewLimiter(rdb),

		workoutsService: workoutsService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods(http.MethodGet).Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods(http.MethodGet).Name("version")

	usersHandler := users.NewHandler(
		users.NewRepo(s.dbPool),
		s.authService,
		s.config.SecureCookies,
		s.metricsManager,
	)
	usersHandler.SetupRoutes(r, s.rateLimiter, s.config.LoginRateLimitAllowedPerMin)

	exercises.SetupRoutes(r, exercises.NewHandler(
		exercises.NewCatalog(exercises.NewRepo(s.dbPool)),
	))

	workouts.SetupRoutes(
		r,
		workouts.NewTemplatesHandler(s.workoutsService),
		workouts.NewWorkoutsHandler(s.workoutsService),
	)

	weightlogs.NewHandler(weightlogs.NewRepo(s.dbPool)).SetupRoutes(r)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.ResolveSession(s.sessionChecker))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

// Serve starts the api and metrics servers and the background sweeps, which
// run until ctx is done.
func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	cleaner := workouts.NewEmptyWorkoutsCleaner(
		s.workoutsService,
		s.config.CleanupInterval.Duration,
		s.config.EmptyWorkoutMaxAge.Duration,
		s.metricsManager,
	)
	go cleaner.Run(ctx)
	go s.runSessionSweep(ctx, sessionSweepInterval)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) runSessionSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("session sweep stopped")
			return
		case <-ticker.C:
			removed := s.authService.ScanAndClean(ctx)
			s.metricsManager.CounterExpiredSessionsPurged.Add(float64(removed))
		}
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
