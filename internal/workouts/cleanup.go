package workouts

import (
	"context"
	"time"

	"github.com/2beens/fitnessapi/internal/telemetry/metrics"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type emptyWorkoutsDeleter interface {
	DeleteEmptyWorkouts(ctx context.Context, maxAge time.Duration) (int64, error)
}

// EmptyWorkoutsCleaner periodically removes workouts that never got any sets.
type EmptyWorkoutsCleaner struct {
	deleter        emptyWorkoutsDeleter
	interval       time.Duration
	maxAge         time.Duration
	metricsManager *metrics.Manager
}

func NewEmptyWorkoutsCleaner(
	deleter emptyWorkoutsDeleter,
	interval, maxAge time.Duration,
	metricsManager *metrics.Manager,
) *EmptyWorkoutsCleaner {
	return &EmptyWorkoutsCleaner{
		deleter:        deleter,
		interval:       interval,
		maxAge:         maxAge,
		metricsManager: metricsManager,
	}
}

// Run blocks until ctx is done, cleaning once per interval.
func (c *EmptyWorkoutsCleaner) Run(ctx context.Context) {
	log.Infof("empty workouts cleaner started, interval: %s, max age: %s", c.interval, c.maxAge)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infoln("empty workouts cleaner stopped")
			return
		case <-ticker.C:
			if _, err := c.CleanOnce(ctx); err != nil {
				log.Errorf("clean empty workouts: %s", err)
			}
		}
	}
}

func (c *EmptyWorkoutsCleaner) CleanOnce(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cleaner.empty_workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	begin := time.Now()
	deleted, err := c.deleter.DeleteEmptyWorkouts(ctx, c.maxAge)
	if err != nil {
		return 0, err
	}

	if c.metricsManager != nil {
		c.metricsManager.HistogramCleanupDuration.Observe(time.Since(begin).Seconds())
		c.metricsManager.CounterEmptyWorkoutsDeleted.Add(float64(deleted))
	}
	log.Infof("empty workouts cleaner removed %d workouts", deleted)

	return deleted, nil
}
