package exercises

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitnessapi/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour            = 60 * 60
	catalogCacheExpire = oneHour * 1
	catalogCacheKey    = "exercises::all"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	ListExercises(ctx context.Context) ([]Exercise, error)
	GetExercise(ctx context.Context, id int) (*Exercise, error)
}

// Catalog serves the exercise list from cache, falling back to the repo.
type Catalog struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewCatalog(repo exercisesRepo) *Catalog {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (c *Catalog) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, err := c.cache.Get([]byte(catalogCacheKey)); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			log.Tracef("exercises catalog served from cache")
			return exercises, nil
		} else {
			log.Errorf("unmarshal cached exercises catalog: %s", err)
		}
	}

	exercises, err := c.repo.ListExercises(ctx)
	if err != nil {
		return nil, err
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises catalog: %w", err)
	}
	if err := c.cache.Set([]byte(catalogCacheKey), exercisesJson, catalogCacheExpire); err != nil {
		log.Errorf("failed to set exercises catalog cache: %s", err)
	}

	return exercises, nil
}

// Get looks the exercise up in the cached list first, single lookups are never cached.
func (c *Catalog) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, err := c.cache.Get([]byte(catalogCacheKey)); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			for i := range exercises {
				if exercises[i].ID == id {
					return &exercises[i], nil
				}
			}
		}
	}

	return c.repo.GetExercise(ctx, id)
}
