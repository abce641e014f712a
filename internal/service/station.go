package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/voltpoint/voltpoint/internal/cache"
	"github.com/voltpoint/voltpoint/internal/metrics"
	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/repository"
)

// StationService handles station creation and the public usage listing.
type StationService struct {
	repo     *repository.Repository
	cache    *cache.Cache
	cacheTTL time.Duration
	metrics  metrics.Recorder
}

// NewStationService creates a new StationService.
func NewStationService(repo *repository.Repository, c *cache.Cache, cacheTTL time.Duration, recorder metrics.Recorder) *StationService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &StationService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		metrics:  recorder,
	}
}

// CreateStationInput defines input for creating a charging station.
type CreateStationInput struct {
	Indirizzo   string
	Latitudine  *float64
	Longitudine *float64
	PotenzaKW   *float64
	Zona        string
}

// CreateStation creates a new charging station. The zone code is optional;
// everything else is required.
func (s *StationService) CreateStation(ctx context.Context, input CreateStationInput) (*model.Station, error) {
	if input.Indirizzo == "" || input.Latitudine == nil || input.Longitudine == nil || input.PotenzaKW == nil {
		return nil, ErrMissingFields
	}

	station := &model.Station{
		ID:          ulid.Make().String(),
		Indirizzo:   input.Indirizzo,
		Latitudine:  *input.Latitudine,
		Longitudine: *input.Longitudine,
		PotenzaKW:   *input.PotenzaKW,
		Zona:        input.Zona,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateStation(ctx, station); err != nil {
		return nil, fmt.Errorf("failed to create station: %w", err)
	}

	// The listing now includes a new row; drop the cached copy.
	if s.cache != nil {
		_ = s.cache.InvalidateStationList(ctx)
	}

	return station, nil
}

// ListStations returns every station with its usage figures and tier.
// Served from the Redis cache when possible.
func (s *StationService) ListStations(ctx context.Context) ([]*model.StationUsage, error) {
	if s.cache != nil {
		cached, err := s.cache.GetStationList(ctx)
		if err == nil {
			s.metrics.IncStationListCacheHit()
			return cached, nil
		}
		// A Redis error counts as a miss; the listing falls back to the
		// database either way.
		s.metrics.IncStationListCacheMiss()
	}

	stations, err := s.repo.ListStationsWithUsage(ctx)
	if err != nil {
		return nil, err
	}

	for _, st := range stations {
		st.Classificazione = model.ClassifyUsage(st.UtilizziTotali)
	}

	if s.cache != nil {
		_ = s.cache.SetStationList(ctx, stations, s.cacheTTL)
	}

	return stations, nil
}
