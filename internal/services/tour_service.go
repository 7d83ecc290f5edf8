package services

import (
	"context"
	"time"

	"github.com/sanparkangkor/sanpark-tours-api/internal/cache"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
)

// TourService serves the static tour catalog. Pure passthrough of the cached
// resource file; no part of the submission pipeline touches it.
type TourService struct {
	cache *cache.ToursCache
}

// NewTourService creates a new tour catalog service instance
func NewTourService(toursCache *cache.ToursCache) *TourService {
	return &TourService{cache: toursCache}
}

// GetTours returns the catalog with a response timestamp.
func (s *TourService) GetTours(_ context.Context) (*models.ToursResponse, error) {
	data, err := s.cache.Get()
	if err != nil {
		return nil, err
	}

	return &models.ToursResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
