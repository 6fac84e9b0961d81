package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/blogem/api-hits/database"
	"github.com/blogem/api-hits/events"
	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/repositories"
)

// HitService interface defines hit management business logic
type HitService interface {
	Record(ctx context.Context, hit *models.Hit) error
	Create(ctx context.Context, method, userAgent string, payload *models.HitPayload) (*models.Hit, error)
	List(ctx context.Context) ([]models.Hit, error)
	Get(ctx context.Context, id int64) (*models.Hit, error)
	Update(ctx context.Context, id int64, method, userAgent string, payload *models.HitPayload) (*models.Hit, error)
	Delete(ctx context.Context, id int64) error
}

// hitService implements HitService interface
type hitService struct {
	hitRepo repositories.HitRepository
	tx      database.Transactor
	emitter *events.Emitter
	log     *zap.Logger
}

// NewHitService creates a new hit service
func NewHitService(hitRepo repositories.HitRepository, tx database.Transactor, emitter *events.Emitter, log *zap.Logger) HitService {
	return &hitService{
		hitRepo: hitRepo,
		tx:      tx,
		emitter: emitter,
		log:     log,
	}
}

// Record inserts and commits an observed hit as-is
func (s *hitService) Record(ctx context.Context, hit *models.Hit) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.hitRepo.Create(ctx, hit)
	})
	if err != nil {
		return &PersistenceError{Op: "record hit", Err: err}
	}

	s.emitter.Emit(ctx, events.EventHitRecorded, hit)
	return nil
}

// Create validates the payload and stores a caller-declared hit
func (s *hitService) Create(ctx context.Context, method, userAgent string, payload *models.HitPayload) (*models.Hit, error) {
	if payload == nil {
		return nil, &ValidationError{Messages: []string{models.ErrInvalidPayload.Error()}}
	}
	if errs := payload.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	hit := models.NewHit(method, *payload.Endpoint, userAgent, payload.Body())

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.hitRepo.Create(ctx, hit)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create hit", Err: err}
	}

	s.log.Debug("hit created", zap.Int64("id", hit.ID), zap.String("endpoint", hit.Endpoint))
	s.emitter.Emit(ctx, events.EventHitRecorded, hit)
	return hit, nil
}

// List retrieves all hits
func (s *hitService) List(ctx context.Context) ([]models.Hit, error) {
	hits, err := s.hitRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hits: %w", err)
	}
	return hits, nil
}

// Get retrieves a hit by ID
func (s *hitService) Get(ctx context.Context, id int64) (*models.Hit, error) {
	hit, err := s.hitRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hit: %w", err)
	}
	return hit, nil
}

// Update overwrites an existing hit from the payload.
// The payload is not validated beyond decoding; a nil endpoint fails the write.
func (s *hitService) Update(ctx context.Context, id int64, method, userAgent string, payload *models.HitPayload) (*models.Hit, error) {
	hit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		payload = &models.HitPayload{}
	}
	hit.Apply(method, userAgent, payload)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if payload.Endpoint == nil {
			return errMissingEndpoint
		}
		return s.hitRepo.Update(ctx, hit)
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "update hit", Err: err}
	}

	s.log.Debug("hit updated", zap.Int64("id", hit.ID))
	return hit, nil
}

// Delete permanently deletes a hit
func (s *hitService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.hitRepo.Delete(ctx, id)
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return &PersistenceError{Op: "delete hit", Err: err}
	}

	s.log.Debug("hit deleted", zap.Int64("id", id))
	return nil
}
