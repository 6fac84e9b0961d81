package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blogem/api-hits/database"
	"github.com/blogem/api-hits/events"
	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/repositories"
)

// AuditService records and lists audit log entries
type AuditService interface {
	Record(ctx context.Context, record models.AuditRecord) (*models.AuditLogEntry, error)
	List(ctx context.Context) ([]models.AuditLogEntry, error)
}

type auditService struct {
	auditRepo repositories.AuditRepository
	tx        database.Transactor
	emitter   *events.Emitter
	log       *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository, tx database.Transactor, emitter *events.Emitter, log *zap.Logger) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		tx:        tx,
		emitter:   emitter,
		log:       log,
	}
}

// Record commits one audit entry synchronously. There is no retry.
func (s *auditService) Record(ctx context.Context, record models.AuditRecord) (*models.AuditLogEntry, error) {
	entry := record.Entry()

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.auditRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "record audit entry", Err: err}
	}

	s.emitter.Emit(ctx, events.EventAuditRecorded, entry)
	return entry, nil
}

// List retrieves every audit entry
func (s *auditService) List(ctx context.Context) ([]models.AuditLogEntry, error) {
	entries, err := s.auditRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	return entries, nil
}
