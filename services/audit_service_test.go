package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/api-hits/events"
	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/repositories/mocks"
)

func TestAuditServiceRecord(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	tx := &fakeTransactor{}
	pub := &recordingPublisher{}
	service := NewAuditService(repo, tx, events.NewEmitter(pub, "api_hits", zap.NewNop()), zap.NewNop())

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.AuditLogEntry")).
		RunAndReturn(func(_ context.Context, entry *models.AuditLogEntry) error {
			entry.ID = 1
			return nil
		})

	entry, err := service.Record(context.Background(), models.AuditRecord{
		Operation: models.OperationCreate,
		Endpoint:  "/api/hits",
		Method:    "POST",
		UserAgent: "test-agent",
		Payload:   json.RawMessage(`{"endpoint":"/foo"}`),
		Status:    201,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, models.OperationCreate, entry.Operation)
	assert.Equal(t, 201, entry.ResponseStatus)
	assert.Equal(t, strPtr(`{"endpoint":"/foo"}`), entry.RequestBody)
	assert.Equal(t, 1, tx.commits)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.EventAuditRecorded, pub.events[0].Type)
}

func TestAuditServiceRecordFailurePropagates(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	tx := &fakeTransactor{}
	service := NewAuditService(repo, tx, events.NewEmitter(nil, "api_hits", zap.NewNop()), zap.NewNop())

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("no such table: audit_logs"))

	_, err := service.Record(context.Background(), models.AuditRecord{Operation: models.OperationDelete, Status: 204})

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "record audit entry", perr.Op)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestAuditServiceList(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	service := NewAuditService(repo, &fakeTransactor{}, nil, zap.NewNop())

	entries := []models.AuditLogEntry{{ID: 1, Operation: models.OperationGetAll}, {ID: 2, Operation: models.OperationUpdate}}
	repo.EXPECT().GetAll(mock.Anything).Return(entries, nil)

	got, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
