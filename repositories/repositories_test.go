package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/api-hits/database"
	"github.com/blogem/api-hits/models"
)

func setupTestDB(t *testing.T) *database.DB {
	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the real schema bootstrap
	db, err := database.Initialize(context.Background(), "sqlite://"+dbPath, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func strPtr(s string) *string { return &s }

func TestHitRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHitRepository(db)
	ctx := context.Background()

	// Test Create
	hit := &models.Hit{
		RequestType: "POST",
		Endpoint:    "/foo",
		UserAgent:   "test-agent",
		RequestBody: strPtr("bar"),
		Timestamp:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, hit))
	assert.NotZero(t, hit.ID, "Expected hit ID to be set after creation")

	second := models.NewHit("GET", "/api/hits", "", nil)
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, hit.ID, "Expected IDs to increase")

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, hit.ID)
	require.NoError(t, err)
	assert.Equal(t, hit.ID, retrieved.ID)
	assert.Equal(t, "POST", retrieved.RequestType)
	assert.Equal(t, "/foo", retrieved.Endpoint)
	assert.Equal(t, "test-agent", retrieved.UserAgent)
	assert.Equal(t, strPtr("bar"), retrieved.RequestBody)
	assert.True(t, hit.Timestamp.Equal(retrieved.Timestamp), "Expected timestamp %v, got %v", hit.Timestamp, retrieved.Timestamp)

	retrievedSecond, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, retrievedSecond.RequestBody)
	assert.Equal(t, "", retrievedSecond.UserAgent)

	// Test GetAll
	hits, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	// Test Update
	hit.Endpoint = "/updated"
	hit.RequestType = "PUT"
	hit.RequestBody = nil
	require.NoError(t, repo.Update(ctx, hit))

	updated, err := repo.GetByID(ctx, hit.ID)
	require.NoError(t, err)
	assert.Equal(t, "/updated", updated.Endpoint)
	assert.Equal(t, "PUT", updated.RequestType)
	assert.Nil(t, updated.RequestBody)
	assert.True(t, hit.Timestamp.Equal(updated.Timestamp), "Update must not touch the timestamp")

	// Test Delete
	require.NoError(t, repo.Delete(ctx, hit.ID))

	// Verify deletion
	_, err = repo.GetByID(ctx, hit.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHitRepositoryMissingRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHitRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, &models.Hit{ID: 9999, RequestType: "PUT", Endpoint: "/x", UserAgent: "a"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	hits, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}

func TestHitRepositoryRollback(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHitRepository(db)
	ctx := context.Background()

	err := db.WithinTx(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, models.NewHit("POST", "/foo", "agent", nil)); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	hits, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	entry := models.AuditRecord{
		Operation: models.OperationCreate,
		Endpoint:  "/api/hits",
		Method:    "POST",
		UserAgent: "test-agent",
		Payload:   []byte(`{"endpoint":"/foo"}`),
		Status:    201,
	}.Entry()
	require.NoError(t, repo.Create(ctx, entry))
	assert.NotZero(t, entry.ID)

	empty := models.AuditRecord{
		Operation: models.OperationGetAll,
		Endpoint:  "/api/hits",
		Method:    "GET",
		UserAgent: "test-agent",
		Status:    200,
	}.Entry()
	require.NoError(t, repo.Create(ctx, empty))

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := map[int64]models.AuditLogEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}

	created := byID[entry.ID]
	assert.Equal(t, models.OperationCreate, created.Operation)
	assert.Equal(t, 201, created.ResponseStatus)
	assert.Equal(t, strPtr(`{"endpoint":"/foo"}`), created.RequestBody)
	assert.True(t, entry.Timestamp.Equal(created.Timestamp))

	assert.Nil(t, byID[empty.ID].RequestBody)
}
