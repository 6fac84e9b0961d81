package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/api-hits/database"
	"github.com/blogem/api-hits/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	GetAll(ctx context.Context) ([]models.AuditLogEntry, error)
}

type auditRepository struct {
	db *database.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *database.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create inserts a new audit log entry and sets its ID
func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (operation, endpoint, request_type, user_agent, request_body, response_status, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = models.Now()
	}

	err := r.db.Conn(ctx).QueryRowContext(ctx, query,
		entry.Operation,
		entry.Endpoint,
		entry.RequestType,
		entry.UserAgent,
		nullString(entry.RequestBody),
		entry.ResponseStatus,
		entry.Timestamp.UTC(),
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	return nil
}

// GetAll retrieves every audit log entry in storage order
func (r *auditRepository) GetAll(ctx context.Context) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, operation, endpoint, request_type, user_agent, request_body, response_status, timestamp
		FROM audit_logs
	`

	rows, err := r.db.Conn(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		var entry models.AuditLogEntry
		var requestBody sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.Operation,
			&entry.Endpoint,
			&entry.RequestType,
			&entry.UserAgent,
			&requestBody,
			&entry.ResponseStatus,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		if requestBody.Valid {
			entry.RequestBody = &requestBody.String
		}
		entry.Timestamp = entry.Timestamp.UTC()

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}
