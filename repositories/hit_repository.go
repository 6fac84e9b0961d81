package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/api-hits/database"
	"github.com/blogem/api-hits/models"
)

// HitRepository interface defines hit database operations
type HitRepository interface {
	GetAll(ctx context.Context) ([]models.Hit, error)
	GetByID(ctx context.Context, id int64) (*models.Hit, error)
	Create(ctx context.Context, hit *models.Hit) error
	Update(ctx context.Context, hit *models.Hit) error
	Delete(ctx context.Context, id int64) error
}

// hitRepository implements HitRepository interface
type hitRepository struct {
	db *database.DB
}

// NewHitRepository creates a new hit repository
func NewHitRepository(db *database.DB) HitRepository {
	return &hitRepository{db: db}
}

// GetAll retrieves all hits in storage order
func (r *hitRepository) GetAll(ctx context.Context) ([]models.Hit, error) {
	query := `
		SELECT id, request_type, endpoint, user_agent, request_body, timestamp
		FROM api_hits
	`

	rows, err := r.db.Conn(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hits: %w", err)
	}
	defer rows.Close()

	hits := []models.Hit{}
	for rows.Next() {
		hit, err := scanHit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hit: %w", err)
		}
		hits = append(hits, *hit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hits: %w", err)
	}

	return hits, nil
}

// GetByID retrieves a hit by ID
func (r *hitRepository) GetByID(ctx context.Context, id int64) (*models.Hit, error) {
	query := `
		SELECT id, request_type, endpoint, user_agent, request_body, timestamp
		FROM api_hits
		WHERE id = $1
	`

	hit, err := scanHit(r.db.Conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("hit with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hit: %w", err)
	}

	return hit, nil
}

// Create inserts a new hit and sets its ID
func (r *hitRepository) Create(ctx context.Context, hit *models.Hit) error {
	query := `
		INSERT INTO api_hits (request_type, endpoint, user_agent, request_body, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if hit.Timestamp.IsZero() {
		hit.Timestamp = models.Now()
	}

	err := r.db.Conn(ctx).QueryRowContext(ctx, query,
		hit.RequestType,
		hit.Endpoint,
		hit.UserAgent,
		nullString(hit.RequestBody),
		hit.Timestamp.UTC(),
	).Scan(&hit.ID)
	if err != nil {
		return fmt.Errorf("failed to create hit: %w", err)
	}

	return nil
}

// Update overwrites an existing hit
func (r *hitRepository) Update(ctx context.Context, hit *models.Hit) error {
	query := `
		UPDATE api_hits
		SET request_type = $1, endpoint = $2, user_agent = $3, request_body = $4
		WHERE id = $5
	`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		hit.RequestType,
		hit.Endpoint,
		hit.UserAgent,
		nullString(hit.RequestBody),
		hit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("hit with ID %d: %w", hit.ID, ErrNotFound)
	}

	return nil
}

// Delete deletes a hit by ID
func (r *hitRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM api_hits WHERE id = $1`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete hit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("hit with ID %d: %w", id, ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHit(row rowScanner) (*models.Hit, error) {
	var hit models.Hit
	var requestBody sql.NullString

	err := row.Scan(
		&hit.ID,
		&hit.RequestType,
		&hit.Endpoint,
		&hit.UserAgent,
		&requestBody,
		&hit.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	// Convert NULL to nil
	if requestBody.Valid {
		hit.RequestBody = &requestBody.String
	}
	hit.Timestamp = hit.Timestamp.UTC()

	return &hit, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
