package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/thumbnail"
)

var ErrNotFound = errors.New("thumbnail not found")

const thumbnailColumns = `id, user_id, title, style, color_scheme, user_prompt, prompt_used,
	aspect_ratio, text_overlay, image_url, status, is_generating, failure_reason,
	created_at, updated_at`

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientFromDB wraps an existing handle.
func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

// DB exposes the underlying handle, e.g. for running migrations.
func (d *DatabaseClient) DB() *sql.DB {
	return d.db
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanThumbnail(row rowScanner) (*models.Thumbnail, error) {
	var t models.Thumbnail
	var style, status string
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &style, &t.ColorScheme, &t.UserPrompt, &t.PromptUsed,
		&t.AspectRatio, &t.TextOverlay, &t.ImageURL, &status, &t.IsGenerating, &t.FailureReason,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Style = thumbnail.Style(style)
	t.Status = thumbnail.Status(status)
	return &t, nil
}

// CreateThumbnail inserts t and fills in the database managed timestamps.
func (d *DatabaseClient) CreateThumbnail(ctx context.Context, t *models.Thumbnail) error {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO thumbnails (id, user_id, title, style, color_scheme, user_prompt, prompt_used,
			aspect_ratio, text_overlay, status, is_generating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`, t.ID, t.UserID, t.Title, string(t.Style), t.ColorScheme, t.UserPrompt, t.PromptUsed,
		t.AspectRatio, t.TextOverlay, string(t.Status), t.IsGenerating,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetThumbnail(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+thumbnailColumns+`
		FROM thumbnails
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	t, err := scanThumbnail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thumbnail: %w", err)
	}
	return t, nil
}

func (d *DatabaseClient) ListThumbnails(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+thumbnailColumns+`
		FROM thumbnails
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list thumbnails: %w", err)
	}
	defer rows.Close()

	thumbnails := make([]models.Thumbnail, 0)
	for rows.Next() {
		t, err := scanThumbnail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan thumbnail: %w", err)
		}
		thumbnails = append(thumbnails, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list thumbnails: %w", err)
	}

	return thumbnails, nil
}

// CompleteThumbnail stores the image URL and moves t to succeeded.
func (d *DatabaseClient) CompleteThumbnail(ctx context.Context, t *models.Thumbnail, imageURL string) error {
	err := d.db.QueryRowContext(ctx, `
		UPDATE thumbnails
		SET image_url = $1, status = $2, is_generating = FALSE, failure_reason = NULL
		WHERE id = $3
		RETURNING updated_at
	`, imageURL, string(thumbnail.StatusSucceeded), t.ID).Scan(&t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to complete thumbnail: %w", err)
	}

	t.ImageURL = sql.NullString{String: imageURL, Valid: true}
	t.Status = thumbnail.StatusSucceeded
	t.IsGenerating = false
	t.FailureReason = sql.NullString{}
	return nil
}

// FailThumbnail moves a pending thumbnail to failed. Records that already
// reached an outcome are left alone.
func (d *DatabaseClient) FailThumbnail(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE thumbnails
		SET status = $1, is_generating = FALSE, failure_reason = $2
		WHERE id = $3 AND status = $4
	`, string(thumbnail.StatusFailed), reason, id, string(thumbnail.StatusPending))
	if err != nil {
		return fmt.Errorf("failed to mark thumbnail failed: %w", err)
	}
	return nil
}

// FailStalePending fails every pending thumbnail created before cutoff and
// returns how many were updated.
func (d *DatabaseClient) FailStalePending(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	res, err := d.db.ExecContext(ctx, `
		UPDATE thumbnails
		SET status = $1, is_generating = FALSE, failure_reason = $2
		WHERE status = $3 AND created_at < $4
	`, string(thumbnail.StatusFailed), reason, string(thumbnail.StatusPending), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale thumbnails: %w", err)
	}
	return res.RowsAffected()
}

// DeleteThumbnail removes the thumbnail only when it belongs to userID and
// reports whether a row was deleted.
func (d *DatabaseClient) DeleteThumbnail(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `
		DELETE FROM thumbnails
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete thumbnail: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete thumbnail: %w", err)
	}
	return n > 0, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
