package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/exp/slog"

	"gallery/internal/domain/painting"
)

const paintingsTable = "paintings"

var paintingColumns = []string{
	"id", "title", "artist", "dynasty", "category", "description",
	"painting_metadata", "image_path", "json_path", "created_at", "updated_at",
}

// statColumns - выражение группировки для каждого измерения статистики
var statColumns = map[painting.Dimension]string{
	painting.DimensionDynasty:  "dynasty",
	painting.DimensionCategory: "category",
	painting.DimensionArtist:   "artist",
	painting.DimensionTimeline: "substr(created_at, 1, 10)",
}

type PaintingRepository struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

func NewPaintingRepository(storage *Storage, log *slog.Logger) *PaintingRepository {
	return &PaintingRepository{
		db:  storage.db,
		log: log.With("component", "painting_repository"),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *PaintingRepository) List(ctx context.Context) ([]painting.Painting, error) {
	query, args, err := sq.Select(paintingColumns...).
		From(paintingsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list paintings", "error", err)
		return nil, fmt.Errorf("list paintings: %w", err)
	}
	defer rows.Close()

	paintings := make([]painting.Painting, 0)
	for rows.Next() {
		p, err := scanPainting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan painting: %w", err)
		}
		paintings = append(paintings, *p)
	}

	return paintings, rows.Err()
}

func (r *PaintingRepository) Get(ctx context.Context, id int) (*painting.Painting, error) {
	query, args, err := sq.Select(paintingColumns...).
		From(paintingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	p, err := scanPainting(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, painting.ErrNotFound
		}
		r.log.Error("failed to get painting", "id", id, "error", err)
		return nil, fmt.Errorf("get painting: %w", err)
	}

	return p, nil
}

// Create сохраняет запись. ID и даты назначаются базой, поля p.ID и p.CreatedAt игнорируются.
func (r *PaintingRepository) Create(ctx context.Context, p painting.Painting) (*painting.Painting, error) {
	query, args, err := sq.Insert(paintingsTable).
		Columns("title", "artist", "dynasty", "category", "description",
			"painting_metadata", "image_path", "json_path", "created_at").
		Values(p.Title, p.Artist, p.Dynasty, p.Category, p.Description,
			metadataValue(p.Metadata), p.ImagePath, p.JSONPath, r.now()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to create painting", "title", p.Title, "error", err)
		return nil, fmt.Errorf("create painting: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return r.Get(ctx, int(id))
}

// Update заменяет редактируемые поля записи целиком
func (r *PaintingRepository) Update(ctx context.Context, id int, payload painting.Payload) (*painting.Painting, error) {
	query, args, err := sq.Update(paintingsTable).
		Set("title", payload.Title).
		Set("artist", payload.Artist).
		Set("dynasty", payload.Dynasty).
		Set("category", payload.Category).
		Set("description", payload.Description).
		Set("painting_metadata", metadataValue(payload.Metadata)).
		Set("updated_at", r.now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to update painting", "id", id, "error", err)
		return nil, fmt.Errorf("update painting: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, painting.ErrNotFound
	}

	return r.Get(ctx, id)
}

func (r *PaintingRepository) Delete(ctx context.Context, id int) error {
	query, args, err := sq.Delete(paintingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to delete painting", "id", id, "error", err)
		return fmt.Errorf("delete painting: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return painting.ErrNotFound
	}

	return nil
}

// CountBy группирует записи по измерению в порядке первого появления группы
func (r *PaintingRepository) CountBy(ctx context.Context, dim painting.Dimension) ([]painting.StatEntry, error) {
	column, ok := statColumns[dim]
	if !ok {
		return nil, fmt.Errorf("unknown dimension: %s", dim)
	}

	query, args, err := sq.Select(column+" AS label", "COUNT(id) AS cnt").
		From(paintingsTable).
		GroupBy(column).
		OrderBy("MIN(id) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to count paintings", "dimension", dim, "error", err)
		return nil, fmt.Errorf("count paintings: %w", err)
	}
	defer rows.Close()

	entries := make([]painting.StatEntry, 0)
	for rows.Next() {
		var (
			label sql.NullString
			entry painting.StatEntry
		)
		if err := rows.Scan(&label, &entry.Count); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		entry.Label = label.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPainting(row rowScanner) (*painting.Painting, error) {
	var (
		p         painting.Painting
		metadata  sql.NullString
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Artist, &p.Dynasty, &p.Category, &p.Description,
		&metadata, &p.ImagePath, &p.JSONPath, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metadata.Valid && metadata.String != "" {
		p.Metadata = json.RawMessage(metadata.String)
	}
	if createdAt.Valid {
		p.CreatedAt = painting.NewTimestamp(createdAt.Time)
	}
	if updatedAt.Valid {
		p.UpdatedAt = painting.NewTimestamp(updatedAt.Time)
	}

	return &p, nil
}

func metadataValue(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}
