package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
)

// PostgresRepository persists delivered recommendations so recurring
// digests can skip what a subject has already seen.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.RecommendationRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// DeliveredIDs returns which of the given item ids were already delivered
// to the subject.
func (r *PostgresRepository) DeliveredIDs(ctx context.Context, subject string, ids []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if r.db == nil || len(ids) == 0 {
		return result, nil
	}

	query, args, err := r.builder.
		Select("item_id").
		From("delivered_recommendations").
		Where(sq.Eq{"subject": subject}).
		Where(sq.Expr("item_id = ANY(?)", pq.StringArray(ids))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query delivered: %w", err)
	}

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan id: %w", err)
		}
		result[id] = true
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return result, nil
}

// SaveDelivered upserts every recommendation in the delivered set.
func (r *PostgresRepository) SaveDelivered(ctx context.Context, subject string, recs []domain.RankedRecommendation) error {
	if r.db == nil || len(recs) == 0 {
		return nil
	}

	insert := r.builder.
		Insert("delivered_recommendations").
		Columns("subject", "item_id", "title", "category_group", "match_score", "reason")

	for _, rec := range recs {
		insert = insert.Values(
			subject,
			rec.Item.CanonicalID,
			rec.Item.Title,
			string(rec.CategoryGroup),
			rec.MatchScore,
			rec.Reason,
		)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (subject, item_id) DO UPDATE SET match_score = EXCLUDED.match_score, delivered_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert delivered: %w", err)
	}

	return nil
}
