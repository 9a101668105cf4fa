package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

type cardRevisionRepo struct {
	pool *pgxpool.Pool
}

func NewCardRevisionRepository(pool *pgxpool.Pool) ports.CardRevisionRepository {
	return &cardRevisionRepo{pool: pool}
}

func (r *cardRevisionRepo) Create(ctx context.Context, rev *domain.CardRevision) error {
	query := `
		INSERT INTO card_revision (id, card_id, number, comment, raw, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.pool.Exec(ctx, query,
		rev.ID, rev.CardID, rev.Number, rev.Comment, rev.Raw, rev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create card revision: %w", err)
	}
	return nil
}

func (r *cardRevisionRepo) GetByNumber(ctx context.Context, cardID uuid.UUID, number int) (*domain.CardRevision, error) {
	query := `
		SELECT id, card_id, number, comment, raw, created_at
		FROM card_revision
		WHERE card_id = $1 AND number = $2
	`
	rev, err := scanRevision(r.pool.QueryRow(ctx, query, cardID, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRevisionNotFound
		}
		return nil, fmt.Errorf("get card revision: %w", err)
	}
	return rev, nil
}

func (r *cardRevisionRepo) Latest(ctx context.Context, cardID uuid.UUID) (*domain.CardRevision, error) {
	query := `
		SELECT id, card_id, number, comment, raw, created_at
		FROM card_revision
		WHERE card_id = $1
		ORDER BY number DESC
		LIMIT 1
	`
	rev, err := scanRevision(r.pool.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRevisionNotFound
		}
		return nil, fmt.Errorf("get latest card revision: %w", err)
	}
	return rev, nil
}

func (r *cardRevisionRepo) ListByCard(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*domain.CardRevision, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM card_revision WHERE card_id = $1`, cardID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count card revisions: %w", err)
	}

	query := `
		SELECT id, card_id, number, comment, raw, created_at
		FROM card_revision
		WHERE card_id = $1
		ORDER BY number DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, cardID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list card revisions: %w", err)
	}
	defer rows.Close()

	var revs []*domain.CardRevision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan card revision row: %w", err)
		}
		revs = append(revs, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate card revision rows: %w", err)
	}

	return revs, total, nil
}

func scanRevision(row pgx.Row) (*domain.CardRevision, error) {
	rev := &domain.CardRevision{}
	err := row.Scan(&rev.ID, &rev.CardID, &rev.Number, &rev.Comment, &rev.Raw, &rev.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rev, nil
}
