package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"model-card-service/internal/core/domain"
	"model-card-service/internal/core/ports/output"
)

type modelCardRepo struct {
	pool *pgxpool.Pool
}

func NewModelCardRepository(pool *pgxpool.Pool) ports.ModelCardRepository {
	return &modelCardRepo{pool: pool}
}

const cardColumns = `id, created_at, updated_at, project_id, name, slug, description,
	   base_model, license, library_name, tags, datasets, state, latest_revision`

func (r *modelCardRepo) Create(ctx context.Context, card *domain.ModelCard) error {
	tagsJSON, err := json.Marshal(card.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	datasetsJSON, err := json.Marshal(card.Datasets)
	if err != nil {
		return fmt.Errorf("marshal datasets: %w", err)
	}

	query := `
		INSERT INTO model_card
			(id, created_at, updated_at, project_id, name, slug, description,
			 base_model, license, library_name, tags, datasets, state, latest_revision)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`
	_, err = r.pool.Exec(ctx, query,
		card.ID, card.CreatedAt, card.UpdatedAt, card.ProjectID,
		card.Name, card.Slug, card.Description,
		card.BaseModel, card.License, card.LibraryName,
		tagsJSON, datasetsJSON, string(card.State), card.LatestRevision,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCardNameConflict
		}
		return fmt.Errorf("create model card: %w", err)
	}
	return nil
}

func (r *modelCardRepo) GetByID(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (*domain.ModelCard, error) {
	query := fmt.Sprintf(`SELECT %s FROM model_card WHERE id = $1 AND project_id = $2`, cardColumns)
	mc, err := scanCard(r.pool.QueryRow(ctx, query, id, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("get model card by id: %w", err)
	}
	return mc, nil
}

func (r *modelCardRepo) GetByParams(ctx context.Context, projectID uuid.UUID, name string, slug string) (*domain.ModelCard, error) {
	conditions := []string{"project_id = $1"}
	args := []interface{}{projectID}
	argPos := 2

	if name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", argPos))
		args = append(args, name)
		argPos++
	}
	if slug != "" {
		conditions = append(conditions, fmt.Sprintf("slug = $%d", argPos))
		args = append(args, slug)
		argPos++
	}
	if len(conditions) == 1 {
		return nil, domain.ErrCardNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM model_card WHERE %s LIMIT 1`,
		cardColumns, strings.Join(conditions, " AND "))

	mc, err := scanCard(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("get model card by params: %w", err)
	}
	return mc, nil
}

func (r *modelCardRepo) Update(ctx context.Context, projectID uuid.UUID, card *domain.ModelCard) error {
	tagsJSON, err := json.Marshal(card.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	datasetsJSON, err := json.Marshal(card.Datasets)
	if err != nil {
		return fmt.Errorf("marshal datasets: %w", err)
	}

	query := `
		UPDATE model_card
		SET name=$1, slug=$2, description=$3, base_model=$4, license=$5,
			library_name=$6, tags=$7, datasets=$8, state=$9, latest_revision=$10,
			updated_at=NOW()
		WHERE id=$11 AND project_id=$12
	`
	result, err := r.pool.Exec(ctx, query,
		card.Name, card.Slug, card.Description, card.BaseModel, card.License,
		card.LibraryName, tagsJSON, datasetsJSON, string(card.State),
		card.LatestRevision, card.ID, projectID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCardNameConflict
		}
		return fmt.Errorf("update model card: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

func (r *modelCardRepo) Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM model_card WHERE id = $1 AND project_id = $2`, id, projectID)
	if err != nil {
		return fmt.Errorf("delete model card: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

// Sortable columns; anything else falls back to created_at.
var cardSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"base_model": true,
	"license":    true,
}

func (r *modelCardRepo) List(ctx context.Context, filter ports.CardListFilter) ([]*domain.ModelCard, int, error) {
	conditions := []string{"project_id = $1"}
	args := []interface{}{filter.ProjectID}
	argPos := 2

	if filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("state = $%d", argPos))
		args = append(args, filter.State)
		argPos++
	}
	if filter.License != "" {
		conditions = append(conditions, fmt.Sprintf("license = $%d", argPos))
		args = append(args, filter.License)
		argPos++
	}
	if filter.BaseModel != "" {
		conditions = append(conditions, fmt.Sprintf("base_model = $%d", argPos))
		args = append(args, filter.BaseModel)
		argPos++
	}
	if filter.Tag != "" {
		tagJSON, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return nil, 0, fmt.Errorf("marshal tag filter: %w", err)
		}
		conditions = append(conditions, fmt.Sprintf("tags @> $%d", argPos))
		args = append(args, tagJSON)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d OR base_model ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM model_card WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count model cards: %w", err)
	}

	orderBy := "created_at DESC"
	if cardSortColumns[filter.SortBy] {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`SELECT %s FROM model_card WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		cardColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list model cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.ModelCard
	for rows.Next() {
		mc, err := scanCard(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan model card row: %w", err)
		}
		cards = append(cards, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate model card rows: %w", err)
	}

	return cards, total, nil
}

func scanCard(row pgx.Row) (*domain.ModelCard, error) {
	mc := &domain.ModelCard{}
	var tagsJSON, datasetsJSON []byte

	err := row.Scan(
		&mc.ID, &mc.CreatedAt, &mc.UpdatedAt, &mc.ProjectID,
		&mc.Name, &mc.Slug, &mc.Description,
		&mc.BaseModel, &mc.License, &mc.LibraryName,
		&tagsJSON, &datasetsJSON, &mc.State, &mc.LatestRevision,
	)
	if err != nil {
		return nil, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &mc.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	if len(datasetsJSON) > 0 {
		if err := json.Unmarshal(datasetsJSON, &mc.Datasets); err != nil {
			return nil, fmt.Errorf("unmarshal datasets: %w", err)
		}
	}
	return mc, nil
}
