package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"dino-game-service/internal/domain"
)

// ContentLoader loads catalog and clue case JSONB from Postgres.
type ContentLoader struct {
	pool *pgxpool.Pool
}

func NewContentLoader(pool *pgxpool.Pool) *ContentLoader {
	return &ContentLoader{pool: pool}
}

func (l *ContentLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM catalogs WHERE id=$1`, catalogID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Catalog{}, domain.ErrCatalogNotFound
	}
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return catalog, nil
}

func (l *ContentLoader) LoadCase(ctx context.Context, caseID string) (domain.ClueCase, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM clue_cases WHERE id=$1`, caseID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ClueCase{}, domain.ErrCaseNotFound
	}
	if err != nil {
		return domain.ClueCase{}, fmt.Errorf("load clue case: %w", err)
	}
	var doc domain.ClueCase
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.ClueCase{}, fmt.Errorf("unmarshal clue case: %w", err)
	}
	return doc, nil
}
