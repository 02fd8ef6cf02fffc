package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smarthome-data/internal/domain"
)

type SitesRepo struct {
	q       Querier
	metrics *Metrics
}

func (r *SitesRepo) Insert(ctx context.Context, input domain.SiteInput) (domain.Site, error) {
	return r.InsertAt(ctx, input, time.Now().UTC())
}

// InsertAt inserts with an explicit row timestamp; the seeder uses it to
// stamp a whole batch with one shared time.
func (r *SitesRepo) InsertAt(ctx context.Context, input domain.SiteInput, now time.Time) (domain.Site, error) {
	r.metrics.observe("sites", "insert")

	site := domain.Site{
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Address != nil {
		site.Address = sql.NullString{String: *input.Address, Valid: true}
	}

	err := r.q.QueryRowContext(ctx,
		`INSERT INTO sites (name, address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		site.Name, site.Address, site.CreatedAt, site.UpdatedAt,
	).Scan(&site.ID)
	if err != nil {
		return domain.Site{}, fmt.Errorf("insert site: %w", err)
	}
	return site, nil
}

func (r *SitesRepo) List(ctx context.Context) ([]domain.Site, error) {
	r.metrics.observe("sites", "list")

	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, address, created_at, updated_at FROM sites`)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()

	sites := []domain.Site{}
	for rows.Next() {
		var s domain.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return sites, nil
}

// GetByID returns (nil, nil) when no site matches.
func (r *SitesRepo) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	r.metrics.observe("sites", "get_by_id")

	var s domain.Site
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, address, created_at, updated_at FROM sites WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site %d: %w", id, err)
	}
	return &s, nil
}
