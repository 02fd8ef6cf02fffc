package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smarthome-data/internal/domain"
)

type RoomsRepo struct {
	q       Querier
	metrics *Metrics
}

func (r *RoomsRepo) Insert(ctx context.Context, input domain.RoomInput) (domain.Room, error) {
	return r.InsertAt(ctx, input, time.Now().UTC())
}

func (r *RoomsRepo) InsertAt(ctx context.Context, input domain.RoomInput, now time.Time) (domain.Room, error) {
	r.metrics.observe("rooms", "insert")

	room := domain.Room{
		SiteID:    input.SiteID,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.q.QueryRowContext(ctx,
		`INSERT INTO rooms (site_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		room.SiteID, room.Name, room.CreatedAt, room.UpdatedAt,
	).Scan(&room.ID)
	if err != nil {
		return domain.Room{}, fmt.Errorf("insert room: %w", err)
	}
	return room, nil
}

// GetByID returns (nil, nil) when no room matches.
func (r *RoomsRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	r.metrics.observe("rooms", "get_by_id")

	var room domain.Room
	err := r.q.QueryRowContext(ctx,
		`SELECT id, site_id, name, created_at, updated_at FROM rooms WHERE id = $1`,
		id,
	).Scan(&room.ID, &room.SiteID, &room.Name, &room.CreatedAt, &room.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get room %d: %w", id, err)
	}
	return &room, nil
}

func (r *RoomsRepo) ListBySite(ctx context.Context, siteID int64) ([]domain.Room, error) {
	r.metrics.observe("rooms", "list_by_site")

	rows, err := r.q.QueryContext(ctx,
		`SELECT id, site_id, name, created_at, updated_at FROM rooms WHERE site_id = $1`,
		siteID)
	if err != nil {
		return nil, fmt.Errorf("list rooms for site %d: %w", siteID, err)
	}
	defer rows.Close()

	roomList := []domain.Room{}
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.SiteID, &room.Name, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		roomList = append(roomList, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms for site %d: %w", siteID, err)
	}
	return roomList, nil
}
