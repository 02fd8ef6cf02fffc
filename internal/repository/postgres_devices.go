package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smarthome-data/internal/domain"
)

type DevicesRepo struct {
	q       Querier
	metrics *Metrics
}

func (r *DevicesRepo) Insert(ctx context.Context, input domain.DeviceInput) (domain.Device, error) {
	return r.InsertAt(ctx, input, time.Now().UTC())
}

func (r *DevicesRepo) InsertAt(ctx context.Context, input domain.DeviceInput, now time.Time) (domain.Device, error) {
	r.metrics.observe("devices", "insert")

	device := domain.Device{
		RoomID:     input.RoomID,
		Name:       input.Name,
		DeviceType: input.DeviceType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.UniqueIdentifier != nil {
		device.UniqueIdentifier = sql.NullString{String: *input.UniqueIdentifier, Valid: true}
	}

	err := r.q.QueryRowContext(ctx,
		`INSERT INTO devices (room_id, name, device_type, unique_identifier, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		device.RoomID, device.Name, device.DeviceType, device.UniqueIdentifier,
		device.CreatedAt, device.UpdatedAt,
	).Scan(&device.ID)
	if err != nil {
		return domain.Device{}, fmt.Errorf("insert device: %w", err)
	}
	return device, nil
}

func (r *DevicesRepo) ListByRoom(ctx context.Context, roomID int64) ([]domain.Device, error) {
	r.metrics.observe("devices", "list_by_room")

	rows, err := r.q.QueryContext(ctx,
		`SELECT id, room_id, name, device_type, unique_identifier, created_at, updated_at
		 FROM devices WHERE room_id = $1`,
		roomID)
	if err != nil {
		return nil, fmt.Errorf("list devices for room %d: %w", roomID, err)
	}
	defer rows.Close()

	devices := []domain.Device{}
	for rows.Next() {
		var d domain.Device
		if err := rows.Scan(&d.ID, &d.RoomID, &d.Name, &d.DeviceType, &d.UniqueIdentifier,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list devices for room %d: %w", roomID, err)
	}
	return devices, nil
}
