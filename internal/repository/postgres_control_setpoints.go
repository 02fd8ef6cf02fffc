package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smarthome-data/internal/domain"
)

type ControlSetpointsRepo struct {
	q       Querier
	metrics *Metrics
}

// Insert does not check that the referenced device exists; same telemetry
// fast path as sensor readings (see DESIGN.md).
func (r *ControlSetpointsRepo) Insert(ctx context.Context, input domain.ControlSetpointInput) (domain.ControlSetpoint, error) {
	return r.InsertAt(ctx, input, time.Now().UTC())
}

func (r *ControlSetpointsRepo) InsertAt(ctx context.Context, input domain.ControlSetpointInput, now time.Time) (domain.ControlSetpoint, error) {
	r.metrics.observe("control_setpoints", "insert")

	setpoint := domain.ControlSetpoint{
		DeviceID:     input.DeviceID,
		SetpointType: input.SetpointType,
		Value:        input.Value,
		Unit:         input.Unit,
		Timestamp:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := r.q.QueryRowContext(ctx,
		`INSERT INTO control_setpoints (device_id, setpoint_type, value, unit, timestamp, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		setpoint.DeviceID, setpoint.SetpointType, setpoint.Value, nullableUnit(input.Unit),
		setpoint.Timestamp, setpoint.CreatedAt, setpoint.UpdatedAt,
	).Scan(&setpoint.ID)
	if err != nil {
		return domain.ControlSetpoint{}, fmt.Errorf("insert control setpoint: %w", err)
	}
	return setpoint, nil
}

func (r *ControlSetpointsRepo) ListByDevice(ctx context.Context, deviceID int64) ([]domain.ControlSetpoint, error) {
	r.metrics.observe("control_setpoints", "list_by_device")

	rows, err := r.q.QueryContext(ctx,
		`SELECT id, device_id, setpoint_type, value, unit, timestamp, created_at, updated_at
		 FROM control_setpoints WHERE device_id = $1`,
		deviceID)
	if err != nil {
		return nil, fmt.Errorf("list control setpoints for device %d: %w", deviceID, err)
	}
	defer rows.Close()

	setpoints := []domain.ControlSetpoint{}
	for rows.Next() {
		setpoint, err := scanControlSetpoint(rows)
		if err != nil {
			return nil, err
		}
		setpoints = append(setpoints, setpoint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list control setpoints for device %d: %w", deviceID, err)
	}
	return setpoints, nil
}

// LatestByDevice returns the setpoint with the maximum timestamp for the
// device, first-seen (lowest id) on ties; (nil, nil) when the device has none.
func (r *ControlSetpointsRepo) LatestByDevice(ctx context.Context, deviceID int64) (*domain.ControlSetpoint, error) {
	r.metrics.observe("control_setpoints", "latest_by_device")

	row := r.q.QueryRowContext(ctx,
		`SELECT id, device_id, setpoint_type, value, unit, timestamp, created_at, updated_at
		 FROM control_setpoints WHERE device_id = $1
		 ORDER BY timestamp DESC, id ASC
		 LIMIT 1`,
		deviceID)

	var (
		setpoint domain.ControlSetpoint
		unit     sql.NullString
	)
	err := row.Scan(&setpoint.ID, &setpoint.DeviceID, &setpoint.SetpointType, &setpoint.Value,
		&unit, &setpoint.Timestamp, &setpoint.CreatedAt, &setpoint.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest control setpoint for device %d: %w", deviceID, err)
	}
	if err := setSetpointUnit(&setpoint, unit); err != nil {
		return nil, err
	}
	return &setpoint, nil
}

func scanControlSetpoint(rows *sql.Rows) (domain.ControlSetpoint, error) {
	var (
		setpoint domain.ControlSetpoint
		unit     sql.NullString
	)
	if err := rows.Scan(&setpoint.ID, &setpoint.DeviceID, &setpoint.SetpointType, &setpoint.Value,
		&unit, &setpoint.Timestamp, &setpoint.CreatedAt, &setpoint.UpdatedAt); err != nil {
		return domain.ControlSetpoint{}, fmt.Errorf("scan control setpoint: %w", err)
	}
	if err := setSetpointUnit(&setpoint, unit); err != nil {
		return domain.ControlSetpoint{}, err
	}
	return setpoint, nil
}

func setSetpointUnit(setpoint *domain.ControlSetpoint, unit sql.NullString) error {
	if !unit.Valid {
		return nil
	}
	u, err := domain.ParseSetpointUnit(unit.String)
	if err != nil {
		return fmt.Errorf("control setpoint %d: %w", setpoint.ID, err)
	}
	setpoint.Unit = &u
	return nil
}
