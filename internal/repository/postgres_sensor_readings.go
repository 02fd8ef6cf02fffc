package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smarthome-data/internal/domain"
)

type SensorReadingsRepo struct {
	q       Querier
	metrics *Metrics
}

// Insert does not check that the referenced device exists; readings are the
// write-heavy telemetry path and take any device_id (see DESIGN.md).
func (r *SensorReadingsRepo) Insert(ctx context.Context, input domain.SensorReadingInput) (domain.SensorReading, error) {
	return r.InsertAt(ctx, input, time.Now().UTC())
}

func (r *SensorReadingsRepo) InsertAt(ctx context.Context, input domain.SensorReadingInput, now time.Time) (domain.SensorReading, error) {
	r.metrics.observe("sensor_readings", "insert")

	reading := domain.SensorReading{
		DeviceID:  input.DeviceID,
		Value:     input.Value,
		Unit:      input.Unit,
		Timestamp: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.q.QueryRowContext(ctx,
		`INSERT INTO sensor_readings (device_id, value, unit, timestamp, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		reading.DeviceID, reading.Value, nullableUnit(input.Unit),
		reading.Timestamp, reading.CreatedAt, reading.UpdatedAt,
	).Scan(&reading.ID)
	if err != nil {
		return domain.SensorReading{}, fmt.Errorf("insert sensor reading: %w", err)
	}
	return reading, nil
}

func (r *SensorReadingsRepo) ListByDevice(ctx context.Context, deviceID int64) ([]domain.SensorReading, error) {
	r.metrics.observe("sensor_readings", "list_by_device")

	rows, err := r.q.QueryContext(ctx,
		`SELECT id, device_id, value, unit, timestamp, created_at, updated_at
		 FROM sensor_readings WHERE device_id = $1`,
		deviceID)
	if err != nil {
		return nil, fmt.Errorf("list sensor readings for device %d: %w", deviceID, err)
	}
	defer rows.Close()

	readings := []domain.SensorReading{}
	for rows.Next() {
		reading, err := scanSensorReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sensor readings for device %d: %w", deviceID, err)
	}
	return readings, nil
}

// LatestByDevice returns the reading with the maximum timestamp for the
// device, first-seen (lowest id) on ties; (nil, nil) when the device has none.
func (r *SensorReadingsRepo) LatestByDevice(ctx context.Context, deviceID int64) (*domain.SensorReading, error) {
	r.metrics.observe("sensor_readings", "latest_by_device")

	row := r.q.QueryRowContext(ctx,
		`SELECT id, device_id, value, unit, timestamp, created_at, updated_at
		 FROM sensor_readings WHERE device_id = $1
		 ORDER BY timestamp DESC, id ASC
		 LIMIT 1`,
		deviceID)

	var (
		reading domain.SensorReading
		unit    sql.NullString
	)
	err := row.Scan(&reading.ID, &reading.DeviceID, &reading.Value, &unit,
		&reading.Timestamp, &reading.CreatedAt, &reading.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest sensor reading for device %d: %w", deviceID, err)
	}
	if err := setSensorUnit(&reading, unit); err != nil {
		return nil, err
	}
	return &reading, nil
}

func scanSensorReading(rows *sql.Rows) (domain.SensorReading, error) {
	var (
		reading domain.SensorReading
		unit    sql.NullString
	)
	if err := rows.Scan(&reading.ID, &reading.DeviceID, &reading.Value, &unit,
		&reading.Timestamp, &reading.CreatedAt, &reading.UpdatedAt); err != nil {
		return domain.SensorReading{}, fmt.Errorf("scan sensor reading: %w", err)
	}
	if err := setSensorUnit(&reading, unit); err != nil {
		return domain.SensorReading{}, err
	}
	return reading, nil
}

func setSensorUnit(reading *domain.SensorReading, unit sql.NullString) error {
	if !unit.Valid {
		return nil
	}
	u, err := domain.ParseSensorUnit(unit.String)
	if err != nil {
		return fmt.Errorf("sensor reading %d: %w", reading.ID, err)
	}
	reading.Unit = &u
	return nil
}

func nullableUnit[T ~string](unit *T) sql.NullString {
	if unit == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*unit), Valid: true}
}
