// Package seed populates one demo hierarchy (site, room, temperature sensor,
// setpoint) plus a bounded synthetic reading series, all inside a single
// transaction: any failure rolls back the whole batch.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"smarthome-data/internal/domain"
	"smarthome-data/internal/repository"
)

const (
	readingCount    = 100
	defaultBaseline = 22.5
	readingSpacing  = 5 * time.Minute
)

// Run seeds the database. extend is accepted for forward compatibility but
// not implemented: the run behaves identically and a second invocation
// creates a second independent hierarchy.
func Run(ctx context.Context, store *repository.Store, logger *zap.Logger, extend bool) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if extend {
		// TODO: extend should grow the existing hierarchy instead of adding a
		// new one; semantics are still undecided, so it is a no-op for now.
		logger.Warn("extend mode is not implemented; seeding a fresh hierarchy")
	}

	return store.WithTx(ctx, func(tx *repository.Store) error {
		now := time.Now().UTC()

		logger.Debug("starting database seeding")

		address := "123 Main St, Anytown, USA"
		site, err := tx.Sites.InsertAt(ctx, domain.SiteInput{
			Name:    "Main Office Site",
			Address: &address,
		}, now)
		if err != nil {
			return fmt.Errorf("seed site: %w", err)
		}

		room, err := tx.Rooms.InsertAt(ctx, domain.RoomInput{
			SiteID: site.ID,
			Name:   "Server Room",
		}, now)
		if err != nil {
			return fmt.Errorf("seed room: %w", err)
		}

		device, err := tx.Devices.InsertAt(ctx, domain.DeviceInput{
			RoomID:     room.ID,
			Name:       "Server Room Temperature Sensor",
			DeviceType: domain.DeviceTypeTemperatureSensor,
		}, now)
		if err != nil {
			return fmt.Errorf("seed device: %w", err)
		}

		setpointUnit := domain.SetpointUnitCelsius
		setpoint, err := tx.ControlSetpoints.InsertAt(ctx, domain.ControlSetpointInput{
			DeviceID:     device.ID,
			SetpointType: domain.SetpointTypeTemperature,
			Value:        "22.5",
			Unit:         &setpointUnit,
		}, now)
		if err != nil {
			return fmt.Errorf("seed control setpoint: %w", err)
		}

		// The stored setpoint is the baseline; a malformed value falls back
		// to the default instead of aborting the batch.
		baseline, err := strconv.ParseFloat(setpoint.Value, 64)
		if err != nil {
			logger.Warn("setpoint value is not numeric, using default baseline",
				zap.String("value", setpoint.Value))
			baseline = defaultBaseline
		}

		// TODO: intendedTimestamp never reaches the rows; every reading is
		// stamped with the shared batch time, so the 5-minute spacing
		// computed below is discarded.
		intendedTimestamp := now.Add(-time.Duration(readingCount) * readingSpacing)
		readingUnit := domain.SensorUnitCelsius
		for i := 0; i < readingCount; i++ {
			offset := rand.Float64()*2.0 - 1.0
			value := fmt.Sprintf("%.1f", baseline+offset)

			if _, err := tx.SensorReadings.InsertAt(ctx, domain.SensorReadingInput{
				DeviceID: device.ID,
				Value:    value,
				Unit:     &readingUnit,
			}, now); err != nil {
				return fmt.Errorf("seed sensor reading %d: %w", i+1, err)
			}

			intendedTimestamp = intendedTimestamp.Add(readingSpacing)

			if i%10 == 0 && i != 0 {
				logger.Debug("seeded sensor readings", zap.Int("count", i))
			}
		}

		logger.Debug("database seeding completed",
			zap.Int64("site_id", site.ID),
			zap.Int64("device_id", device.ID),
			zap.Int("readings", readingCount))
		return nil
	})
}
