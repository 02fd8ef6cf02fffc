package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smarthome-data/internal/domain"
)

func seedDeviceForReadings(t *testing.T, store *Store) domain.Device {
	t.Helper()
	site := createTestSite(t, store, "Readings Site")
	room := createTestRoom(t, store, site.ID, "Readings Room")
	return createTestDevice(t, store, room.ID, "Readings Sensor")
}

func TestSensorReadingsInsertAndListByDevice(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	device := seedDeviceForReadings(t, store)

	unit := domain.SensorUnitCelsius
	reading, err := store.SensorReadings.Insert(ctx, domain.SensorReadingInput{
		DeviceID: device.ID,
		Value:    "21.7",
		Unit:     &unit,
	})
	require.NoError(t, err)
	require.Greater(t, reading.ID, int64(0))
	require.Equal(t, device.ID, reading.DeviceID)
	require.Equal(t, "21.7", reading.Value)

	bare, err := store.SensorReadings.Insert(ctx, domain.SensorReadingInput{
		DeviceID: device.ID,
		Value:    "22.0",
	})
	require.NoError(t, err)
	require.Nil(t, bare.Unit)

	readings, err := store.SensorReadings.ListByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.Len(t, readings, 2)

	byValue := map[string]domain.SensorReading{}
	for _, r := range readings {
		byValue[r.Value] = r
	}
	require.NotNil(t, byValue["21.7"].Unit)
	require.Equal(t, domain.SensorUnitCelsius, *byValue["21.7"].Unit)
	require.Nil(t, byValue["22.0"].Unit)
}

// Readings accept any device id: the parent check deliberately does not run
// on the telemetry path. This pins the current contract.
func TestSensorReadingsInsertWithUnknownDeviceSucceeds(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	reading, err := store.SensorReadings.Insert(ctx, domain.SensorReadingInput{
		DeviceID: 424242,
		Value:    "19.9",
	})
	require.NoError(t, err)
	require.Equal(t, int64(424242), reading.DeviceID)

	readings, err := store.SensorReadings.ListByDevice(ctx, 424242)
	require.NoError(t, err)
	require.Len(t, readings, 1)
}

func TestSensorReadingsLatestByDevice(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	device := seedDeviceForReadings(t, store)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	insertAt := func(value string, at time.Time) domain.SensorReading {
		r, err := store.SensorReadings.InsertAt(ctx, domain.SensorReadingInput{
			DeviceID: device.ID,
			Value:    value,
		}, at)
		require.NoError(t, err)
		return r
	}

	insertAt("20.0", base.Add(10*time.Minute))
	newest := insertAt("21.0", base.Add(30*time.Minute))
	insertAt("20.5", base.Add(20*time.Minute))

	latest, err := store.SensorReadings.LatestByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, newest.ID, latest.ID)
	require.Equal(t, "21.0", latest.Value)
}

func TestSensorReadingsLatestTieBreaksToFirstSeen(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	device := seedDeviceForReadings(t, store)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := store.SensorReadings.InsertAt(ctx,
		domain.SensorReadingInput{DeviceID: device.ID, Value: "20.1"}, at)
	require.NoError(t, err)
	_, err = store.SensorReadings.InsertAt(ctx,
		domain.SensorReadingInput{DeviceID: device.ID, Value: "20.2"}, at)
	require.NoError(t, err)

	latest, err := store.SensorReadings.LatestByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, first.ID, latest.ID)
}

func TestSensorReadingsLatestByDeviceEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	latest, err := store.SensorReadings.LatestByDevice(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, latest)
}
