package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smarthome-data/internal/domain"
)

func TestControlSetpointsInsertAndLatest(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	site := createTestSite(t, store, "Setpoint Site")
	room := createTestRoom(t, store, site.ID, "Setpoint Room")
	device := createTestDevice(t, store, room.ID, "Thermostat")

	unit := domain.SetpointUnitCelsius
	base := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

	older, err := store.ControlSetpoints.InsertAt(ctx, domain.ControlSetpointInput{
		DeviceID:     device.ID,
		SetpointType: domain.SetpointTypeTemperature,
		Value:        "21.0",
		Unit:         &unit,
	}, base)
	require.NoError(t, err)
	require.Equal(t, domain.SetpointTypeTemperature, older.SetpointType)

	newer, err := store.ControlSetpoints.InsertAt(ctx, domain.ControlSetpointInput{
		DeviceID:     device.ID,
		SetpointType: domain.SetpointTypeTemperature,
		Value:        "23.0",
	}, base.Add(time.Hour))
	require.NoError(t, err)
	require.Nil(t, newer.Unit)

	setpoints, err := store.ControlSetpoints.ListByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.Len(t, setpoints, 2)

	latest, err := store.ControlSetpoints.LatestByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, newer.ID, latest.ID)
	require.Equal(t, "23.0", latest.Value)

	none, err := store.ControlSetpoints.LatestByDevice(ctx, device.ID+99)
	require.NoError(t, err)
	require.Nil(t, none)
}

// Same telemetry fast path as readings: no parent check.
func TestControlSetpointsInsertWithUnknownDeviceSucceeds(t *testing.T) {
	store, _ := newTestStore(t)

	setpoint, err := store.ControlSetpoints.Insert(context.Background(), domain.ControlSetpointInput{
		DeviceID:     999999,
		SetpointType: domain.SetpointTypeTemperature,
		Value:        "25.0",
	})
	require.NoError(t, err)
	require.Equal(t, int64(999999), setpoint.DeviceID)
}
