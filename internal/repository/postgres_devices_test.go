package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"smarthome-data/internal/domain"
)

func createTestDevice(t *testing.T, store *Store, roomID int64, name string) domain.Device {
	t.Helper()
	device, err := store.Devices.Insert(context.Background(), domain.DeviceInput{
		RoomID:     roomID,
		Name:       name,
		DeviceType: domain.DeviceTypeTemperatureSensor,
	})
	require.NoError(t, err)
	return device
}

func TestDevicesRepoInsertAndListByRoom(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	site := createTestSite(t, store, "Plant")
	roomA := createTestRoom(t, store, site.ID, "Boiler Room")
	roomB := createTestRoom(t, store, site.ID, "Control Room")

	uid := "sensor-00:1A:2B"
	device, err := store.Devices.Insert(ctx, domain.DeviceInput{
		RoomID:           roomA.ID,
		Name:             "Boiler Sensor",
		DeviceType:       domain.DeviceTypeTemperatureSensor,
		UniqueIdentifier: &uid,
	})
	require.NoError(t, err)
	require.Equal(t, roomA.ID, device.RoomID)
	require.Equal(t, domain.DeviceTypeTemperatureSensor, device.DeviceType)
	require.True(t, device.UniqueIdentifier.Valid)
	require.Equal(t, uid, device.UniqueIdentifier.String)

	thermostat, err := store.Devices.Insert(ctx, domain.DeviceInput{
		RoomID:     roomB.ID,
		Name:       "Main Thermostat",
		DeviceType: domain.DeviceTypeThermostatController,
	})
	require.NoError(t, err)
	require.False(t, thermostat.UniqueIdentifier.Valid)

	devicesA, err := store.Devices.ListByRoom(ctx, roomA.ID)
	require.NoError(t, err)
	require.Len(t, devicesA, 1)
	require.Equal(t, device.ID, devicesA[0].ID)
	require.Equal(t, uid, devicesA[0].UniqueIdentifier.String)

	devicesB, err := store.Devices.ListByRoom(ctx, roomB.ID)
	require.NoError(t, err)
	require.Len(t, devicesB, 1)
	require.Equal(t, domain.DeviceTypeThermostatController, devicesB[0].DeviceType)
}

func TestDevicesRepoRejectsUnknownStoredType(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	site := createTestSite(t, store, "Plant")
	room := createTestRoom(t, store, site.ID, "Closet")

	// A row written outside the API with a bad enum must fail on read, not
	// silently default.
	_, err := db.Exec(
		`INSERT INTO devices (room_id, name, device_type, created_at, updated_at)
		 VALUES ($1, 'Rogue', 'HumiditySensor', '2024-01-01 00:00:00', '2024-01-01 00:00:00')`,
		room.ID)
	require.NoError(t, err)

	_, err = store.Devices.ListByRoom(ctx, room.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown device type")
}
