package seed

import (
	"context"
	"database/sql"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smarthome-data/internal/repository"
	"smarthome-data/internal/testutil"
)

func newTestStore(t *testing.T) (*repository.Store, *sql.DB) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	return repository.New(db), db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestRunSeedsFullHierarchy(t *testing.T) {
	store, db := newTestStore(t)

	require.NoError(t, Run(context.Background(), store, zap.NewNop(), false))

	assert.Equal(t, 1, countRows(t, db, "sites"))
	assert.Equal(t, 1, countRows(t, db, "rooms"))
	assert.Equal(t, 1, countRows(t, db, "devices"))
	assert.Equal(t, 1, countRows(t, db, "control_setpoints"))
	assert.Equal(t, 100, countRows(t, db, "sensor_readings"))

	var siteName, deviceType, setpointValue string
	require.NoError(t, db.QueryRow(`SELECT name FROM sites`).Scan(&siteName))
	require.NoError(t, db.QueryRow(`SELECT device_type FROM devices`).Scan(&deviceType))
	require.NoError(t, db.QueryRow(`SELECT value FROM control_setpoints`).Scan(&setpointValue))
	assert.Equal(t, "Main Office Site", siteName)
	assert.Equal(t, "TemperatureSensor", deviceType)
	assert.Equal(t, "22.5", setpointValue)

	// Every reading hangs off the one seeded device.
	var deviceID int64
	require.NoError(t, db.QueryRow(`SELECT id FROM devices`).Scan(&deviceID))
	var bound int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sensor_readings WHERE device_id = $1`, deviceID).Scan(&bound))
	assert.Equal(t, 100, bound)
}

func TestRunReadingValuesWithinBaselineBand(t *testing.T) {
	store, db := newTestStore(t)

	require.NoError(t, Run(context.Background(), store, zap.NewNop(), false))

	rows, err := db.Query(`SELECT value FROM sensor_readings`)
	require.NoError(t, err)
	defer rows.Close()

	oneDecimal := regexp.MustCompile(`^\d+\.\d$`)
	count := 0
	for rows.Next() {
		var value string
		require.NoError(t, rows.Scan(&value))
		assert.Regexp(t, oneDecimal, value)

		v, err := strconv.ParseFloat(value, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 21.5)
		assert.LessOrEqual(t, v, 23.5)
		count++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 100, count)
}

// All 100 readings carry one identical timestamp: the monotonic 5-minute
// spacing is computed but never applied. Pins the quirk.
func TestRunStampsAllReadingsIdentically(t *testing.T) {
	store, db := newTestStore(t)

	require.NoError(t, Run(context.Background(), store, zap.NewNop(), false))

	var distinct int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(DISTINCT timestamp) FROM sensor_readings`).Scan(&distinct))
	assert.Equal(t, 1, distinct)
}

// extend is inert: a second run, with or without the flag, creates another
// full independent hierarchy.
func TestRunTwiceDuplicatesHierarchy(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, store, zap.NewNop(), false))
	require.NoError(t, Run(ctx, store, zap.NewNop(), true))

	assert.Equal(t, 2, countRows(t, db, "sites"))
	assert.Equal(t, 2, countRows(t, db, "rooms"))
	assert.Equal(t, 2, countRows(t, db, "devices"))
	assert.Equal(t, 2, countRows(t, db, "control_setpoints"))
	assert.Equal(t, 200, countRows(t, db, "sensor_readings"))
}

func TestRunRollsBackEverythingOnFailure(t *testing.T) {
	store, db := newTestStore(t)

	// Fail the 51st reading insert mid-batch.
	_, err := db.Exec(`
		CREATE TRIGGER fail_after_fifty BEFORE INSERT ON sensor_readings
		WHEN (SELECT COUNT(*) FROM sensor_readings) >= 50
		BEGIN
			SELECT RAISE(ABORT, 'simulated storage failure');
		END`)
	require.NoError(t, err)

	err = Run(context.Background(), store, zap.NewNop(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated storage failure")

	assert.Equal(t, 0, countRows(t, db, "sites"))
	assert.Equal(t, 0, countRows(t, db, "rooms"))
	assert.Equal(t, 0, countRows(t, db, "devices"))
	assert.Equal(t, 0, countRows(t, db, "control_setpoints"))
	assert.Equal(t, 0, countRows(t, db, "sensor_readings"))
}
