package domain

import "time"

// SensorReading 设备观测值（对应 sensor_readings 表）
// Value is kept as text so the caller's decimal formatting survives storage.
type SensorReading struct {
	ID        int64       `db:"id"`
	DeviceID  int64       `db:"device_id"` // FK -> devices.id (not enforced, see DESIGN.md)
	Value     string      `db:"value"`
	Unit      *SensorUnit `db:"unit"` // nullable
	Timestamp time.Time   `db:"timestamp"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

// SensorReadingInput createSensorReading 参数
type SensorReadingInput struct {
	DeviceID int64
	Value    string
	Unit     *SensorUnit
}
