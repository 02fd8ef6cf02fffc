package domain

import (
	"database/sql"
	"time"
)

// Device 设备（隶属 Room，对应 devices 表）
type Device struct {
	ID               int64          `db:"id"`
	RoomID           int64          `db:"room_id"` // FK -> rooms.id
	Name             string         `db:"name"`
	DeviceType       DeviceType     `db:"device_type"`
	UniqueIdentifier sql.NullString `db:"unique_identifier"` // nullable
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// DeviceInput createDevice 参数
type DeviceInput struct {
	RoomID           int64
	Name             string
	DeviceType       DeviceType
	UniqueIdentifier *string
}
