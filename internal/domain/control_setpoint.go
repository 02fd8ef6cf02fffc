package domain

import "time"

// ControlSetpoint 设备控制目标值（对应 control_setpoints 表）
type ControlSetpoint struct {
	ID           int64         `db:"id"`
	DeviceID     int64         `db:"device_id"` // FK -> devices.id (not enforced, see DESIGN.md)
	SetpointType SetpointType  `db:"setpoint_type"`
	Value        string        `db:"value"`
	Unit         *SetpointUnit `db:"unit"` // nullable
	Timestamp    time.Time     `db:"timestamp"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

// ControlSetpointInput createControlSetpoint 参数
type ControlSetpointInput struct {
	DeviceID     int64
	SetpointType SetpointType
	Value        string
	Unit         *SetpointUnit
}
