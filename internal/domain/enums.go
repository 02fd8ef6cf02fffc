package domain

import (
	"database/sql/driver"
	"fmt"
)

// Enum columns are stored as their textual variant name. Scan/Parse reject
// unknown variants instead of defaulting, so a bad row fails loudly on read.

// DeviceType 设备类型（devices.device_type）
type DeviceType string

const (
	DeviceTypeTemperatureSensor    DeviceType = "TemperatureSensor"
	DeviceTypeThermostatController DeviceType = "ThermostatController"
)

func ParseDeviceType(s string) (DeviceType, error) {
	switch DeviceType(s) {
	case DeviceTypeTemperatureSensor, DeviceTypeThermostatController:
		return DeviceType(s), nil
	}
	return "", fmt.Errorf("unknown device type %q", s)
}

func (t *DeviceType) Scan(src any) error {
	s, err := scanEnumString(src)
	if err != nil {
		return err
	}
	v, err := ParseDeviceType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t DeviceType) Value() (driver.Value, error) {
	if _, err := ParseDeviceType(string(t)); err != nil {
		return nil, err
	}
	return string(t), nil
}

// SensorUnit 传感器读数单位（sensor_readings.unit, nullable）
type SensorUnit string

const (
	SensorUnitCelsius    SensorUnit = "Celsius"
	SensorUnitFahrenheit SensorUnit = "Fahrenheit"
)

func ParseSensorUnit(s string) (SensorUnit, error) {
	switch SensorUnit(s) {
	case SensorUnitCelsius, SensorUnitFahrenheit:
		return SensorUnit(s), nil
	}
	return "", fmt.Errorf("unknown sensor unit %q", s)
}

// SetpointType 设定值类型（control_setpoints.setpoint_type）
type SetpointType string

const SetpointTypeTemperature SetpointType = "Temperature"

func ParseSetpointType(s string) (SetpointType, error) {
	if SetpointType(s) == SetpointTypeTemperature {
		return SetpointTypeTemperature, nil
	}
	return "", fmt.Errorf("unknown setpoint type %q", s)
}

func (t *SetpointType) Scan(src any) error {
	s, err := scanEnumString(src)
	if err != nil {
		return err
	}
	v, err := ParseSetpointType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t SetpointType) Value() (driver.Value, error) {
	if _, err := ParseSetpointType(string(t)); err != nil {
		return nil, err
	}
	return string(t), nil
}

// SetpointUnit 设定值单位（control_setpoints.unit, nullable）
type SetpointUnit string

const (
	SetpointUnitCelsius    SetpointUnit = "Celsius"
	SetpointUnitFahrenheit SetpointUnit = "Fahrenheit"
)

func ParseSetpointUnit(s string) (SetpointUnit, error) {
	switch SetpointUnit(s) {
	case SetpointUnitCelsius, SetpointUnitFahrenheit:
		return SetpointUnit(s), nil
	}
	return "", fmt.Errorf("unknown setpoint unit %q", s)
}

func scanEnumString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("cannot scan %T into enum", src)
}
