package graph

import (
	"fmt"
	"strconv"

	"github.com/graphql-go/graphql"

	"smarthome-data/internal/domain"
)

// Enum values carry the typed domain constants so that resolver return
// values and coerced arguments are the same Go type on both sides.

var deviceTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "DeviceType",
	Values: graphql.EnumValueConfigMap{
		"TemperatureSensor":    &graphql.EnumValueConfig{Value: domain.DeviceTypeTemperatureSensor},
		"ThermostatController": &graphql.EnumValueConfig{Value: domain.DeviceTypeThermostatController},
	},
})

var sensorUnitEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SensorUnit",
	Values: graphql.EnumValueConfigMap{
		"Celsius":    &graphql.EnumValueConfig{Value: domain.SensorUnitCelsius},
		"Fahrenheit": &graphql.EnumValueConfig{Value: domain.SensorUnitFahrenheit},
	},
})

var setpointTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SetpointType",
	Values: graphql.EnumValueConfigMap{
		"Temperature": &graphql.EnumValueConfig{Value: domain.SetpointTypeTemperature},
	},
})

var setpointUnitEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SetpointUnit",
	Values: graphql.EnumValueConfigMap{
		"Celsius":    &graphql.EnumValueConfig{Value: domain.SetpointUnitCelsius},
		"Fahrenheit": &graphql.EnumValueConfig{Value: domain.SetpointUnitFahrenheit},
	},
})

func marshalID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(arg any, name string) (int64, error) {
	s, ok := arg.(string)
	if !ok {
		return 0, fmt.Errorf("argument %s must be an ID", name)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return id, nil
}

// buildTypes constructs the object types leaf-first. Child collections
// (Site.rooms, Room.devices, Device.sensorReadings/controlSetpoints) resolve
// lazily: each parent row triggers its own store call, only when the query
// asks for the field.
func (b *builder) buildTypes() {
	b.sensorReadingType = graphql.NewObject(graphql.ObjectConfig{
		Name: "SensorReading",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.SensorReading).ID), nil
				},
			},
			"deviceId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.SensorReading).DeviceID), nil
				},
			},
			"value": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.SensorReading).Value, nil
				},
			},
			"unit": &graphql.Field{
				Type: sensorUnitEnum,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					reading := p.Source.(domain.SensorReading)
					if reading.Unit == nil {
						return nil, nil
					}
					return *reading.Unit, nil
				},
			},
			"timestamp": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.SensorReading).Timestamp, nil
				},
			},
		},
	})

	b.controlSetpointType = graphql.NewObject(graphql.ObjectConfig{
		Name: "ControlSetpoint",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.ControlSetpoint).ID), nil
				},
			},
			"deviceId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.ControlSetpoint).DeviceID), nil
				},
			},
			"setpointType": &graphql.Field{
				Type: graphql.NewNonNull(setpointTypeEnum),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.ControlSetpoint).SetpointType, nil
				},
			},
			"value": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.ControlSetpoint).Value, nil
				},
			},
			"unit": &graphql.Field{
				Type: setpointUnitEnum,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					setpoint := p.Source.(domain.ControlSetpoint)
					if setpoint.Unit == nil {
						return nil, nil
					}
					return *setpoint.Unit, nil
				},
			},
			"timestamp": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.ControlSetpoint).Timestamp, nil
				},
			},
		},
	})

	b.deviceType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Device",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.Device).ID), nil
				},
			},
			"roomId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.Device).RoomID), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.Device).Name, nil
				},
			},
			"deviceType": &graphql.Field{
				Type: graphql.NewNonNull(deviceTypeEnum),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.Device).DeviceType, nil
				},
			},
			"uniqueIdentifier": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					device := p.Source.(domain.Device)
					if !device.UniqueIdentifier.Valid {
						return nil, nil
					}
					return device.UniqueIdentifier.String, nil
				},
			},
			"sensorReadings": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.sensorReadingType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return b.store.SensorReadings.ListByDevice(p.Context, p.Source.(domain.Device).ID)
				},
			},
			"controlSetpoints": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.controlSetpointType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return b.store.ControlSetpoints.ListByDevice(p.Context, p.Source.(domain.Device).ID)
				},
			},
		},
	})

	b.roomType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Room",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.Room).ID), nil
				},
			},
			"siteId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.Room).SiteID), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.Room).Name, nil
				},
			},
			"devices": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.deviceType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return b.store.Devices.ListByRoom(p.Context, p.Source.(domain.Room).ID)
				},
			},
		},
	})

	b.siteType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Site",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return marshalID(p.Source.(domain.Site).ID), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(domain.Site).Name, nil
				},
			},
			"address": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					site := p.Source.(domain.Site)
					if !site.Address.Valid {
						return nil, nil
					}
					return site.Address.String, nil
				},
			},
			"rooms": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.roomType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return b.store.Rooms.ListBySite(p.Context, p.Source.(domain.Site).ID)
				},
			},
		},
	})
}
