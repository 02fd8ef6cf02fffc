// Package graph exposes the entity hierarchy as a GraphQL schema: root
// queries and mutations plus per-entity child resolvers that fetch on demand.
// A failing field yields a field-level error while sibling fields still
// resolve (partial responses).
package graph

import (
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"smarthome-data/internal/domain"
	"smarthome-data/internal/repository"
)

type builder struct {
	store  *repository.Store
	logger *zap.Logger

	sensorReadingType   *graphql.Object
	controlSetpointType *graphql.Object
	deviceType          *graphql.Object
	roomType            *graphql.Object
	siteType            *graphql.Object
}

// NewSchema builds the executable schema around an explicit store handle.
func NewSchema(store *repository.Store, logger *zap.Logger) (graphql.Schema, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &builder{store: store, logger: logger}
	b.buildTypes()
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryRoot(),
		Mutation: b.mutationRoot(),
	})
}

func (b *builder) queryRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"sites": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.siteType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return b.store.Sites.List(p.Context)
				},
			},
			"site": &graphql.Field{
				Type: b.siteType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, err := parseID(p.Args["id"], "id")
					if err != nil {
						return nil, err
					}
					site, err := b.store.Sites.GetByID(p.Context, id)
					if err != nil || site == nil {
						return nil, err
					}
					return *site, nil
				},
			},
			"room": &graphql.Field{
				Type: b.roomType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, err := parseID(p.Args["id"], "id")
					if err != nil {
						return nil, err
					}
					room, err := b.store.Rooms.GetByID(p.Context, id)
					if err != nil || room == nil {
						return nil, err
					}
					return *room, nil
				},
			},
			"devicesInRoom": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.deviceType))),
				Args: graphql.FieldConfigArgument{
					"roomId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					roomID, err := parseID(p.Args["roomId"], "roomId")
					if err != nil {
						return nil, err
					}
					return b.store.Devices.ListByRoom(p.Context, roomID)
				},
			},
			"latestSensorReading": &graphql.Field{
				Type: b.sensorReadingType,
				Args: graphql.FieldConfigArgument{
					"deviceId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					deviceID, err := parseID(p.Args["deviceId"], "deviceId")
					if err != nil {
						return nil, err
					}
					reading, err := b.store.SensorReadings.LatestByDevice(p.Context, deviceID)
					if err != nil || reading == nil {
						return nil, err
					}
					return *reading, nil
				},
			},
			"latestControlSetpoint": &graphql.Field{
				Type: b.controlSetpointType,
				Args: graphql.FieldConfigArgument{
					"deviceId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					deviceID, err := parseID(p.Args["deviceId"], "deviceId")
					if err != nil {
						return nil, err
					}
					setpoint, err := b.store.ControlSetpoints.LatestByDevice(p.Context, deviceID)
					if err != nil || setpoint == nil {
						return nil, err
					}
					return *setpoint, nil
				},
			},
		},
	})
}

func (b *builder) mutationRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createSite": &graphql.Field{
				Type: graphql.NewNonNull(b.siteType),
				Args: graphql.FieldConfigArgument{
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"address": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					input := domain.SiteInput{Name: p.Args["name"].(string)}
					if address, ok := p.Args["address"].(string); ok {
						input.Address = &address
					}
					site, err := b.store.Sites.Insert(p.Context, input)
					if err != nil {
						b.logger.Error("createSite failed", zap.Error(err))
						return nil, err
					}
					return site, nil
				},
			},
			"createRoom": &graphql.Field{
				Type: graphql.NewNonNull(b.roomType),
				Args: graphql.FieldConfigArgument{
					"siteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					siteID, err := parseID(p.Args["siteId"], "siteId")
					if err != nil {
						return nil, err
					}
					// Parent must exist before anything is written.
					if err := b.store.EnsureExists(p.Context, domain.EntityKindSite, siteID); err != nil {
						return nil, err
					}
					room, err := b.store.Rooms.Insert(p.Context, domain.RoomInput{
						SiteID: siteID,
						Name:   p.Args["name"].(string),
					})
					if err != nil {
						b.logger.Error("createRoom failed", zap.Error(err))
						return nil, err
					}
					return room, nil
				},
			},
			"createDevice": &graphql.Field{
				Type: graphql.NewNonNull(b.deviceType),
				Args: graphql.FieldConfigArgument{
					"roomId":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"deviceType":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(deviceTypeEnum)},
					"uniqueIdentifier": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					roomID, err := parseID(p.Args["roomId"], "roomId")
					if err != nil {
						return nil, err
					}
					if err := b.store.EnsureExists(p.Context, domain.EntityKindRoom, roomID); err != nil {
						return nil, err
					}
					input := domain.DeviceInput{
						RoomID:     roomID,
						Name:       p.Args["name"].(string),
						DeviceType: p.Args["deviceType"].(domain.DeviceType),
					}
					if uid, ok := p.Args["uniqueIdentifier"].(string); ok {
						input.UniqueIdentifier = &uid
					}
					device, err := b.store.Devices.Insert(p.Context, input)
					if err != nil {
						b.logger.Error("createDevice failed", zap.Error(err))
						return nil, err
					}
					return device, nil
				},
			},
			"createSensorReading": &graphql.Field{
				Type: graphql.NewNonNull(b.sensorReadingType),
				Args: graphql.FieldConfigArgument{
					"deviceId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"value":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"unit":     &graphql.ArgumentConfig{Type: sensorUnitEnum},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					deviceID, err := parseID(p.Args["deviceId"], "deviceId")
					if err != nil {
						return nil, err
					}
					input := domain.SensorReadingInput{
						DeviceID: deviceID,
						Value:    p.Args["value"].(string),
					}
					if unit, ok := p.Args["unit"].(domain.SensorUnit); ok {
						input.Unit = &unit
					}
					reading, err := b.store.SensorReadings.Insert(p.Context, input)
					if err != nil {
						b.logger.Error("createSensorReading failed", zap.Error(err))
						return nil, err
					}
					return reading, nil
				},
			},
			"createControlSetpoint": &graphql.Field{
				Type: graphql.NewNonNull(b.controlSetpointType),
				Args: graphql.FieldConfigArgument{
					"deviceId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"setpointType": &graphql.ArgumentConfig{Type: graphql.NewNonNull(setpointTypeEnum)},
					"value":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"unit":         &graphql.ArgumentConfig{Type: setpointUnitEnum},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					deviceID, err := parseID(p.Args["deviceId"], "deviceId")
					if err != nil {
						return nil, err
					}
					input := domain.ControlSetpointInput{
						DeviceID:     deviceID,
						SetpointType: p.Args["setpointType"].(domain.SetpointType),
						Value:        p.Args["value"].(string),
					}
					if unit, ok := p.Args["unit"].(domain.SetpointUnit); ok {
						input.Unit = &unit
					}
					setpoint, err := b.store.ControlSetpoints.Insert(p.Context, input)
					if err != nil {
						b.logger.Error("createControlSetpoint failed", zap.Error(err))
						return nil, err
					}
					return setpoint, nil
				},
			},
		},
	})
}
