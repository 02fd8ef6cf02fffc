package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"smarthome-data/internal/domain"
)

func TestEnsureExists(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	site := createTestSite(t, store, "Integrity Site")
	room := createTestRoom(t, store, site.ID, "Integrity Room")
	device := createTestDevice(t, store, room.ID, "Integrity Device")

	require.NoError(t, store.EnsureExists(ctx, domain.EntityKindSite, site.ID))
	require.NoError(t, store.EnsureExists(ctx, domain.EntityKindRoom, room.ID))
	require.NoError(t, store.EnsureExists(ctx, domain.EntityKindDevice, device.ID))
}

func TestEnsureExistsMissingParent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.EnsureExists(ctx, domain.EntityKindSite, 7)
	require.Error(t, err)

	var integrityErr *domain.IntegrityError
	require.True(t, errors.As(err, &integrityErr))
	require.Equal(t, domain.EntityKindSite, integrityErr.Kind)
	require.Equal(t, int64(7), integrityErr.ID)
	require.Equal(t, "Site with ID 7 does not exist", err.Error())
}

func TestEnsureExistsUnknownKind(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.EnsureExists(context.Background(), domain.EntityKind("Gadget"), 1)
	require.Error(t, err)

	var integrityErr *domain.IntegrityError
	require.False(t, errors.As(err, &integrityErr))
}
