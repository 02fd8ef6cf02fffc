package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"smarthome-data/internal/domain"
)

func createTestSite(t *testing.T, store *Store, name string) domain.Site {
	t.Helper()
	site, err := store.Sites.Insert(context.Background(), domain.SiteInput{Name: name})
	require.NoError(t, err)
	return site
}

func createTestRoom(t *testing.T, store *Store, siteID int64, name string) domain.Room {
	t.Helper()
	room, err := store.Rooms.Insert(context.Background(), domain.RoomInput{SiteID: siteID, Name: name})
	require.NoError(t, err)
	return room
}

func TestRoomsRepoInsertAndFetch(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	site := createTestSite(t, store, "Office")
	room, err := store.Rooms.Insert(ctx, domain.RoomInput{SiteID: site.ID, Name: "Lobby"})
	require.NoError(t, err)
	require.Greater(t, room.ID, int64(0))
	require.Equal(t, site.ID, room.SiteID)

	fetched, err := store.Rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, room.ID, fetched.ID)
	require.Equal(t, "Lobby", fetched.Name)

	missing, err := store.Rooms.GetByID(ctx, room.ID+100)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestRoomsRepoListBySiteDoesNotLeakAcrossSites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	siteA := createTestSite(t, store, "Site A")
	siteB := createTestSite(t, store, "Site B")

	createTestRoom(t, store, siteA.ID, "A-1")
	createTestRoom(t, store, siteA.ID, "A-2")
	createTestRoom(t, store, siteB.ID, "B-1")

	roomsA, err := store.Rooms.ListBySite(ctx, siteA.ID)
	require.NoError(t, err)
	require.Len(t, roomsA, 2)
	for _, room := range roomsA {
		require.Equal(t, siteA.ID, room.SiteID)
	}

	roomsB, err := store.Rooms.ListBySite(ctx, siteB.ID)
	require.NoError(t, err)
	require.Len(t, roomsB, 1)
	require.Equal(t, "B-1", roomsB[0].Name)

	empty, err := store.Rooms.ListBySite(ctx, siteB.ID+100)
	require.NoError(t, err)
	require.Empty(t, empty)
}
