package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/internal/service"
	"roombook/internal/store/memory"
)

func TestRoomServiceCRUD(t *testing.T) {
	st := memory.NewStore()
	rooms := service.NewRoomService(st)
	ctx := context.Background()

	t.Run("EmptyStoreListsNothing", func(t *testing.T) {
		list, err := rooms.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("AddAssignsUniqueKeys", func(t *testing.T) {
		a, err := rooms.Add(ctx, "Fishbowl", "8")
		require.NoError(t, err)
		b, err := rooms.Add(ctx, "Boardroom", "20")
		require.NoError(t, err)

		assert.NotEmpty(t, a.Key)
		assert.NotEqual(t, a.Key, b.Key)

		list, err := rooms.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("UpdateReplacesAllFieldsInPlace", func(t *testing.T) {
		list, err := rooms.List(ctx)
		require.NoError(t, err)
		target := list[0]

		updated, err := rooms.Update(ctx, target.Key, "Aquarium", "10")
		require.NoError(t, err)
		assert.Equal(t, target.Key, updated.Key)
		assert.Equal(t, "Aquarium", updated.Name)
		assert.Equal(t, "10", updated.Capacity)

		list, err = rooms.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
		assert.Equal(t, "Boardroom", list[1].Name, "other rooms must be untouched")
	})

	t.Run("UpdateUnknownKey", func(t *testing.T) {
		_, err := rooms.Update(ctx, "no-such-key", "X", "1")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		list, err := rooms.List(ctx)
		require.NoError(t, err)

		require.NoError(t, rooms.Delete(ctx, list[0].Key))

		list, err = rooms.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		assert.ErrorIs(t, rooms.Delete(ctx, "no-such-key"), service.ErrNotFound)
	})
}

func TestRoomServiceToleratesCorruptList(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, "rooms", []byte("{not json")))

	rooms := service.NewRoomService(st)
	list, err := rooms.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// A mutation replaces the corrupt value with a valid list
	_, err = rooms.Add(ctx, "Fresh start", "4")
	require.NoError(t, err)
	list, err = rooms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRoomServiceUpdateCallbacks(t *testing.T) {
	st := memory.NewStore()
	rooms := service.NewRoomService(st)
	ctx := context.Background()

	events := 0
	rooms.RegisterUpdateCallback(func() { events++ })

	room, err := rooms.Add(ctx, "Fishbowl", "8")
	require.NoError(t, err)
	assert.Equal(t, 1, events)

	_, err = rooms.Update(ctx, room.Key, "Fishbowl", "9")
	require.NoError(t, err)
	require.NoError(t, rooms.Delete(ctx, room.Key))
	assert.Equal(t, 3, events, "one notification per write")

	// A write from a second service over the same store also notifies
	other := service.NewRoomService(st)
	_, err = other.Add(ctx, "Annex", "2")
	require.NoError(t, err)
	assert.Equal(t, 4, events)
}
