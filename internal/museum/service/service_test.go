package service

import (
	"context"
	"errors"
	"testing"

	"github.com/museumsapi/museums-api/internal/museum"
	"github.com/museumsapi/museums-api/internal/museum/repository"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func input(name string, price float64, location string) *museum.Input {
	return &museum.Input{Name: &name, AdmissionPrice: &price, Location: &location}
}

func TestCreateValidatesBeforeStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	svc := New(repo)

	_, err := svc.Create(ctx, &museum.Input{})
	var verr *museum.ValidationError
	require.True(t, errors.As(err, &verr))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list, "invalid body must not reach the store")

	id, err := svc.Create(ctx, input("Louvre", 17, "Paris"))
	require.NoError(t, err)
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Louvre", got.Name)
}

func TestGetMapsErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService()

	_, err := svc.Get(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "bogus")
	require.ErrorIs(t, err, repository.ErrInvalidID)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService()
	id, err := svc.Create(ctx, input("Louvre", 17, "Paris"))
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		err := svc.Update(ctx, primitive.NewObjectID().Hex(), input("x", 1, "y"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown id wins over invalid body", func(t *testing.T) {
		err := svc.Update(ctx, primitive.NewObjectID().Hex(), &museum.Input{})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("mismatched body id", func(t *testing.T) {
		in := input("Other", 99, "Elsewhere")
		in.ID = primitive.NewObjectID().Hex()
		require.ErrorIs(t, svc.Update(ctx, id, in), ErrIDMismatch)

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Louvre", got.Name)
	})

	t.Run("matching body id", func(t *testing.T) {
		in := input("Louvre", 18, "Paris")
		in.AltID = id
		require.NoError(t, svc.Update(ctx, id, in))
	})

	t.Run("full replace", func(t *testing.T) {
		in := input("Louvre", 20, "Paris")
		in.Tours = []museum.Tour{{TourName: "Egyptian wing"}}
		require.NoError(t, svc.Update(ctx, id, in))
		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, 20.0, got.AdmissionPrice)
		require.Len(t, got.Tours, 1)

		require.NoError(t, svc.Update(ctx, id, input("Louvre", 20, "Paris")))
		got, err = svc.Get(ctx, id)
		require.NoError(t, err)
		require.Empty(t, got.Tours, "tours are replaced wholesale")
	})

	t.Run("omitted required field is rejected", func(t *testing.T) {
		price := 25.0
		err := svc.Update(ctx, id, &museum.Input{AdmissionPrice: &price})
		var verr *museum.ValidationError
		require.True(t, errors.As(err, &verr))

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, 20.0, got.AdmissionPrice)
	})
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService()
	id, err := svc.Create(ctx, input("Prado", 15, "Madrid"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	require.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "nope"), repository.ErrInvalidID)
}

func TestReady(t *testing.T) {
	require.NoError(t, NewMemoryService().Ready(context.Background()))
}
