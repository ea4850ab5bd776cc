package repository

import (
	"context"
	"testing"

	"github.com/museumsapi/museums-api/internal/museum"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list decodes every document", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "name", Value: "Louvre"}, {Key: "admissionPrice", Value: 17.0}, {Key: "location", Value: "Paris"}},
			bson.D{{Key: "_id", Value: second}, {Key: "name", Value: "Prado"}, {Key: "admissionPrice", Value: 15.0}, {Key: "location", Value: "Madrid"},
				{Key: "tours", Value: bson.A{bson.D{{Key: "tourName", Value: "Goya"}, {Key: "duration", Value: 60.0}}}}},
		))

		list, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		require.Equal(mt, first, list[0].ID)
		require.Equal(mt, "Madrid", list[1].Location)
		require.Len(mt, list[1].Tours, 1)
		require.Equal(mt, "Goya", list[1].Tours[0].TourName)
	})

	mt.Run("list of empty collection is an empty slice", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		list, err := repo.List(ctx)
		require.NoError(mt, err)
		require.NotNil(mt, list)
		require.Empty(mt, list)
	})

	mt.Run("get found", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "name", Value: "Tate"}, {Key: "admissionPrice", Value: 0.0}, {Key: "location", Value: "London"}},
		))

		got, err := repo.Get(ctx, oid.Hex())
		require.NoError(mt, err)
		require.Equal(mt, "Tate", got.Name)
	})

	mt.Run("get missing maps to ErrNotFound", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.Get(ctx, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("get malformed id never reaches the server", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		_, err := repo.Get(ctx, "123")
		require.ErrorIs(mt, err, ErrInvalidID)
	})

	mt.Run("create returns the generated id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		m := &museum.Museum{Name: "Louvre", AdmissionPrice: 17, Location: "Paris"}
		id, err := repo.Create(ctx, m)
		require.NoError(mt, err)
		require.Len(mt, id, 24)
		require.Equal(mt, id, m.ID.Hex())
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		_, err := repo.Create(ctx, &museum.Museum{Name: "Louvre"})
		require.Error(mt, err)
		require.Contains(mt, err.Error(), "duplicate key")
	})

	mt.Run("replace matched", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		oid := primitive.NewObjectID()
		m := &museum.Museum{Name: "Louvre", AdmissionPrice: 20, Location: "Paris"}
		require.NoError(mt, repo.Replace(ctx, oid.Hex(), m))
		require.Equal(mt, oid, m.ID)
	})

	mt.Run("replace unmatched maps to ErrNotFound", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.Replace(ctx, primitive.NewObjectID().Hex(), &museum.Museum{Name: "x"})
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		require.NoError(mt, repo.Delete(ctx, id))
		require.ErrorIs(mt, repo.Delete(ctx, id), ErrNotFound)
	})
}
