package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/museumsapi/museums-api/internal/museum"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepo stores museums in a MongoDB collection keyed by ObjectID.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context) ([]*museum.Museum, error) {
	cur, err := m.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find museums: %w", err)
	}
	defer cur.Close(ctx)
	out := []*museum.Museum{}
	for cur.Next(ctx) {
		var d museum.Museum
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode museum: %w", err)
		}
		out = append(out, &d)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*museum.Museum, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var d museum.Museum
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo) Create(ctx context.Context, doc *museum.Museum) (string, error) {
	doc.ID = primitive.NilObjectID
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return oid.Hex(), nil
}

func (m *MongoRepo) Replace(ctx context.Context, id string, doc *museum.Museum) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	doc.ID = oid
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, readpref.Primary())
}
