package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/museumsapi/museums-api/internal/museum"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("museum not found")
	ErrInvalidID = errors.New("invalid museum id")
)

// Repository is the persistence contract for museum documents. Replace
// substitutes the whole stored document.
type Repository interface {
	List(ctx context.Context) ([]*museum.Museum, error)
	Get(ctx context.Context, id string) (*museum.Museum, error)
	Create(ctx context.Context, m *museum.Museum) (string, error)
	Replace(ctx context.Context, id string, m *museum.Museum) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// ParseID converts a hex id into an ObjectID. The returned error wraps
// ErrInvalidID and keeps the driver's parse failure text.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	return oid, nil
}
