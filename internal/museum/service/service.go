package service

import (
	"context"
	"errors"

	"github.com/museumsapi/museums-api/internal/museum"
	"github.com/museumsapi/museums-api/internal/museum/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrIDMismatch = errors.New("the ID's don't match")
)

// Service defines the museum operations used by the handler layer. Any error
// other than ErrNotFound and ErrIDMismatch is a bad request whose text is
// safe to echo back to the caller.
type Service interface {
	List(ctx context.Context) ([]*museum.Museum, error)
	Get(ctx context.Context, id string) (*museum.Museum, error)
	Create(ctx context.Context, in *museum.Input) (string, error)
	Update(ctx context.Context, id string, in *museum.Input) error
	Delete(ctx context.Context, id string) error
	Ready(ctx context.Context) error
}

// New returns a Service over the given repository.
func New(repo repository.Repository) Service {
	return &museumService{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller owns the client behind col.
func NewMongoService(col *mongo.Collection) Service {
	return New(repository.NewMongoRepo(col))
}

type museumService struct {
	repo repository.Repository
}

func (s *museumService) List(ctx context.Context) ([]*museum.Museum, error) {
	return s.repo.List(ctx)
}

func (s *museumService) Get(ctx context.Context, id string) (*museum.Museum, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return m, nil
}

func (s *museumService) Create(ctx context.Context, in *museum.Input) (string, error) {
	if err := museum.Validate(in); err != nil {
		return "", err
	}
	return s.repo.Create(ctx, in.Museum())
}

// Update replaces the stored museum. The lookup runs first so an unknown id
// reports not found even when the body is also invalid.
func (s *museumService) Update(ctx context.Context, id string, in *museum.Input) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return mapErr(err)
	}
	if in != nil {
		if bodyID := in.BodyID(); bodyID != "" && bodyID != id {
			return ErrIDMismatch
		}
	}
	if err := museum.Validate(in); err != nil {
		return err
	}
	return mapErr(s.repo.Replace(ctx, id, in.Museum()))
}

func (s *museumService) Delete(ctx context.Context, id string) error {
	return mapErr(s.repo.Delete(ctx, id))
}

func (s *museumService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
