package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nextgencodex-com/Vengase-backend/internal/category"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

const collection = "categories"

type FSRepository struct {
	client *firestore.Client
}

func NewFSRepository(client *firestore.Client) *FSRepository {
	return &FSRepository{client: client}
}

var _ category.Repository = (*FSRepository)(nil)

func (r *FSRepository) Create(ctx context.Context, c *model.Category) error {
	_, err := r.client.Collection(collection).Doc(c.ID).Set(ctx, c)
	return errors.Wrap(err, "creating category")
}

func (r *FSRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching category")
	}
	var c model.Category
	if err := snap.DataTo(&c); err != nil {
		return nil, errors.Wrap(err, "decoding category")
	}
	return &c, nil
}

func (r *FSRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	iter := r.client.Collection(collection).Where("name", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying category by name")
	}
	var c model.Category
	if err := snap.DataTo(&c); err != nil {
		return nil, errors.Wrap(err, "decoding category")
	}
	return &c, nil
}

func (r *FSRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	iter := r.client.Collection(collection).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	categories := []model.Category{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "listing categories")
		}
		var c model.Category
		if err := snap.DataTo(&c); err != nil {
			return nil, errors.Wrap(err, "decoding category")
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *FSRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	_, err := r.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return errors.Wrap(err, "updating category")
}

func (r *FSRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Delete(ctx)
	return errors.Wrap(err, "deleting category")
}
