package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nextgencodex-com/Vengase-backend/internal/admin"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

const collection = "admins"

type FSRepository struct {
	client *firestore.Client
}

func NewFSRepository(client *firestore.Client) *FSRepository {
	return &FSRepository{client: client}
}

var _ admin.Repository = (*FSRepository)(nil)

func (r *FSRepository) Upsert(ctx context.Context, a *model.Admin) error {
	_, err := r.client.Collection(collection).Doc(a.UID).Set(ctx, a)
	return errors.Wrap(err, "upserting admin record")
}

func (r *FSRepository) FindByUID(ctx context.Context, uid string) (*model.Admin, error) {
	snap, err := r.client.Collection(collection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching admin record")
	}
	var a model.Admin
	if err := snap.DataTo(&a); err != nil {
		return nil, errors.Wrap(err, "decoding admin record")
	}
	return &a, nil
}

func (r *FSRepository) FindAll(ctx context.Context) ([]model.Admin, error) {
	iter := r.client.Collection(collection).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	admins := []model.Admin{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "listing admin records")
		}
		var a model.Admin
		if err := snap.DataTo(&a); err != nil {
			return nil, errors.Wrap(err, "decoding admin record")
		}
		admins = append(admins, a)
	}
	return admins, nil
}

func (r *FSRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	_, err := r.client.Collection(collection).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	return errors.Wrap(err, "updating admin record")
}
