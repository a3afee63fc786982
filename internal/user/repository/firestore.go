package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/user"
)

const collection = "users"

// FSRepository stores profiles keyed by the identity provider's UID.
type FSRepository struct {
	client *firestore.Client
}

func NewFSRepository(client *firestore.Client) *FSRepository {
	return &FSRepository{client: client}
}

var _ user.Repository = (*FSRepository)(nil)

func (r *FSRepository) Create(ctx context.Context, u *model.User) error {
	_, err := r.client.Collection(collection).Doc(u.UID).Set(ctx, u)
	return errors.Wrap(err, "creating user profile")
}

func (r *FSRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	snap, err := r.client.Collection(collection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching user profile")
	}
	var u model.User
	if err := snap.DataTo(&u); err != nil {
		return nil, errors.Wrap(err, "decoding user profile")
	}
	return &u, nil
}

func (r *FSRepository) FindAll(ctx context.Context) ([]model.User, error) {
	iter := r.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	users := []model.User{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "listing user profiles")
		}
		var u model.User
		if err := snap.DataTo(&u); err != nil {
			return nil, errors.Wrap(err, "decoding user profile")
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *FSRepository) UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	_, err := r.client.Collection(collection).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	return errors.Wrap(err, "updating user profile")
}
