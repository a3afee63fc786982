package repository

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/product"
	"github.com/nextgencodex-com/Vengase-backend/internal/product/dto"
)

const collection = "products"

type FSRepository struct {
	client *firestore.Client
}

func NewFSRepository(client *firestore.Client) *FSRepository {
	return &FSRepository{client: client}
}

var _ product.Repository = (*FSRepository)(nil)

func docID(id int) string { return strconv.Itoa(id) }

func (r *FSRepository) Create(ctx context.Context, p *model.Product) error {
	_, err := r.client.Collection(collection).Doc(docID(p.ID)).Set(ctx, p)
	return errors.Wrap(err, "creating product")
}

func (r *FSRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	snap, err := r.client.Collection(collection).Doc(docID(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching product")
	}
	var p model.Product
	if err := snap.DataTo(&p); err != nil {
		return nil, errors.Wrap(err, "decoding product")
	}
	return &p, nil
}

// FindAll pushes at most one equality clause to the store (category, when
// present) and evaluates everything else through the in-memory pipeline.
// Requesting a store-level order alongside a where clause would require a
// composite index, so ordering only happens at the store when no primary
// filter is supplied.
func (r *FSRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	var q firestore.Query
	if f.Category != "" {
		q = r.client.Collection(collection).Where("category", "==", f.Category)
	} else {
		q = r.client.Collection(collection).OrderBy("createdAt", firestore.Desc)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	products := []model.Product{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "listing products")
		}
		var p model.Product
		if err := snap.DataTo(&p); err != nil {
			return nil, errors.Wrap(err, "decoding product")
		}
		products = append(products, p)
	}

	return product.ApplyPipeline(products, f), nil
}

// UpdateFields performs a merge write of the provided fields; absent fields
// keep their stored values and the id is never among them.
func (r *FSRepository) UpdateFields(ctx context.Context, id int, fields map[string]interface{}) error {
	_, err := r.client.Collection(collection).Doc(docID(id)).Set(ctx, fields, firestore.MergeAll)
	return errors.Wrap(err, "updating product")
}

func (r *FSRepository) Delete(ctx context.Context, id int) error {
	_, err := r.client.Collection(collection).Doc(docID(id)).Delete(ctx)
	return errors.Wrap(err, "deleting product")
}

func (r *FSRepository) ExistsByCategory(ctx context.Context, category string) (bool, error) {
	return r.exists(ctx, "category", category)
}

func (r *FSRepository) ExistsBySubcategory(ctx context.Context, subcategory string) (bool, error) {
	return r.exists(ctx, "subcategory", subcategory)
}

func (r *FSRepository) exists(ctx context.Context, field, value string) (bool, error) {
	iter := r.client.Collection(collection).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "checking products by %s", field)
	}
	return true, nil
}

// MaxProductID backs the sequence allocator: highest id at or above floor.
func (r *FSRepository) MaxProductID(ctx context.Context, floor int) (int, bool, error) {
	iter := r.client.Collection(collection).
		Where("id", ">=", floor).
		OrderBy("id", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "querying max product id")
	}
	var p model.Product
	if err := snap.DataTo(&p); err != nil {
		return 0, false, errors.Wrap(err, "decoding product")
	}
	return p.ID, true, nil
}
