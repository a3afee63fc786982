package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/order"
	"github.com/nextgencodex-com/Vengase-backend/internal/order/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/query"
)

const collection = "orders"

type FSRepository struct {
	client *firestore.Client
}

func NewFSRepository(client *firestore.Client) *FSRepository {
	return &FSRepository{client: client}
}

var _ order.Repository = (*FSRepository)(nil)

// Create uses the order code as document ID for direct retrieval.
func (r *FSRepository) Create(ctx context.Context, o *model.Order) error {
	_, err := r.client.Collection(collection).Doc(o.OrderID).Set(ctx, o)
	return errors.Wrap(err, "creating order")
}

func (r *FSRepository) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	snap, err := r.client.Collection(collection).Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "fetching order")
	}
	var o model.Order
	if err := snap.DataTo(&o); err != nil {
		return nil, errors.Wrap(err, "decoding order")
	}
	return &o, nil
}

// FindAll pushes the first supplied filter to the store as its single
// equality clause and evaluates the others in memory, newest first.
func (r *FSRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, error) {
	var q firestore.Query
	var residual []query.Predicate[model.Order]

	switch {
	case f.OrderStatus != "":
		q = r.client.Collection(collection).Where("orderStatus", "==", f.OrderStatus)
		residual = residualOrderPredicates("", f.PaymentStatus, f.UserID)
	case f.PaymentStatus != "":
		q = r.client.Collection(collection).Where("paymentStatus", "==", f.PaymentStatus)
		residual = residualOrderPredicates("", "", f.UserID)
	case f.UserID != "":
		q = r.client.Collection(collection).Where("userId", "==", f.UserID)
	default:
		q = r.client.Collection(collection).OrderBy("createdAt", firestore.Desc)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	orders := []model.Order{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "listing orders")
		}
		var o model.Order
		if err := snap.DataTo(&o); err != nil {
			return nil, errors.Wrap(err, "decoding order")
		}
		orders = append(orders, o)
	}

	orders = query.Filter(orders, residual...)
	query.SortBy(orders, func(a, b model.Order) bool { return a.CreatedAt.Before(b.CreatedAt) }, true)
	return orders, nil
}

func residualOrderPredicates(orderStatus, paymentStatus, userID string) []query.Predicate[model.Order] {
	var preds []query.Predicate[model.Order]
	if orderStatus != "" {
		preds = append(preds, func(o model.Order) bool { return o.OrderStatus == orderStatus })
	}
	if paymentStatus != "" {
		preds = append(preds, func(o model.Order) bool { return o.PaymentStatus == paymentStatus })
	}
	if userID != "" {
		preds = append(preds, func(o model.Order) bool { return o.UserID == userID })
	}
	return preds
}

func (r *FSRepository) UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error {
	_, err := r.client.Collection(collection).Doc(orderID).Set(ctx, fields, firestore.MergeAll)
	return errors.Wrap(err, "updating order")
}

// LastOrderCode backs the daily sequence: greatest code within [lo, hi].
func (r *FSRepository) LastOrderCode(ctx context.Context, lo, hi string) (string, bool, error) {
	iter := r.client.Collection(collection).
		Where("orderId", ">=", lo).
		Where("orderId", "<=", hi).
		OrderBy("orderId", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "querying last order code")
	}
	var o model.Order
	if err := snap.DataTo(&o); err != nil {
		return "", false, errors.Wrap(err, "decoding order")
	}
	return o.OrderID, true, nil
}
