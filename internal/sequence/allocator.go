// Package sequence allocates the human-facing identifiers: integer product
// IDs and daily-reset order codes. Both work by reading the current maximum
// from the store and incrementing; there is no dedicated counter document.
//
// Concurrent creations can read the same maximum before either write
// commits and collide. That read-then-write race is a known property of the
// scheme, kept because an atomic counter would change the observable ID
// sequences.
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MinDynamicID is the floor for allocated product IDs; lower values are
// reserved for the static seed catalog.
const MinDynamicID = 1000

const orderCodePrefix = "ORD"

// ProductIDSource reports the highest product ID at or above floor.
// ok is false when no such product exists.
type ProductIDSource interface {
	MaxProductID(ctx context.Context, floor int) (id int, ok bool, err error)
}

// OrderCodeSource reports the lexicographically greatest order code within
// [lo, hi]. ok is false when the range is empty.
type OrderCodeSource interface {
	LastOrderCode(ctx context.Context, lo, hi string) (code string, ok bool, err error)
}

type Allocator struct {
	products ProductIDSource
	orders   OrderCodeSource
	now      func() time.Time
	log      *zap.Logger
}

func NewAllocator(products ProductIDSource, orders OrderCodeSource, log *zap.Logger) *Allocator {
	return &Allocator{
		products: products,
		orders:   orders,
		now:      time.Now,
		log:      log,
	}
}

// NextProductID returns max+1 over IDs >= MinDynamicID, or MinDynamicID on
// an empty collection. A failed store query falls back to wall-clock
// milliseconds, trading gap-free numbering for high-probability uniqueness.
func (a *Allocator) NextProductID(ctx context.Context) int {
	id, ok, err := a.products.MaxProductID(ctx, MinDynamicID)
	if err != nil {
		a.log.Warn("product id query failed, using timestamp fallback", zap.Error(err))
		return int(a.now().UnixMilli())
	}
	if !ok {
		return MinDynamicID
	}
	return id + 1
}

// NextOrderCode returns the next ORD-YYYYMMDD-NNNNN code for today (UTC),
// starting at 00001 on a fresh day. Fallback on query failure is
// ORD-<unix-milliseconds>.
func (a *Allocator) NextOrderCode(ctx context.Context) string {
	dateStr := a.now().UTC().Format("20060102")
	lo := fmt.Sprintf("%s-%s-00000", orderCodePrefix, dateStr)
	hi := fmt.Sprintf("%s-%s-99999", orderCodePrefix, dateStr)

	last, ok, err := a.orders.LastOrderCode(ctx, lo, hi)
	if err != nil {
		a.log.Warn("order code query failed, using timestamp fallback", zap.Error(err))
		return fmt.Sprintf("%s-%d", orderCodePrefix, a.now().UnixMilli())
	}

	number := 1
	if ok {
		parts := strings.Split(last, "-")
		if len(parts) == 3 {
			if n, perr := strconv.Atoi(parts[2]); perr == nil {
				number = n + 1
			}
		}
	}
	return fmt.Sprintf("%s-%s-%05d", orderCodePrefix, dateStr, number)
}
