package sequence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubProductSource struct {
	id  int
	ok  bool
	err error
}

func (s *stubProductSource) MaxProductID(context.Context, int) (int, bool, error) {
	return s.id, s.ok, s.err
}

type stubOrderSource struct {
	code string
	ok   bool
	err  error
}

func (s *stubOrderSource) LastOrderCode(context.Context, string, string) (string, bool, error) {
	return s.code, s.ok, s.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNextProductIDEmptyCollection(t *testing.T) {
	a := NewAllocator(&stubProductSource{ok: false}, nil, zap.NewNop())
	assert.Equal(t, MinDynamicID, a.NextProductID(context.Background()))
}

func TestNextProductIDIncrements(t *testing.T) {
	source := &stubProductSource{id: 1041, ok: true}
	a := NewAllocator(source, nil, zap.NewNop())

	assert.Equal(t, 1042, a.NextProductID(context.Background()))

	source.id = 1042
	assert.Equal(t, 1043, a.NextProductID(context.Background()))
}

func TestNextProductIDFallback(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := NewAllocator(&stubProductSource{err: errors.New("store down")}, nil, zap.NewNop())
	a.now = fixedClock(now)

	assert.Equal(t, int(now.UnixMilli()), a.NextProductID(context.Background()))
}

func TestNextOrderCodeFreshDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	a := NewAllocator(nil, &stubOrderSource{ok: false}, zap.NewNop())
	a.now = fixedClock(now)

	assert.Equal(t, "ORD-20250601-00001", a.NextOrderCode(context.Background()))
}

func TestNextOrderCodeIncrementsWithinDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	source := &stubOrderSource{code: "ORD-20250601-00041", ok: true}
	a := NewAllocator(nil, source, zap.NewNop())
	a.now = fixedClock(now)

	assert.Equal(t, "ORD-20250601-00042", a.NextOrderCode(context.Background()))
}

func TestNextOrderCodeResetsAtDateChange(t *testing.T) {
	source := &stubOrderSource{ok: false}
	a := NewAllocator(nil, source, zap.NewNop())
	a.now = fixedClock(time.Date(2025, 6, 2, 0, 0, 1, 0, time.UTC))

	// Yesterday's codes fall outside today's range, so the sequence restarts.
	assert.Equal(t, "ORD-20250602-00001", a.NextOrderCode(context.Background()))
}

func TestNextOrderCodeUTCDate(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	a := NewAllocator(nil, &stubOrderSource{ok: false}, zap.NewNop())
	a.now = fixedClock(time.Date(2025, 6, 1, 23, 30, 0, 0, loc))

	assert.Equal(t, "ORD-20250602-00001", a.NextOrderCode(context.Background()))
}

func TestNextOrderCodeFallback(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	a := NewAllocator(nil, &stubOrderSource{err: errors.New("store down")}, zap.NewNop())
	a.now = fixedClock(now)

	assert.Equal(t, fmt.Sprintf("ORD-%d", now.UnixMilli()), a.NextOrderCode(context.Background()))
}
