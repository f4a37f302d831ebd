package payment_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/order"
	"github.com/MikeMC777/restau-management/internal/payment"
	"github.com/MikeMC777/restau-management/internal/testutil"
)

func seedOrder(t *testing.T, db *gorm.DB, owner, price string, qty int) *order.Response {
	t.Helper()
	u := testutil.User(t, db, owner)
	p := decimal.RequireFromString(price)
	o, err := order.NewService(order.NewGormRepo(db), nil, nil).Create(context.Background(), order.CreateRequest{
		UserID: u.ID,
		Items:  []order.ItemRequest{{Quantity: qty, UnitPrice: &p}},
	})
	require.NoError(t, err)
	return o
}

func TestCreateDefaults(t *testing.T) {
	db := testutil.DB(t)
	svc := payment.NewService(payment.NewGormRepo(db))
	m := testutil.Method(t, db, "CASH", "Cash")
	o := seedOrder(t, db, "maria", "12.50", 2)

	p, err := svc.Create(context.Background(), payment.Request{OrderID: o.ID, MethodID: m.ID})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.00").Equal(p.Amount))
	assert.Equal(t, payment.StatusPending, p.Status)
	require.NotNil(t, p.ReceiptNumber)
	assert.True(t, strings.HasPrefix(*p.ReceiptNumber, "RC-"))
	assert.Len(t, *p.ReceiptNumber, 13)
	assert.WithinDuration(t, time.Now(), p.Timestamp, time.Minute)

	byReceipt, err := svc.ByReceipt(context.Background(), *p.ReceiptNumber)
	require.NoError(t, err)
	assert.Equal(t, p.ID, byReceipt.ID)

	byOrder, err := svc.ByOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, byOrder.ID)
}

func TestCreateRejections(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := payment.NewService(payment.NewGormRepo(db))
	m := testutil.Method(t, db, "CARD", "Visa")
	o := seedOrder(t, db, "maria", "10.00", 1)

	_, err := svc.Create(ctx, payment.Request{OrderID: o.ID})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = svc.Create(ctx, payment.Request{OrderID: 999, MethodID: m.ID})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = svc.Create(ctx, payment.Request{OrderID: o.ID, MethodID: 999})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = svc.Create(ctx, payment.Request{OrderID: o.ID, MethodID: m.ID, Status: "lost"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	neg := decimal.RequireFromString("-1")
	_, err = svc.Create(ctx, payment.Request{OrderID: o.ID, MethodID: m.ID, Amount: &neg})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = svc.Create(ctx, payment.Request{OrderID: o.ID, MethodID: m.ID, TransactionID: "tx-1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, payment.Request{OrderID: o.ID, MethodID: m.ID})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	other := seedOrder(t, db, "joao", "3.00", 1)
	_, err = svc.Create(ctx, payment.Request{OrderID: other.ID, MethodID: m.ID, TransactionID: "tx-1"})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	found, err := svc.ByTransaction(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, o.ID, found.OrderID)
	_, err = svc.ByTransaction(ctx, "tx-404")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestUpdateAndDelete(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := payment.NewService(payment.NewGormRepo(db))
	m := testutil.Method(t, db, "CASH", "Cash")
	o := seedOrder(t, db, "maria", "8.00", 1)

	p, err := svc.Create(ctx, payment.Request{OrderID: o.ID, MethodID: m.ID})
	require.NoError(t, err)

	amt := decimal.RequireFromString("9.00")
	up, err := svc.Update(ctx, p.ID, payment.Request{OrderID: o.ID, MethodID: m.ID, Amount: &amt, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, up.Status)
	assert.True(t, amt.Equal(up.Amount))
	assert.Equal(t, *p.ReceiptNumber, *up.ReceiptNumber)

	_, err = svc.Update(ctx, 999, payment.Request{OrderID: o.ID, MethodID: m.ID})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.True(t, errors.Is(svc.Delete(ctx, p.ID), apperr.ErrNotFound))
}

func TestDateRangeAndRevenue(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := payment.NewService(payment.NewGormRepo(db))
	m := testutil.Method(t, db, "CASH", "Cash")

	at := func(owner, status string, ts time.Time) {
		o := seedOrder(t, db, owner, "10.00", 1)
		_, err := svc.Create(ctx, payment.Request{OrderID: o.ID, MethodID: m.ID, Status: status, Timestamp: &ts})
		require.NoError(t, err)
	}
	now := time.Now()
	at("a", payment.StatusCompleted, time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local))
	at("b", payment.StatusCompleted, time.Date(2025, 3, 2, 23, 59, 0, 0, time.Local))
	at("c", payment.StatusCompleted, time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local))
	at("d", payment.StatusCompleted, now)
	at("e", payment.StatusPending, now)

	march, err := svc.DateRange(ctx, "2025-03-01", "2025-03-02")
	require.NoError(t, err)
	assert.Len(t, march, 2)

	exact, err := svc.DateRange(ctx, "2025-03-01T12:00:00", "2025-03-03T00:00:00")
	require.NoError(t, err)
	assert.Len(t, exact, 3)

	_, err = svc.DateRange(ctx, "2025-03-03", "2025-03-01")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	_, err = svc.DateRange(ctx, "", "2025-03-01")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	_, err = svc.DateRange(ctx, "yesterday", "2025-03-01")
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	rev, err := svc.TodayRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.00").Equal(rev.Total), rev.Total.String())
	assert.Equal(t, payment.StatusCompleted, rev.Status)

	pending, err := svc.List(ctx, payment.Filter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
