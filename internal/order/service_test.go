package order_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/observability"
	"github.com/MikeMC777/restau-management/internal/order"
	"github.com/MikeMC777/restau-management/internal/payment"
	"github.com/MikeMC777/restau-management/internal/table"
	"github.com/MikeMC777/restau-management/internal/testutil"
)

type recorder struct {
	mu   sync.Mutex
	keys []string
}

func (r *recorder) Publish(_ context.Context, key string, _ any) error {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.mu.Unlock()
	return nil
}

func setup(t *testing.T) (*gorm.DB, *order.Service, *recorder) {
	t.Helper()
	db := testutil.DB(t)
	rec := &recorder{}
	return db, order.NewService(order.NewGormRepo(db), rec, observability.Noop()), rec
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func uptr(v uint) *uint { return &v }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func tableAvailable(t *testing.T, db *gorm.DB, id uint) bool {
	t.Helper()
	var tb table.Table
	require.NoError(t, db.First(&tb, id).Error)
	return tb.Available
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&order.Order{}).Count(&n).Error)
	return n
}

func TestCreate_PricePrecedenceAndTotal(t *testing.T) {
	db, svc, rec := setup(t)
	ctx := context.Background()
	u := testutil.User(t, db, "maria")
	tb := testutil.Table(t, db, 4, 2, true)
	p := testutil.Product(t, db, "Margherita", "10.00")

	resp, err := svc.Create(ctx, order.CreateRequest{
		UserID:  u.ID,
		TableID: uptr(tb.ID),
		Items: []order.ItemRequest{
			{ProductID: uptr(p.ID), Quantity: 2},
			{Quantity: 1, UnitPrice: dec("4.25")},
			{ProductID: uptr(p.ID), Quantity: 3, Price: dec("1.10")},
			{Quantity: 1},
			{Quantity: 2, UnitPrice: dec("0"), Price: dec("2.50")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusOngoing, resp.Status)
	require.Len(t, resp.Items, 5)
	assertDec(t, "20.00", resp.Items[0].Subtotal)
	assertDec(t, "4.25", resp.Items[1].Subtotal)
	assertDec(t, "3.30", resp.Items[2].Subtotal)
	assertDec(t, "0", resp.Items[3].Subtotal)
	assertDec(t, "5.00", resp.Items[4].Subtotal)
	assertDec(t, "32.55", resp.Total)

	var stored order.Order
	require.NoError(t, db.First(&stored, resp.ID).Error)
	var items []order.Item
	require.NoError(t, db.Where("order_id = ?", resp.ID).Find(&items).Error)
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal)
		assert.True(t, it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Equal(it.Subtotal))
	}
	assert.True(t, sum.Equal(stored.Total))

	assert.False(t, tableAvailable(t, db, tb.ID))
	assert.Equal(t, []string{order.EventCreated}, rec.keys)
}

func TestCreate_Validation(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	u := testutil.User(t, db, "maria")

	_, err := svc.Create(ctx, order.CreateRequest{})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = svc.Create(ctx, order.CreateRequest{UserID: u.ID, Status: "PAID"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = svc.Create(ctx, order.CreateRequest{UserID: u.ID, Items: []order.ItemRequest{{Quantity: 0}}})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Zero(t, countOrders(t, db))
}

func TestCreate_MissingReferences(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	u := testutil.User(t, db, "maria")

	_, err := svc.Create(ctx, order.CreateRequest{UserID: 999})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = svc.Create(ctx, order.CreateRequest{UserID: u.ID, ClientID: uptr(999)})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = svc.Create(ctx, order.CreateRequest{UserID: u.ID, TableID: uptr(999)})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Zero(t, countOrders(t, db))
}

func TestCreate_OccupiedTable(t *testing.T) {
	db, svc, rec := setup(t)
	u := testutil.User(t, db, "maria")
	tb := testutil.Table(t, db, 7, 4, false)

	_, err := svc.Create(context.Background(), order.CreateRequest{UserID: u.ID, TableID: uptr(tb.ID)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
	assert.Contains(t, err.Error(), "table 7 is already occupied")
	assert.Zero(t, countOrders(t, db))
	assert.Empty(t, rec.keys)
}

func TestCreate_FailureRollsBackTableClaim(t *testing.T) {
	db, svc, _ := setup(t)
	u := testutil.User(t, db, "maria")
	tb := testutil.Table(t, db, 3, 2, true)

	_, err := svc.Create(context.Background(), order.CreateRequest{
		UserID:  u.ID,
		TableID: uptr(tb.ID),
		Items:   []order.ItemRequest{{ProductID: uptr(42), Quantity: 1}},
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.True(t, tableAvailable(t, db, tb.ID))
	assert.Zero(t, countOrders(t, db))

	var n int64
	require.NoError(t, db.Model(&order.Item{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreate_ConcurrentClaimsOneTable(t *testing.T) {
	db := testutil.FileDB(t)
	svc := order.NewService(order.NewGormRepo(db), &recorder{}, observability.Noop())
	u := testutil.User(t, db, "maria")
	tb := testutil.Table(t, db, 1, 2, true)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok, clash int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), order.CreateRequest{UserID: u.ID, TableID: uptr(tb.ID)})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, apperr.ErrConflict):
				clash++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, clash)
	assert.EqualValues(t, 1, countOrders(t, db))
}

var seq int

func createWithItems(t *testing.T, db *gorm.DB, svc *order.Service, tableID *uint, items ...order.ItemRequest) *order.Response {
	t.Helper()
	seq++
	u := testutil.User(t, db, fmt.Sprintf("staff%d", seq))
	resp, err := svc.Create(context.Background(), order.CreateRequest{UserID: u.ID, TableID: tableID, Items: items})
	require.NoError(t, err)
	return resp
}

func TestUpdateQuantities(t *testing.T) {
	db, svc, _ := setup(t)
	resp := createWithItems(t, db, svc, nil,
		order.ItemRequest{Quantity: 1, UnitPrice: dec("10.00")},
		order.ItemRequest{Quantity: 1, UnitPrice: dec("4.00")},
	)

	o, err := svc.UpdateQuantities(context.Background(), resp.ID, []order.QuantityUpdate{
		{ItemID: resp.Items[0].ID, Quantity: 3},
		{ItemID: resp.Items[1].ID, Quantity: 5},
	})
	require.NoError(t, err)
	assertDec(t, "50.00", o.Total)

	got, err := svc.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assertDec(t, "30.00", got.Items[0].Subtotal)
	assertDec(t, "20.00", got.Items[1].Subtotal)
	assertDec(t, "50.00", got.Total)
}

func TestUpdateQuantities_OmittedItemsStillCount(t *testing.T) {
	db, svc, _ := setup(t)
	resp := createWithItems(t, db, svc, nil,
		order.ItemRequest{Quantity: 1, UnitPrice: dec("10.00")},
		order.ItemRequest{Quantity: 2, UnitPrice: dec("1.50")},
	)

	o, err := svc.UpdateQuantities(context.Background(), resp.ID, []order.QuantityUpdate{
		{ItemID: resp.Items[0].ID, Quantity: 2},
	})
	require.NoError(t, err)
	assertDec(t, "23.00", o.Total)
}

func TestUpdateQuantities_Errors(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	a := createWithItems(t, db, svc, nil, order.ItemRequest{Quantity: 1, UnitPrice: dec("10.00")})
	b := createWithItems(t, db, svc, nil, order.ItemRequest{Quantity: 1, UnitPrice: dec("7.00")})

	_, err := svc.UpdateQuantities(ctx, 999, nil)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = svc.UpdateQuantities(ctx, a.ID, []order.QuantityUpdate{{ItemID: b.Items[0].ID, Quantity: 2}})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = svc.UpdateQuantities(ctx, a.ID, []order.QuantityUpdate{{ItemID: a.Items[0].ID, Quantity: 0}})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestCompleteAndCancelReleaseTable(t *testing.T) {
	db, svc, rec := setup(t)
	ctx := context.Background()
	t1 := testutil.Table(t, db, 1, 2, true)
	t2 := testutil.Table(t, db, 2, 2, true)

	a := createWithItems(t, db, svc, uptr(t1.ID))
	b := createWithItems(t, db, svc, uptr(t2.ID))

	o, err := svc.Complete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, o.Status)
	assert.True(t, tableAvailable(t, db, t1.ID))

	o, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, o.Status)
	assert.True(t, tableAvailable(t, db, t2.ID))

	o, err = svc.Cancel(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, o.Status)
	assert.True(t, tableAvailable(t, db, t1.ID))

	_, err = svc.Complete(ctx, 999)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.Equal(t, []string{
		order.EventCreated, order.EventCreated,
		order.EventCompleted, order.EventCancelled, order.EventCancelled,
	}, rec.keys)
}

func TestFinishDoesNotFreeTableOfLaterOrder(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	tb := testutil.Table(t, db, 3, 4, true)

	first := createWithItems(t, db, svc, uptr(tb.ID))
	_, err := svc.Complete(ctx, first.ID)
	require.NoError(t, err)

	second := createWithItems(t, db, svc, uptr(tb.ID))
	require.False(t, tableAvailable(t, db, tb.ID))

	o, err := svc.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, o.Status)
	assert.False(t, tableAvailable(t, db, tb.ID), "table is held by order %d", second.ID)

	_, err = svc.Complete(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, tableAvailable(t, db, tb.ID))
}

func TestCreate_LogsTableID(t *testing.T) {
	db, svc, _ := setup(t)
	u := testutil.User(t, db, "maria")
	tb := testutil.Table(t, db, 11, 2, true)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := svc.Create(context.Background(), order.CreateRequest{UserID: u.ID, TableID: uptr(tb.ID)})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), fmt.Sprintf("table_id=%d", tb.ID))
	assert.NotContains(t, buf.String(), "table_id=0x")
}

func TestCreate_FinalStatusDoesNotOccupyTable(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	u := testutil.User(t, db, "maria")
	tb := testutil.Table(t, db, 8, 2, true)

	for _, status := range []string{order.StatusCompleted, order.StatusCancelled} {
		resp, err := svc.Create(ctx, order.CreateRequest{UserID: u.ID, TableID: uptr(tb.ID), Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, resp.Status)
		require.NotNil(t, resp.TableID)
		assert.Equal(t, tb.ID, *resp.TableID)
		assert.True(t, tableAvailable(t, db, tb.ID))

		_, err = svc.Cancel(ctx, resp.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, resp.ID))
		assert.True(t, tableAvailable(t, db, tb.ID))
	}

	_, err := svc.Create(ctx, order.CreateRequest{UserID: u.ID, TableID: uptr(999), Status: order.StatusCompleted})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	held := testutil.Table(t, db, 10, 2, false)
	_, err = svc.Create(ctx, order.CreateRequest{UserID: u.ID, TableID: uptr(held.ID), Status: order.StatusCompleted})
	require.NoError(t, err)
	assert.False(t, tableAvailable(t, db, held.ID))
}

func TestAssignClientCompletes(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	tb := testutil.Table(t, db, 9, 4, true)
	c := testutil.Client(t, db, "Amina", "Benali")
	o := createWithItems(t, db, svc, uptr(tb.ID), order.ItemRequest{Quantity: 1, UnitPrice: dec("12.00")})

	_, err := svc.AssignClient(ctx, o.ID, 999)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	resp, err := svc.AssignClient(ctx, o.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, resp.Status)
	require.NotNil(t, resp.ClientID)
	assert.Equal(t, c.ID, *resp.ClientID)
	assert.True(t, tableAvailable(t, db, tb.ID))
}

func TestReplace(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	p := testutil.Product(t, db, "Tiramisu", "6.00")
	o := createWithItems(t, db, svc, nil,
		order.ItemRequest{Quantity: 1, UnitPrice: dec("10.00")},
		order.ItemRequest{Quantity: 1, UnitPrice: dec("4.00")},
	)

	desc := "birthday"
	resp, err := svc.Replace(ctx, o.ID, order.ReplaceRequest{
		Description: &desc,
		Items:       []order.ItemRequest{{ProductID: uptr(p.ID), Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "birthday", resp.Description)
	require.Len(t, resp.Items, 1)
	assertDec(t, "12.00", resp.Total)

	var n int64
	require.NoError(t, db.Model(&order.Item{}).Where("order_id = ?", o.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	_, err = svc.Replace(ctx, o.ID, order.ReplaceRequest{Status: "NOPE"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestDelete(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	tb := testutil.Table(t, db, 5, 2, true)
	m := testutil.Method(t, db, "CASH", "Cash")

	paid := createWithItems(t, db, svc, nil, order.ItemRequest{Quantity: 1, UnitPrice: dec("3.00")})
	require.NoError(t, db.Create(&payment.Payment{
		OrderID: paid.ID, MethodID: m.ID, Amount: decimal.RequireFromString("3.00"),
		Status: payment.StatusCompleted, Timestamp: time.Now(),
	}).Error)
	assert.True(t, errors.Is(svc.Delete(ctx, paid.ID), apperr.ErrConflict))

	open := createWithItems(t, db, svc, uptr(tb.ID), order.ItemRequest{Quantity: 1, UnitPrice: dec("3.00")})
	require.False(t, tableAvailable(t, db, tb.ID))
	require.NoError(t, svc.Delete(ctx, open.ID))
	assert.True(t, tableAvailable(t, db, tb.ID))

	_, err := svc.Get(ctx, open.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(ctx, open.ID), apperr.ErrNotFound))
}

func TestByClientDateRange(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	c := testutil.Client(t, db, "Amina", "Benali")
	u := testutil.User(t, db, "maria")

	stamp := func(at time.Time) {
		resp, err := svc.Create(ctx, order.CreateRequest{UserID: u.ID, ClientID: uptr(c.ID)})
		require.NoError(t, err)
		require.NoError(t, db.Model(&order.Order{}).Where("id = ?", resp.ID).Update("created_at", at.UTC()).Error)
	}
	stamp(time.Date(2025, 7, 31, 23, 0, 0, 0, time.Local))
	stamp(time.Date(2025, 8, 1, 9, 0, 0, 0, time.Local))
	stamp(time.Date(2025, 8, 31, 22, 0, 0, 0, time.Local))
	stamp(time.Date(2025, 9, 1, 0, 30, 0, 0, time.Local))

	all, err := svc.ByClient(ctx, c.ID, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	aug, err := svc.ByClient(ctx, c.ID, "2025-08-01", "2025-08-31")
	require.NoError(t, err)
	assert.Len(t, aug, 2)

	_, err = svc.ByClient(ctx, c.ID, "08/01/2025", "")
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestListByStatusAndUser(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()
	a := createWithItems(t, db, svc, nil)
	b := createWithItems(t, db, svc, nil)
	_, err := svc.Complete(ctx, b.ID)
	require.NoError(t, err)

	ongoing, err := svc.List(ctx, order.Filter{Status: order.StatusOngoing})
	require.NoError(t, err)
	require.Len(t, ongoing, 1)
	assert.Equal(t, a.ID, ongoing[0].ID)

	mine, err := svc.List(ctx, order.Filter{UserID: b.UserID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, b.ID, mine[0].ID)

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Len(t, today, 2)
}
