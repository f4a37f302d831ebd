package order

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/observability"
)

// Routing keys of published lifecycle events.
const (
	EventCreated   = "order.created"
	EventCompleted = "order.completed"
	EventCancelled = "order.cancelled"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

type Service struct {
	repo   Repository
	events Publisher
	tel    *observability.Telemetry
	now    func() time.Time
}

func NewService(repo Repository, events Publisher, tel *observability.Telemetry) *Service {
	if tel == nil {
		tel = observability.Noop()
	}
	return &Service{repo: repo, events: events, tel: tel, now: time.Now}
}

// unitPrice applies the price precedence to one requested line. A referenced
// product must exist even when an explicit price is given.
func unitPrice(ctx context.Context, repo Repository, in ItemRequest) (decimal.Decimal, error) {
	var catalog decimal.Decimal
	if in.ProductID != nil && *in.ProductID != 0 {
		p, err := repo.ProductPrice(ctx, *in.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		catalog = p
	}
	switch {
	case in.UnitPrice != nil && in.UnitPrice.IsPositive():
		return in.UnitPrice.Round(2), nil
	case in.Price != nil && in.Price.IsPositive():
		return in.Price.Round(2), nil
	default:
		return catalog.Round(2), nil
	}
}

func buildItem(ctx context.Context, repo Repository, orderID uint, in ItemRequest) (*Item, error) {
	if in.Quantity <= 0 {
		return nil, apperr.Validation("quantity must be greater than zero")
	}
	price, err := unitPrice(ctx, repo, in)
	if err != nil {
		return nil, err
	}
	it := &Item{
		OrderID:   orderID,
		Quantity:  in.Quantity,
		UnitPrice: price,
		Subtotal:  subtotal(price, in.Quantity),
		Details:   strings.TrimSpace(in.Details),
	}
	if in.ProductID != nil && *in.ProductID != 0 {
		pid := *in.ProductID
		it.ProductID = &pid
	}
	return it, nil
}

// insertItems writes every requested line and returns them with the total.
func insertItems(ctx context.Context, repo Repository, orderID uint, in []ItemRequest) ([]Item, decimal.Decimal, error) {
	items := make([]Item, 0, len(in))
	total := decimal.Zero
	for _, req := range in {
		it, err := buildItem(ctx, repo, orderID, req)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if err := repo.CreateItem(ctx, it); err != nil {
			return nil, decimal.Zero, err
		}
		items = append(items, *it)
		total = total.Add(it.Subtotal)
	}
	return items, total, nil
}

func (s *Service) publish(ctx context.Context, key string, o *Order) {
	s.tel.OrderEvent(ctx, strings.TrimPrefix(key, "order."))
	if s.events == nil {
		return
	}
	ev := Event{OrderID: o.ID, Status: o.Status, Total: o.Total, TableID: o.TableID, At: s.now().UTC()}
	if err := s.events.Publish(ctx, key, ev); err != nil {
		slog.Warn("publish order event", "key", key, "order_id", o.ID, "err", err)
	}
}

// Create opens an order in one transaction: the owner must exist, the table
// (if any) is claimed atomically, every line is priced and inserted, and the
// total is the sum of the inserted subtotals.
func (s *Service) Create(ctx context.Context, in CreateRequest) (resp *Response, err error) {
	ctx, span := s.tel.Start(ctx, "order.create", attribute.Int("order.items", len(in.Items)))
	defer func() { observability.End(span, err) }()

	if in.UserID == 0 {
		return nil, apperr.Validation("user_id is required")
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = StatusOngoing
	}
	if !knownStatus(status) {
		return nil, apperr.Validation("unknown status %q", status)
	}

	var o Order
	var items []Item
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		ok, err := tx.UserExists(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("user %d not found", in.UserID)
		}

		if in.TableID != nil && *in.TableID != 0 {
			if err := attachTable(ctx, tx, *in.TableID, status); err != nil {
				return err
			}
			tid := *in.TableID
			o.TableID = &tid
		}

		if in.ClientID != nil && *in.ClientID != 0 {
			ok, err := tx.ClientExists(ctx, *in.ClientID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("client %d not found", *in.ClientID)
			}
			cid := *in.ClientID
			o.ClientID = &cid
		}

		o.UserID = in.UserID
		o.Status = status
		o.Description = strings.TrimSpace(in.Description)
		o.Total = decimal.Zero
		if err := tx.Create(ctx, &o); err != nil {
			return err
		}

		var total decimal.Decimal
		items, total, err = insertItems(ctx, tx, o.ID, in.Items)
		if err != nil {
			return err
		}
		o.Total = total
		return tx.Save(ctx, &o)
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{"order_id", o.ID, "status", o.Status, "total", o.Total.String()}
	if o.TableID != nil {
		attrs = append(attrs, "table_id", *o.TableID)
	}
	slog.Info("order created", attrs...)
	s.publish(ctx, EventCreated, &o)
	return newResponse(&o, items), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Response, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, ItemFilter{OrderID: id})
	if err != nil {
		return nil, err
	}
	return newResponse(o, items), nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]Order, error) {
	return s.repo.List(ctx, f)
}

// Today lists orders created since local midnight.
func (s *Service) Today(ctx context.Context) ([]Order, error) {
	now := s.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)
	return s.repo.List(ctx, Filter{From: &from, To: &to})
}

// ParseDay accepts an ISO date (2006-01-02) or an RFC3339 timestamp.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ByClient lists a client's orders, optionally bounded by from and to. Both
// bounds are inclusive calendar days when given as dates.
func (s *Service) ByClient(ctx context.Context, clientID uint, from, to string) ([]Order, error) {
	f := Filter{ClientID: clientID}
	if from != "" {
		t, err := ParseDay(from)
		if err != nil {
			return nil, err
		}
		f.From = &t
	}
	if to != "" {
		t, err := ParseDay(to)
		if err != nil {
			return nil, err
		}
		if len(to) == len("2006-01-02") {
			t = t.AddDate(0, 0, 1)
		}
		f.To = &t
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return nil, apperr.Validation("from must not be after to")
	}
	return s.repo.List(ctx, f)
}

// UpdateQuantities sets new quantities on existing lines and recomputes the
// total from every stored line of the order, including those not mentioned.
func (s *Service) UpdateQuantities(ctx context.Context, id uint, updates []QuantityUpdate) (o *Order, err error) {
	ctx, span := s.tel.Start(ctx, "order.update_quantities", attribute.Int64("order.id", int64(id)))
	defer func() { observability.End(span, err) }()

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		var err error
		if o, err = tx.GetByID(ctx, id); err != nil {
			return err
		}
		for _, u := range updates {
			it, err := tx.GetItem(ctx, u.ItemID)
			if err != nil {
				return err
			}
			if it.OrderID != id {
				return apperr.NotFound("order item %d not found in order %d", u.ItemID, id)
			}
			if u.Quantity <= 0 {
				return apperr.Validation("quantity must be greater than zero")
			}
			it.Quantity = u.Quantity
			it.Subtotal = subtotal(it.UnitPrice, u.Quantity)
			if err := tx.SaveItem(ctx, it); err != nil {
				return err
			}
		}
		total, err := tx.SumSubtotals(ctx, id)
		if err != nil {
			return err
		}
		o.Total = total
		o.UpdatedAt = s.now()
		return tx.Save(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// attachTable claims the table for an ON GOING order. An order recorded
// directly as COMPLETED or CANCELLED only references it: it never occupies it.
func attachTable(ctx context.Context, tx Repository, id uint, status string) error {
	if status == StatusOngoing {
		return tx.ClaimTable(ctx, id)
	}
	ok, err := tx.TableExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("table %d not found", id)
	}
	return nil
}

// setStatus moves o to status and frees the table it occupies. Only an
// ON GOING order occupies its table, so a later order seated there keeps it.
func setStatus(ctx context.Context, tx Repository, o *Order, status string) error {
	occupying := o.Status == StatusOngoing
	o.Status = status
	if occupying && status != StatusOngoing && o.TableID != nil {
		return tx.ReleaseTable(ctx, *o.TableID)
	}
	return nil
}

// transition is the guarded form used by Replace and AssignClient: only an
// ON GOING order can be settled there.
func transition(ctx context.Context, tx Repository, o *Order, status string) error {
	if o.Status != StatusOngoing {
		return apperr.Conflict("order %d is %s, only %s orders can be %s", o.ID, o.Status, StatusOngoing, strings.ToLower(status))
	}
	return setStatus(ctx, tx, o, status)
}

// finish sets status whatever the current one is and frees the table the
// order occupies.
func (s *Service) finish(ctx context.Context, id uint, status, event string) (o *Order, err error) {
	ctx, span := s.tel.Start(ctx, "order.finish",
		attribute.Int64("order.id", int64(id)), attribute.String("order.status", status))
	defer func() { observability.End(span, err) }()

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		var err error
		if o, err = tx.GetByID(ctx, id); err != nil {
			return err
		}
		if err := setStatus(ctx, tx, o, status); err != nil {
			return err
		}
		o.UpdatedAt = s.now()
		return tx.Save(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, event, o)
	return o, nil
}

func (s *Service) Complete(ctx context.Context, id uint) (*Order, error) {
	return s.finish(ctx, id, StatusCompleted, EventCompleted)
}

func (s *Service) Cancel(ctx context.Context, id uint) (*Order, error) {
	return s.finish(ctx, id, StatusCancelled, EventCancelled)
}

// AssignClient attaches a client and settles the order as completed.
func (s *Service) AssignClient(ctx context.Context, id, clientID uint) (*Response, error) {
	if clientID == 0 {
		return nil, apperr.Validation("client_id is required")
	}
	var o *Order
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		var err error
		if o, err = tx.GetByID(ctx, id); err != nil {
			return err
		}
		ok, err := tx.ClientExists(ctx, clientID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("client %d not found", clientID)
		}
		o.ClientID = &clientID
		if err := transition(ctx, tx, o, StatusCompleted); err != nil {
			return err
		}
		o.UpdatedAt = s.now()
		return tx.Save(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventCompleted, o)
	return s.Get(ctx, id)
}

// Replace overwrites the description, optionally moves the status through a
// valid transition, and rebuilds every line from the request.
func (s *Service) Replace(ctx context.Context, id uint, in ReplaceRequest) (*Response, error) {
	status := strings.TrimSpace(in.Status)
	if status != "" && !knownStatus(status) {
		return nil, apperr.Validation("unknown status %q", status)
	}
	var (
		o      *Order
		items  []Item
		before string
	)
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		var err error
		if o, err = tx.GetByID(ctx, id); err != nil {
			return err
		}
		before = o.Status
		if in.Description != nil {
			o.Description = strings.TrimSpace(*in.Description)
		}
		if status != "" && status != o.Status {
			if err := transition(ctx, tx, o, status); err != nil {
				return err
			}
		}
		if err := tx.DeleteItemsByOrder(ctx, id); err != nil {
			return err
		}
		var total decimal.Decimal
		if items, total, err = insertItems(ctx, tx, id, in.Items); err != nil {
			return err
		}
		o.Total = total
		o.UpdatedAt = s.now()
		return tx.Save(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	switch {
	case before == o.Status:
	case o.Status == StatusCompleted:
		s.publish(ctx, EventCompleted, o)
	case o.Status == StatusCancelled:
		s.publish(ctx, EventCancelled, o)
	}
	return newResponse(o, items), nil
}

// Delete removes an unpaid order with its lines, freeing the table it occupies.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		o, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		paid, err := tx.HasPayment(ctx, id)
		if err != nil {
			return err
		}
		if paid {
			return apperr.Conflict("cannot delete order %d: a payment references it", id)
		}
		if o.Status == StatusOngoing && o.TableID != nil {
			if err := tx.ReleaseTable(ctx, *o.TableID); err != nil {
				return err
			}
		}
		if err := tx.DeleteItemsByOrder(ctx, id); err != nil {
			return err
		}
		return tx.Delete(ctx, id)
	})
}
