package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func newReceiptNumber() string {
	return "RC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// apply validates in against the referenced order and method and copies it onto p.
// Must run inside a transaction so the one-payment-per-order check holds.
func (s *Service) apply(ctx context.Context, tx Repository, p *Payment, in Request) error {
	if in.OrderID == 0 || in.MethodID == 0 {
		return apperr.Validation("order_id and payment_method_id are required")
	}
	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusPending
	}
	if !knownStatus(status) {
		return apperr.Validation("unknown payment status %q", in.Status)
	}

	total, err := tx.OrderTotal(ctx, in.OrderID)
	if err != nil {
		return err
	}
	ok, err := tx.MethodExists(ctx, in.MethodID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("payment method %d not found", in.MethodID)
	}

	if in.OrderID != p.OrderID {
		existing, err := tx.GetBy(ctx, "order_id", in.OrderID)
		switch {
		case err == nil && existing.ID != p.ID:
			return apperr.Conflict("order %d already has payment %d", in.OrderID, existing.ID)
		case err != nil && apperr.KindOf(err) != apperr.KindNotFound:
			return err
		}
	}

	amount := total
	if in.Amount != nil {
		amount = *in.Amount
	}
	if amount.IsNegative() {
		return apperr.Validation("amount must not be negative")
	}

	p.OrderID = in.OrderID
	p.MethodID = in.MethodID
	p.Amount = amount.Round(2)
	p.Status = status
	p.TransactionID = optional(in.TransactionID)
	if r := optional(in.ReceiptNumber); r != nil {
		p.ReceiptNumber = r
	}
	if in.Timestamp != nil {
		p.Timestamp = in.Timestamp.UTC()
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Request) (*Payment, error) {
	p := &Payment{Timestamp: s.now().UTC()}
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := s.apply(ctx, tx, p, in); err != nil {
			return err
		}
		if p.ReceiptNumber == nil {
			rn := newReceiptNumber()
			p.ReceiptNumber = &rn
		}
		return tx.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id uint, in Request) (*Payment, error) {
	var p *Payment
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		var err error
		if p, err = tx.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.apply(ctx, tx, p, in); err != nil {
			return err
		}
		return tx.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("payment %d not found", id)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ByOrder(ctx context.Context, orderID uint) (*Payment, error) {
	return s.repo.GetBy(ctx, "order_id", orderID)
}

func (s *Service) ByTransaction(ctx context.Context, txID string) (*Payment, error) {
	return s.repo.GetBy(ctx, "transaction_id", txID)
}

func (s *Service) ByReceipt(ctx context.Context, number string) (*Payment, error) {
	return s.repo.GetBy(ctx, "receipt_number", number)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Payment, error) {
	if f.Status != "" {
		f.Status = strings.ToUpper(f.Status)
	}
	return s.repo.List(ctx, f)
}

var dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseBound(s string) (t time.Time, dateOnly bool, err error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, layout == "2006-01-02", nil
		}
	}
	return time.Time{}, false, apperr.Validation("invalid date-time %q", s)
}

// DateRange lists payments made between start and end, both inclusive. A
// date-only end covers the whole day.
func (s *Service) DateRange(ctx context.Context, start, end string) ([]Payment, error) {
	if start == "" || end == "" {
		return nil, apperr.Validation("start and end are required")
	}
	from, _, err := parseBound(start)
	if err != nil {
		return nil, err
	}
	to, dateOnly, err := parseBound(end)
	if err != nil {
		return nil, err
	}
	if dateOnly {
		to = to.AddDate(0, 0, 1)
	} else {
		to = to.Add(time.Nanosecond)
	}
	if !from.Before(to) {
		return nil, apperr.Validation("start must not be after end")
	}
	return s.repo.List(ctx, Filter{From: &from, To: &to})
}

// TodayRevenue sums COMPLETED payments since local midnight.
func (s *Service) TodayRevenue(ctx context.Context) (*Revenue, error) {
	now := s.now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	list, err := s.repo.List(ctx, Filter{Status: StatusCompleted, From: &since})
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, p := range list {
		total = total.Add(p.Amount)
	}
	return &Revenue{Since: since, Status: StatusCompleted, Total: total}, nil
}
