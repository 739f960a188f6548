package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	"github.com/anonymous-namo-1/golden-era/pkg/enums"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

type memoryOrders struct {
	orders []models.Order
}

func (m *memoryOrders) Create(_ context.Context, order models.Order) error {
	m.orders = append(m.orders, order)
	return nil
}

func (m *memoryOrders) ListByUser(_ context.Context, userID string, _ pagination.Params) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func newTestService(t *testing.T, repo OrderRepository, buf *bytes.Buffer) *service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: buf})
	svc, err := NewService(repo, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	s := svc.(*service)
	s.newID = func() string { return "order-1" }
	s.now = func() time.Time { return time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC) }
	return s
}

func validInput() CreateInput {
	return CreateInput{
		Items: []map[string]any{
			{"productId": "p1", "price": 30000.0, "quantity": 2.0, "engraving": "A+R"},
			{"productId": "p2", "price": 1500.5},
		},
		Total:         61500.5,
		Address:       map[string]string{"line1": "12 MG Road", "city": "Bengaluru", "pincode": "560001"},
		PaymentMethod: "cod",
	}
}

func TestCreateStoresOrderVerbatim(t *testing.T) {
	t.Parallel()

	repo := &memoryOrders{}
	var buf bytes.Buffer
	svc := newTestService(t, repo, &buf)

	order, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.ID != "order-1" || order.UserID != models.GuestUserID || order.Status != enums.OrderStatusPending {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.CreatedAt.String() != "2024-12-24T18:00:00Z" {
		t.Fatalf("unexpected createdAt %q", order.CreatedAt.String())
	}
	if len(repo.orders) != 1 || repo.orders[0].Items[0]["engraving"] != "A+R" {
		t.Fatalf("items were not stored verbatim: %+v", repo.orders)
	}
	if strings.Contains(buf.String(), "order.total_mismatch") {
		t.Fatalf("unexpected mismatch warning: %s", buf.String())
	}
}

func TestCreateWarnsOnTotalMismatchButAccepts(t *testing.T) {
	t.Parallel()

	repo := &memoryOrders{}
	var buf bytes.Buffer
	svc := newTestService(t, repo, &buf)

	input := validInput()
	input.Total = 100
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(repo.orders) != 1 {
		t.Fatal("mismatched order should still be stored")
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "order.total_mismatch" || entry["line_total"] != "61500.5" || entry["level"] != "warn" {
		t.Fatalf("unexpected warning entry: %v", entry)
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	repo := &memoryOrders{}
	svc := newTestService(t, repo, &bytes.Buffer{})

	_, err := svc.Create(context.Background(), CreateInput{Total: 10})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details := typed.Details().(map[string]string)
	for _, field := range []string{"items", "address", "paymentMethod"} {
		if details[field] != "is required" {
			t.Fatalf("expected %s to be reported, got %v", field, details)
		}
	}
	if len(repo.orders) != 0 {
		t.Fatal("invalid order reached the store")
	}
}

func TestListByUser(t *testing.T) {
	t.Parallel()

	repo := &memoryOrders{orders: []models.Order{
		{ID: "o1", UserID: "u1"},
		{ID: "o2", UserID: "guest"},
	}}
	svc := newTestService(t, repo, &bytes.Buffer{})
	page := pagination.Params{Page: 1, Limit: pagination.DefaultListLimit}

	orders, err := svc.ListByUser(context.Background(), "u1", page)
	if err != nil || len(orders) != 1 || orders[0].ID != "o1" {
		t.Fatalf("unexpected orders %+v err=%v", orders, err)
	}
	guest, _ := svc.ListByUser(context.Background(), "", page)
	if len(guest) != 1 || guest[0].ID != "o2" {
		t.Fatalf("expected guest order, got %+v", guest)
	}
	none, _ := svc.ListByUser(context.Background(), "nobody", page)
	if none == nil {
		t.Fatal("expected empty non-nil list")
	}
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		items   []map[string]any
		total   float64
		matches bool
		priced  int
	}{
		{"exact", []map[string]any{{"price": 0.1, "quantity": 3.0}}, 0.3, true, 1},
		{"default quantity", []map[string]any{{"price": 250.0}}, 250, true, 1},
		{"numeric strings", []map[string]any{{"price": "19.99", "quantity": "2"}}, 39.98, true, 1},
		{"mismatch", []map[string]any{{"price": 10.0, "quantity": 2.0}}, 25, false, 1},
		{"unpriced only", []map[string]any{{"name": "gift box"}}, 999, true, 0},
		{"empty", nil, 0, true, 0},
	}
	for _, tc := range cases {
		rec := Reconcile(tc.items, tc.total)
		if rec.Matches() != tc.matches || rec.Priced != tc.priced {
			t.Fatalf("%s: matches=%v priced=%d (line total %s)", tc.name, rec.Matches(), rec.Priced, rec.LineTotal)
		}
	}
}
