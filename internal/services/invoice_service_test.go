package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/domain"
	"github.com/shadewithin/go-invoice-backend/internal/forms"
)

// fakeGateway records pipeline calls and optionally fails them, standing in
// for the persistence gateway.
type fakeGateway struct {
	createErr error
	updateErr error
	deleteErr error

	created []domain.Invoice
	updated []string
	deleted []string
}

func (f *fakeGateway) CreateInvoice(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *inv)
	return nil
}

func (f *fakeGateway) UpdateInvoice(ctx context.Context, db *gorm.DB, id, customerID string, amount int64, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeGateway) DeleteInvoice(ctx context.Context, db *gorm.DB, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeViews records invalidation signals.
type fakeViews struct {
	paths []string
}

func (f *fakeViews) Invalidate(path string) { f.paths = append(f.paths, path) }

func newTestService(gw *fakeGateway, views *fakeViews) *InvoiceService {
	svc := NewInvoiceService(nil, gw, views)
	svc.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func validForm() forms.Values {
	return forms.Values{
		forms.FieldCustomerID: "c1",
		forms.FieldAmount:     "15.50",
		forms.FieldStatus:     "pending",
	}
}

func TestInvoice_Create_Success(t *testing.T) {
	gw := &fakeGateway{}
	views := &fakeViews{}
	svc := newTestService(gw, views)

	res := svc.Create(context.Background(), validForm())

	if !res.Terminal() || res.RedirectTo != InvoicesPath {
		t.Fatalf("expected terminal redirect to %s, got %+v", InvoicesPath, res)
	}
	if len(gw.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(gw.created))
	}
	inv := gw.created[0]
	if inv.ID == "" {
		t.Fatal("expected a fresh id")
	}
	if inv.Amount != 1550 {
		t.Fatalf("amount = %d; want 1550", inv.Amount)
	}
	if inv.Status != domain.StatusPending {
		t.Fatalf("status = %q", inv.Status)
	}
	if inv.Date != "2024-05-01" {
		t.Fatalf("date = %q; want 2024-05-01", inv.Date)
	}
	if len(views.paths) != 1 || views.paths[0] != InvoicesPath {
		t.Fatalf("invalidations = %v", views.paths)
	}
}

func TestInvoice_Create_ValidationFailure_NoPersistence(t *testing.T) {
	gw := &fakeGateway{}
	views := &fakeViews{}
	svc := newTestService(gw, views)

	form := validForm()
	form[forms.FieldAmount] = "-3"
	res := svc.Create(context.Background(), form)

	if res.Terminal() || !res.Failed {
		t.Fatalf("expected non-terminal failure, got %+v", res)
	}
	if res.State.Message != MsgMissingFields {
		t.Fatalf("message = %q", res.State.Message)
	}
	if len(res.State.Errors[forms.FieldAmount]) != 1 {
		t.Fatalf("errors = %v", res.State.Errors)
	}
	if len(gw.created) != 0 {
		t.Fatal("persistence must not be called on validation failure")
	}
	if len(views.paths) != 0 {
		t.Fatal("cache must not be invalidated on validation failure")
	}
}

func TestInvoice_Create_GatewayFault(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("disk on fire")}
	views := &fakeViews{}
	svc := newTestService(gw, views)

	res := svc.Create(context.Background(), validForm())

	if res.Terminal() {
		t.Fatal("gateway fault must not redirect")
	}
	if !res.Failed || res.State.Message != MsgCreateFailed {
		t.Fatalf("got %+v", res)
	}
	if len(res.State.Errors) != 0 {
		t.Fatalf("gateway fault carries no field errors: %v", res.State.Errors)
	}
	if len(views.paths) != 0 {
		t.Fatal("cache must not be invalidated on gateway fault")
	}
}

func TestInvoice_Update_Success(t *testing.T) {
	gw := &fakeGateway{}
	views := &fakeViews{}
	svc := newTestService(gw, views)

	res := svc.Update(context.Background(), "inv-1", validForm())

	if !res.Terminal() || res.RedirectTo != InvoicesPath {
		t.Fatalf("expected redirect, got %+v", res)
	}
	if len(gw.updated) != 1 || gw.updated[0] != "inv-1" {
		t.Fatalf("updated = %v", gw.updated)
	}
	if len(views.paths) != 1 {
		t.Fatalf("invalidations = %v", views.paths)
	}
}

func TestInvoice_Update_BadStatus_ReusesCreateMessage(t *testing.T) {
	gw := &fakeGateway{}
	svc := newTestService(gw, &fakeViews{})

	form := validForm()
	form[forms.FieldStatus] = "bad-value"
	res := svc.Update(context.Background(), "inv-1", form)

	if !res.Failed {
		t.Fatalf("expected failure, got %+v", res)
	}
	// The update path keeps the create wording.
	if res.State.Message != "Missing Fields. Failed to Create Invoice." {
		t.Fatalf("message = %q", res.State.Message)
	}
	if len(res.State.Errors[forms.FieldStatus]) != 1 {
		t.Fatalf("errors = %v", res.State.Errors)
	}
	if len(gw.updated) != 0 {
		t.Fatal("persistence must not be called")
	}
}

func TestInvoice_Update_GatewayFault(t *testing.T) {
	gw := &fakeGateway{updateErr: errors.New("nope")}
	views := &fakeViews{}
	svc := newTestService(gw, views)

	res := svc.Update(context.Background(), "inv-1", validForm())
	if !res.Failed || res.State.Message != MsgUpdateFailed {
		t.Fatalf("got %+v", res)
	}
	if len(views.paths) != 0 {
		t.Fatal("no invalidation on fault")
	}
}

func TestInvoice_Delete_Success(t *testing.T) {
	gw := &fakeGateway{}
	views := &fakeViews{}
	svc := newTestService(gw, views)

	res := svc.Delete(context.Background(), "inv-9")

	if res.Terminal() {
		t.Fatal("delete never redirects")
	}
	if res.Failed {
		t.Fatalf("got %+v", res)
	}
	if res.State.Message != MsgDeleted {
		t.Fatalf("message = %q", res.State.Message)
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "inv-9" {
		t.Fatalf("deleted = %v", gw.deleted)
	}
	if len(views.paths) != 1 || views.paths[0] != InvoicesPath {
		t.Fatalf("invalidations = %v", views.paths)
	}
}

func TestInvoice_Delete_GatewayFault(t *testing.T) {
	gw := &fakeGateway{deleteErr: errors.New("locked")}
	views := &fakeViews{}
	svc := newTestService(gw, views)

	res := svc.Delete(context.Background(), "inv-9")
	if !res.Failed || res.State.Message != MsgDeleteFailed {
		t.Fatalf("got %+v", res)
	}
	if len(views.paths) != 0 {
		t.Fatal("no invalidation on fault")
	}
}
