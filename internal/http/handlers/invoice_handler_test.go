package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/shadewithin/go-invoice-backend/internal/domain"
	"github.com/shadewithin/go-invoice-backend/internal/repo"
	"github.com/shadewithin/go-invoice-backend/internal/services"
)

func TestCreateInvoice_RedirectsToList(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.seedCustomer(t, "Acme", "billing@acme.test")

	w := env.postForm(http.MethodPost, "/invoices", url.Values{
		"customerId": {c.ID},
		"amount":     {"15.50"},
		"status":     {"pending"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != services.InvoicesPath {
		t.Fatalf("Location = %q", loc)
	}

	n, err := repo.CountInvoices(context.Background(), env.db, "")
	if err != nil || n != 1 {
		t.Fatalf("persisted count = %d, %v", n, err)
	}
}

func TestCreateInvoice_ValidationFailure_Is422(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.postForm(http.MethodPost, "/invoices", url.Values{
		"amount": {"-5"},
		"status": {"unknown"},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var state services.State
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Message != services.MsgMissingFields {
		t.Fatalf("message = %q", state.Message)
	}
	for _, field := range []string{"customerId", "amount", "status"} {
		if len(state.Errors[field]) == 0 {
			t.Fatalf("missing field errors for %q: %+v", field, state.Errors)
		}
	}

	n, err := repo.CountInvoices(context.Background(), env.db, "")
	if err != nil || n != 0 {
		t.Fatalf("nothing should persist, count = %d, %v", n, err)
	}
}

func TestUpdateInvoice_RedirectsAndPersists(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.seedCustomer(t, "Acme", "billing@acme.test")
	inv := env.seedInvoice(t, c.ID, 1000, domain.StatusPending, "2024-05-01")

	w := env.postForm(http.MethodPut, "/invoices/"+inv.ID, url.Values{
		"customerId": {c.ID},
		"amount":     {"20.00"},
		"status":     {"paid"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	got, err := repo.GetInvoice(context.Background(), env.db, inv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Amount != 2000 || got.Status != domain.StatusPaid || got.Date != "2024-05-01" {
		t.Fatalf("got %+v", got)
	}
}

func TestDeleteInvoice_ReturnsConfirmation(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.seedCustomer(t, "Acme", "billing@acme.test")
	inv := env.seedInvoice(t, c.ID, 1000, domain.StatusPaid, "2024-05-01")

	w := env.postForm(http.MethodDelete, "/invoices/"+inv.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var state services.State
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Message != services.MsgDeleted {
		t.Fatalf("message = %q", state.Message)
	}

	// Repeat delete is indistinguishable from the first.
	w = env.postForm(http.MethodDelete, "/invoices/"+inv.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat status = %d", w.Code)
	}
}

func TestListInvoices_CachedUntilMutation(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.seedCustomer(t, "Acme", "billing@acme.test")
	env.seedInvoice(t, c.ID, 155099, domain.StatusPaid, "2024-05-01")

	w := env.get("/invoices?query=&page=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp listInvoicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].AmountFormatted != "$1,550.99" {
		t.Fatalf("items = %+v", resp.Items)
	}
	if env.views.Len() != 1 {
		t.Fatalf("page should be cached, len = %d", env.views.Len())
	}

	// A successful mutation drops every cached list variant.
	w = env.postForm(http.MethodPost, "/invoices", url.Values{
		"customerId": {c.ID},
		"amount":     {"10.00"},
		"status":     {"pending"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("create status = %d", w.Code)
	}
	if env.views.Len() != 0 {
		t.Fatalf("cache should be invalidated, len = %d", env.views.Len())
	}

	w = env.get("/invoices")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp = listInvoicesResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("items = %+v", resp.Items)
	}
}

func TestGetInvoice_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/invoices/missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeNotFound {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestDashboard_Summary(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.seedCustomer(t, "Acme", "billing@acme.test")
	env.seedInvoice(t, c.ID, 1000, domain.StatusPending, "2024-05-01")
	env.seedInvoice(t, c.ID, 2500, domain.StatusPaid, "2024-05-02")

	w := env.get("/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp summaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.InvoiceCount != 2 || resp.CustomerCount != 1 {
		t.Fatalf("counts = %+v", resp)
	}
	if resp.PaidCents != 2500 || resp.PaidFormatted != "$25.00" {
		t.Fatalf("paid = %+v", resp)
	}
	if resp.PendingCents != 1000 || resp.PendingFormatted != "$10.00" {
		t.Fatalf("pending = %+v", resp)
	}
}

func TestListCustomers_OrderedByName(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCustomer(t, "Globex", "pay@globex.test")
	env.seedCustomer(t, "Acme", "billing@acme.test")

	w := env.get("/customers")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var customers []domain.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &customers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(customers) != 2 || customers[0].Name != "Acme" {
		t.Fatalf("customers = %+v", customers)
	}
}
