// Package services – InvoiceService
//
// This file implements the InvoiceService, the orchestrator of the validated
// mutation pipeline: schema validation → domain coercion → persistence →
// cache invalidation → redirect or structured error. Each entry point owns
// one request's lifecycle and holds no state across invocations; concurrent
// writes against the same invoice are last-write-wins at the gateway.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/cache"
	"github.com/shadewithin/go-invoice-backend/internal/domain"
	"github.com/shadewithin/go-invoice-backend/internal/forms"
	"github.com/shadewithin/go-invoice-backend/internal/repo"
)

// tracer spans the mutation operations so gateway latency shows up next to
// the HTTP spans from otelgin.
var tracer trace.Tracer = otel.Tracer("github.com/shadewithin/go-invoice-backend/internal/services")

// InvoiceRepo defines the persistence gateway contract required by
// InvoiceService. Implementations execute parameterized writes only; the
// service never retries or caches them.
type InvoiceRepo interface {
	// CreateInvoice inserts a fully populated invoice row.
	CreateInvoice(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error

	// UpdateInvoice updates the mutable columns of the invoice identified by
	// id. Zero matched rows is success.
	UpdateInvoice(ctx context.Context, db *gorm.DB, id, customerID string, amount int64, status string) error

	// DeleteInvoice removes the invoice identified by id. A repeat delete
	// affects zero rows and is success.
	DeleteInvoice(ctx context.Context, db *gorm.DB, id string) error
}

// InvoiceService orchestrates invoice mutations and backs the invoice list
// queries. All collaborators are injected so the pipeline is testable with a
// fake gateway.
type InvoiceService struct {
	// DB is the GORM handle passed through to the repository.
	DB *gorm.DB
	// Repo is the persistence gateway.
	Repo InvoiceRepo
	// Views receives the invalidation signal after every committed mutation.
	Views cache.Invalidator
	// Now is the pipeline's execution clock, used for the create date stamp.
	Now func() time.Time
	// PageSize caps the invoice list page length.
	PageSize int
}

// NewInvoiceService constructs an InvoiceService with the real clock and the
// list page size the dashboard renders.
func NewInvoiceService(db *gorm.DB, r InvoiceRepo, views cache.Invalidator) *InvoiceService {
	return &InvoiceService{
		DB:       db,
		Repo:     r,
		Views:    views,
		Now:      time.Now,
		PageSize: 6,
	}
}

// Create validates and persists a new invoice from raw form data.
//
// On validation failure it returns a non-terminal failure carrying the full
// per-field error map; the gateway is never called and no partial state
// leaks. On a gateway fault it returns the generic create failure message.
// On success it invalidates the invoice list view and returns a terminal
// redirect to it.
func (s *InvoiceService) Create(ctx context.Context, form forms.Values) Result {
	ctx, span := tracer.Start(ctx, "invoice.create")
	defer span.End()

	out := forms.ParseInvoice(form)
	if !out.OK() {
		return Failure(State{Errors: out.FieldErrors, Message: MsgMissingFields})
	}

	inv := &domain.Invoice{
		ID:         uuid.NewString(),
		CustomerID: out.Input.CustomerID,
		Amount:     forms.Cents(out.Input.Amount),
		Status:     out.Input.Status,
		Date:       forms.DateStamp(s.Now()),
	}
	if err := s.Repo.CreateInvoice(ctx, s.DB, inv); err != nil {
		log.Error().Err(err).Str("customer_id", inv.CustomerID).Msg("create invoice")
		return Failure(State{Message: MsgCreateFailed})
	}

	s.Views.Invalidate(InvoicesPath)
	return Redirect(InvoicesPath)
}

// Update validates and persists changes to the invoice identified by id.
//
// Validation reuses the create schema: all three fields stay mandatory on
// edits. The date stamp is immutable and is not touched. An id matching zero
// rows is treated as success; the failure and success tails otherwise mirror
// Create with the update wording.
func (s *InvoiceService) Update(ctx context.Context, id string, form forms.Values) Result {
	ctx, span := tracer.Start(ctx, "invoice.update")
	defer span.End()

	out := forms.ParseInvoice(form)
	if !out.OK() {
		return Failure(State{Errors: out.FieldErrors, Message: MsgMissingFields})
	}

	err := s.Repo.UpdateInvoice(ctx, s.DB, id, out.Input.CustomerID, forms.Cents(out.Input.Amount), out.Input.Status)
	if err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("update invoice")
		return Failure(State{Message: MsgUpdateFailed})
	}

	s.Views.Invalidate(InvoicesPath)
	return Redirect(InvoicesPath)
}

// Delete removes the invoice identified by id.
//
// No validation is needed beyond the identity. Deleting an id that no longer
// exists is indistinguishable from a successful delete. Both outcomes return
// synchronously: success invalidates the list view and carries the
// confirmation message, a gateway fault carries the delete failure message.
// This is the one operation kind with no terminal redirect.
func (s *InvoiceService) Delete(ctx context.Context, id string) Result {
	ctx, span := tracer.Start(ctx, "invoice.delete")
	defer span.End()

	if err := s.Repo.DeleteInvoice(ctx, s.DB, id); err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("delete invoice")
		return Failure(State{Message: MsgDeleteFailed})
	}

	s.Views.Invalidate(InvoicesPath)
	return Done(State{Message: MsgDeleted})
}

// List returns one page of the invoice list view matching the free-text
// query, along with the total page count for that query.
func (s *InvoiceService) List(ctx context.Context, query string, page int) ([]repo.InvoiceRow, int, error) {
	if page < 1 {
		page = 1
	}
	size := s.PageSize
	if size <= 0 {
		size = 6
	}

	total, err := repo.CountInvoices(ctx, s.DB, query)
	if err != nil {
		return nil, 0, err
	}
	pages := int((total + int64(size) - 1) / int64(size))

	rows, err := repo.ListInvoicesPage(ctx, s.DB, query, (page-1)*size, size)
	return rows, pages, err
}

// Get fetches a single invoice by id for the edit form.
func (s *InvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	return repo.GetInvoice(ctx, s.DB, id)
}
