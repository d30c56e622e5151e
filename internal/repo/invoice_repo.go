// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Invoice
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition. Every user-derived value travels as a
// bound parameter; nothing is interpolated into SQL text.
//
// Error semantics:
//   - When an invoice is not found by GetInvoice, gorm.ErrRecordNotFound is
//     returned (also exported here as ErrNotFound for convenience).
//   - UpdateInvoice and DeleteInvoice intentionally do NOT treat zero matched
//     rows as an error: an update against a vanished id and a repeat delete
//     are both folded into success.
//   - On other DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated for the service layer to absorb.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/domain"
)

// ErrNotFound aliases GORM's record-not-found sentinel for callers that do
// not want to import gorm directly.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateInvoice inserts a new invoice row. The caller supplies a fully
// populated model (id, coerced amount, status, date stamp).
func CreateInvoice(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return db.WithContext(ctx).Create(inv).Error
}

// UpdateInvoice updates the mutable columns of the invoice identified by id.
// The date column is immutable after creation and is deliberately absent
// from the update set. Zero matched rows is success.
func UpdateInvoice(ctx context.Context, db *gorm.DB, id, customerID string, amount int64, status string) error {
	return db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		}).Error
}

// DeleteInvoice removes the invoice identified by id. Deleting an id that no
// longer exists affects zero rows and is success.
func DeleteInvoice(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Invoice{}).Error
}

// GetInvoice fetches a single invoice by id, or ErrNotFound if missing.
func GetInvoice(ctx context.Context, db *gorm.DB, id string) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// InvoiceRow is one row of the invoice list view: an invoice joined with its
// customer's display fields.
type InvoiceRow struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
}

// invoiceSearch applies the shared free-text filter across the joined
// invoice/customer columns. An empty query matches everything.
func invoiceSearch(db *gorm.DB, query string) *gorm.DB {
	q := db.Table("invoices").
		Joins("JOIN customers ON customers.id = invoices.customer_id")
	if query == "" {
		return q
	}
	pattern := "%" + query + "%"
	return q.Where(
		"customers.name LIKE ? OR customers.email LIKE ? OR CAST(invoices.amount AS TEXT) LIKE ? OR invoices.date LIKE ? OR invoices.status LIKE ?",
		pattern, pattern, pattern, pattern, pattern,
	)
}

// CountInvoices returns the number of invoices matching the free-text query
// (all invoices when query is empty), for pagination.
func CountInvoices(ctx context.Context, db *gorm.DB, query string) (int64, error) {
	var n int64
	err := invoiceSearch(db.WithContext(ctx), query).Count(&n).Error
	return n, err
}

// ListInvoicesPage returns one page of the invoice list view matching the
// free-text query, newest first.
func ListInvoicesPage(ctx context.Context, db *gorm.DB, query string, offset, limit int) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := invoiceSearch(db.WithContext(ctx), query).
		Select("invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date, customers.name, customers.email, customers.image_url").
		Order("invoices.date DESC, invoices.id").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if rows == nil {
		rows = []InvoiceRow{}
	}
	return rows, err
}

// StatusTotals aggregates invoice amounts (minor units) by status for the
// dashboard summary.
type StatusTotals struct {
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// SumInvoicesByStatus returns the paid and pending amount totals in a single
// aggregate query.
func SumInvoicesByStatus(ctx context.Context, db *gorm.DB) (StatusTotals, error) {
	var t StatusTotals
	err := db.WithContext(ctx).
		Table("invoices").
		Select("COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid, COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending").
		Scan(&t).Error
	return t, err
}
