// Package services – DashboardService
//
// Read-side queries behind the dashboard overview and the invoice form's
// customer selector. These are plain reads with no pipeline semantics, so
// the service talks to the repository free functions directly.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/domain"
	"github.com/shadewithin/go-invoice-backend/internal/repo"
)

// Summary aggregates the dashboard overview figures. Amount totals are in
// minor units; display formatting happens at the transport layer.
type Summary struct {
	InvoiceCount  int64             `json:"invoice_count"`
	CustomerCount int64             `json:"customer_count"`
	Totals        repo.StatusTotals `json:"totals"`
}

// DashboardService serves the read-only overview queries.
type DashboardService struct {
	// DB is the GORM handle used for all queries.
	DB *gorm.DB
}

// Summary returns invoice/customer counts and the paid/pending amount totals.
func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	var err error

	if sum.InvoiceCount, err = repo.CountInvoices(ctx, s.DB, ""); err != nil {
		return sum, err
	}
	if sum.CustomerCount, err = repo.CountCustomers(ctx, s.DB); err != nil {
		return sum, err
	}
	sum.Totals, err = repo.SumInvoicesByStatus(ctx, s.DB)
	return sum, err
}

// Customers lists all customers for the invoice form selector.
func (s *DashboardService) Customers(ctx context.Context) ([]domain.Customer, error) {
	return repo.ListCustomers(ctx, s.DB)
}
