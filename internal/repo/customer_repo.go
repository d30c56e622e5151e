// Package repo – customer repository functions.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/domain"
)

// ListCustomers returns all customers ordered by name, for populating the
// invoice form's customer selector.
func ListCustomers(ctx context.Context, db *gorm.DB) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := db.WithContext(ctx).Order("name").Find(&customers).Error
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, err
}

// CountCustomers returns the total number of customers.
func CountCustomers(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Customer{}).Count(&n).Error
	return n, err
}
