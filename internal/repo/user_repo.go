// Package repo – user repository functions.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/domain"
)

// GetUserByEmail fetches the account registered under email, or ErrNotFound.
// Email comparison relies on the unique index; callers are expected to pass
// a normalized (trimmed, lowercased) address.
func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
