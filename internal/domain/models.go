// Package domain defines the persistence models for invoices, customers, and
// users. These types are mapped with GORM and form the core data layer of the
// invoicing application.
package domain

// Invoice statuses permitted by the schema. The column check constraint
// enforces the same closed set at the database level.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice represents a billing record owned by a customer.
//
// Fields:
//   - ID: stable UUID primary key (char(36)); assigned at insert, never mutated.
//   - CustomerID: identifier of the billed customer; indexed for list queries.
//   - Amount: amount in integer minor units (cents). Currency is never stored
//     as a binary floating fraction; coercion from form input happens upstream.
//   - Status: "pending" or "paid" (enforced by DB constraint).
//   - Date: creation date stamp as an ISO-8601 calendar date (YYYY-MM-DD),
//     set once by the mutation pipeline and never updated afterwards.
type Invoice struct {
	ID         string `json:"id"          gorm:"type:char(36);primaryKey"`
	CustomerID string `json:"customer_id" gorm:"type:char(36);not null;index:idx_customer_invoices"`
	Amount     int64  `json:"amount"      gorm:"not null;check:amount > 0"`
	Status     string `json:"status"      gorm:"type:varchar(16);not null;check:status IN ('pending','paid')"`
	Date       string `json:"date"        gorm:"type:char(10);not null"`

	// Customer is the billed party. Invoices are cascade-deleted if their
	// customer is removed.
	Customer Customer `json:"-" gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Invoice.
func (Invoice) TableName() string { return "invoices" }

// Customer represents a party that can be billed. Customers are referenced by
// invoices and listed when rendering the invoice create/edit forms.
type Customer struct {
	ID       string `json:"id"        gorm:"type:char(36);primaryKey"`
	Name     string `json:"name"      gorm:"type:varchar(255);not null"`
	Email    string `json:"email"     gorm:"type:varchar(255);not null"`
	ImageURL string `json:"image_url" gorm:"type:varchar(255)"`
}

// TableName returns the database table name for Customer.
func (Customer) TableName() string { return "customers" }

// User is an account that can sign in with email and password. Password holds
// a bcrypt hash, never the plaintext credential.
type User struct {
	ID       string `json:"id"    gorm:"type:char(36);primaryKey"`
	Name     string `json:"name"  gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Password string `json:"-"     gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }
