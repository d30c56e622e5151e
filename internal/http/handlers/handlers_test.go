package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadewithin/go-invoice-backend/internal/auth"
	"github.com/shadewithin/go-invoice-backend/internal/cache"
	"github.com/shadewithin/go-invoice-backend/internal/domain"
	"github.com/shadewithin/go-invoice-backend/internal/forms"
	"github.com/shadewithin/go-invoice-backend/internal/repo"
	"github.com/shadewithin/go-invoice-backend/internal/services"
)

func init() { gin.SetMode(gin.TestMode) }

// repoShim mirrors the router's adapter from repo free functions to the
// gateway interface.
type repoShim struct{}

func (repoShim) CreateInvoice(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return repo.CreateInvoice(ctx, db, inv)
}

func (repoShim) UpdateInvoice(ctx context.Context, db *gorm.DB, id, customerID string, amount int64, status string) error {
	return repo.UpdateInvoice(ctx, db, id, customerID, amount, status)
}

func (repoShim) DeleteInvoice(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteInvoice(ctx, db, id)
}

// fakeAuthenticator scripts the credential gate outcome for the login tests.
type fakeAuthenticator struct {
	redirect string
	err      error
}

func (f *fakeAuthenticator) SignIn(ctx context.Context, strategy string, credentials forms.Values) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.redirect, nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	views  *cache.Store
}

func newTestEnv(t *testing.T, authn auth.Authenticator) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Customer{}, &domain.Invoice{}, &domain.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	views := cache.New(time.Minute)
	if authn == nil {
		authn = &auth.CredentialsAuthenticator{DB: db, RedirectTo: "/dashboard"}
	}

	h := New(
		services.NewInvoiceService(db, repoShim{}, views),
		&services.AuthService{Auth: authn},
		&services.DashboardService{DB: db},
		views,
	)

	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/invoices", h.CreateInvoice)
	r.PUT("/invoices/:id", h.UpdateInvoice)
	r.DELETE("/invoices/:id", h.DeleteInvoice)
	r.GET("/invoices", h.ListInvoices)
	r.GET("/invoices/:id", h.GetInvoice)
	r.GET("/customers", h.ListCustomers)
	r.GET("/dashboard", h.Dashboard)

	return &testEnv{router: r, db: db, views: views}
}

func (e *testEnv) seedCustomer(t *testing.T, name, email string) *domain.Customer {
	t.Helper()
	c := &domain.Customer{ID: uuid.NewString(), Name: name, Email: email}
	if err := e.db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func (e *testEnv) seedInvoice(t *testing.T, customerID string, amount int64, status, date string) *domain.Invoice {
	t.Helper()
	inv := &domain.Invoice{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       date,
	}
	if err := e.db.Create(inv).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return inv
}

// postForm submits an application/x-www-form-urlencoded body, the shape the
// mutation endpoints consume.
func (e *testEnv) postForm(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
