package handlers

import (
	"github.com/shadewithin/go-invoice-backend/internal/cache"
	"github.com/shadewithin/go-invoice-backend/internal/services"
)

// Handlers bundles the application services behind the HTTP endpoints.
type Handlers struct {
	invSvc  *services.InvoiceService
	authSvc *services.AuthService
	dashSvc *services.DashboardService
	views   *cache.Store
}

// New constructs the handler set. views backs the cached invoice list reads;
// the mutation pipeline invalidates it through the invoice service.
func New(inv *services.InvoiceService, auth *services.AuthService, dash *services.DashboardService, views *cache.Store) *Handlers {
	return &Handlers{invSvc: inv, authSvc: auth, dashSvc: dash, views: views}
}
