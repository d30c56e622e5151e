// Dashboard and customer HTTP handlers: the read-side collaborators of the
// invoice forms and the overview page.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shadewithin/go-invoice-backend/internal/utils"
)

// summaryResponse is the dashboard overview payload. Amount totals carry
// both minor units and the display string.
type summaryResponse struct {
	InvoiceCount     int64  `json:"invoice_count"`
	CustomerCount    int64  `json:"customer_count"`
	PaidCents        int64  `json:"paid_cents"`
	PaidFormatted    string `json:"paid_formatted"`
	PendingCents     int64  `json:"pending_cents"`
	PendingFormatted string `json:"pending_formatted"`
}

// Dashboard serves the overview figures.
func (h *Handlers) Dashboard(c *gin.Context) {
	sum, err := h.dashSvc.Summary(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load dashboard")
		return
	}
	ok(c, http.StatusOK, summaryResponse{
		InvoiceCount:     sum.InvoiceCount,
		CustomerCount:    sum.CustomerCount,
		PaidCents:        sum.Totals.Paid,
		PaidFormatted:    utils.FormatCents(sum.Totals.Paid),
		PendingCents:     sum.Totals.Pending,
		PendingFormatted: utils.FormatCents(sum.Totals.Pending),
	})
}

// ListCustomers serves the customer selector of the invoice form.
func (h *Handlers) ListCustomers(c *gin.Context) {
	customers, err := h.dashSvc.Customers(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list customers")
		return
	}
	ok(c, http.StatusOK, customers)
}
