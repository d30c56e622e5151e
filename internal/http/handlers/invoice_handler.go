// Invoice HTTP handlers.
//
// This file exposes the REST surface of the invoice mutation pipeline:
//
//   - POST   /invoices      (create)
//   - PUT    /invoices/:id  (update)
//   - DELETE /invoices/:id  (delete)
//   - GET    /invoices      (filtered, paginated list; served via view cache)
//   - GET    /invoices/:id  (single fetch, edit-form backing)
//
// Mutation handlers are transport-thin: they parse the submitted form into
// the raw Values mapping (preserving the absent-vs-empty distinction) and
// hand it to the orchestrator, then render the tagged result. Successful
// create/update responses are 303 redirects to the invoice list; only
// failure paths carry a body.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shadewithin/go-invoice-backend/internal/forms"
	"github.com/shadewithin/go-invoice-backend/internal/repo"
	"github.com/shadewithin/go-invoice-backend/internal/services"
	"github.com/shadewithin/go-invoice-backend/internal/utils"
)

// formValues parses the request body as a form submission into the raw
// field mapping. Fields that were not submitted stay absent.
func formValues(c *gin.Context) (forms.Values, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return forms.FromURLValues(c.Request.PostForm), nil
}

// CreateInvoice runs the create pipeline on the submitted form.
func (h *Handlers) CreateInvoice(c *gin.Context) {
	form, err := formValues(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "malformed form body")
		return
	}
	renderResult(c, h.invSvc.Create(c.Request.Context(), form))
}

// UpdateInvoice runs the update pipeline against the invoice in the route.
func (h *Handlers) UpdateInvoice(c *gin.Context) {
	form, err := formValues(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "malformed form body")
		return
	}
	renderResult(c, h.invSvc.Update(c.Request.Context(), c.Param("id"), form))
}

// DeleteInvoice runs the delete pipeline. Unlike create/update this always
// returns synchronously; a repeat delete is indistinguishable from the first.
func (h *Handlers) DeleteInvoice(c *gin.Context) {
	renderResult(c, h.invSvc.Delete(c.Request.Context(), c.Param("id")))
}

// invoiceListItem is one row of the list response: the joined view row plus
// the display-formatted amount.
type invoiceListItem struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ImageURL        string `json:"image_url"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	Status          string `json:"status"`
	Date            string `json:"date"`
}

// listInvoicesResponse is the paginated list payload.
type listInvoicesResponse struct {
	Items      []invoiceListItem `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// listCacheKey names the cached rendering of one list page under the
// invoice list view path, so mutations invalidate every page and filter
// variant at once.
func listCacheKey(query string, page int) string {
	return services.InvoicesPath + "?query=" + url.QueryEscape(query) + "&page=" + strconv.Itoa(page)
}

// ListInvoices serves the filtered, paginated invoice list. Rendered pages
// are cached by view path until the next mutation invalidates them.
func (h *Handlers) ListInvoices(c *gin.Context) {
	query := c.Query("query")
	page := utils.AtoiDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}

	key := listCacheKey(query, page)
	if body, hit := h.views.Get(key); hit {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	rows, pages, err := h.invSvc.List(c.Request.Context(), query, page)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list invoices")
		return
	}

	resp := listInvoicesResponse{
		Items:      make([]invoiceListItem, 0, len(rows)),
		Page:       page,
		TotalPages: pages,
	}
	for _, r := range rows {
		resp.Items = append(resp.Items, invoiceListItem{
			ID:              r.ID,
			CustomerID:      r.CustomerID,
			Name:            r.Name,
			Email:           r.Email,
			ImageURL:        r.ImageURL,
			Amount:          r.Amount,
			AmountFormatted: utils.FormatCents(r.Amount),
			Status:          r.Status,
			Date:            r.Date,
		})
	}

	body, err := json.Marshal(resp)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not encode invoices")
		return
	}
	h.views.Put(key, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetInvoice fetches a single invoice (amount in minor units) for the edit
// form.
func (h *Handlers) GetInvoice(c *gin.Context) {
	inv, err := h.invSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "invoice not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load invoice")
		return
	}
	ok(c, http.StatusOK, inv)
}
