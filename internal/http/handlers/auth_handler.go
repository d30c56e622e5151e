// Authentication HTTP handler.
//
// POST /login submits the credential form to the credential gate. Success is
// a 303 redirect chosen by the authentication service; a classified failure
// is a 401 carrying the gate's single user-facing message. Faults outside
// the authentication taxonomy are NOT absorbed here: they surface as a 500
// through the runtime's generic error path, so infrastructure problems never
// read as bad credentials.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shadewithin/go-invoice-backend/internal/http/middleware"
)

// Login runs the credential gate on the submitted form.
func (h *Handlers) Login(c *gin.Context) {
	form, err := formValues(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "malformed form body")
		return
	}

	res, err := h.authSvc.Authenticate(c.Request.Context(), form)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("sign-in fault outside auth taxonomy")
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
		return
	}

	if res.Terminal() {
		c.Redirect(http.StatusSeeOther, res.RedirectTo)
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, res.State)
}
