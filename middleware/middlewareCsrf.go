package middleware

import (
	"net/http"

	"github.com/siherrmann/contentManager/handler"
	"github.com/siherrmann/contentManager/model"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

func (r *Middleware) CsrfMiddleware() echo.MiddlewareFunc {
	csrfMiddleware := csrf.Protect(
		r.csrfKey,
		csrf.Path("/"),
		csrf.Secure(r.secure),
		csrf.SameSite(csrf.SameSiteLaxMode), // Set to Lax instead of default Strict
		csrf.FieldName(model.CSRF_FIELD),
		csrf.ErrorHandler(http.HandlerFunc(handler.HandleCSRFErrorView)),
		csrf.TrustedOrigins(r.trustedOrigins),
	)
	return echo.WrapMiddleware(csrfMiddleware)
}
