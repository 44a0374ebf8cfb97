package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/api/middleware"
	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// ctxAuth extracts the AuthContext injected by the Auth middleware. Shop-scoped
// handlers additionally require a resolved shop; without one the token is
// structurally valid but operationally unusable, so it is rejected with 401.
func ctxAuth(c echo.Context, requireShop bool) (*domain.AuthContext, error) {
	auth, _ := c.Get(middleware.AuthContextKey).(*domain.AuthContext)
	if auth == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if requireShop && auth.ShopID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no shop associated with this account")
	}
	return auth, nil
}
