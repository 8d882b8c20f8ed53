package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/role"
)

type AuthMiddleware struct {
	auth   domain.AuthUsecase
	roleUC role.UseCase
}

func New(auth domain.AuthUsecase, roleUC role.UseCase) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		roleUC: roleUC,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)
			address := c.Get("address").(domain.Address)

			if ok, err := m.roleUC.HasRole(ctx, role.RoleAdmin, address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !ok {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require admin privilege")
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) IsLister() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)
			address := c.Get("address").(domain.Address)

			if ok, err := m.roleUC.IsAdminOrLister(ctx, address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !ok {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require lister privilege")
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("address", domain.Address(ads))
		return true, nil
	}
}
