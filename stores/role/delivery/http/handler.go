package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/role"
	authMiddleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	role role.UseCase
}

func New(e *echo.Echo, roleUC role.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{roleUC}

	g := e.Group("/roles/:role")

	g.GET("/members", h.members)

	g.POST("/members", h.grant, authMiddleware.Auth())

	g.DELETE("/members/:address", h.revoke, authMiddleware.Auth())
}

func (h *handler) members(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	r, err := role.ToRole(c.Param("role"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid role")
	}

	res, err := h.role.Members(ctx, r)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) grant(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	r, err := role.ToRole(c.Param("role"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid role")
	}

	type params struct {
		Address domain.Address `json:"address" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.role.Grant(ctx, address, r, p.Address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) revoke(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	r, err := role.ToRole(c.Param("role"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid role")
	}

	if err := h.role.Revoke(ctx, address, r, domain.Address(c.Param("address"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
