package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/base/metrics"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/claim"
	"github.com/nftreasury/goapi/middleware"
	authMiddleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	claim claim.UseCase
}

func New(e *echo.Echo, claimUC claim.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("claim")

	h := &handler{claimUC}

	g := e.Group("/claim")

	g.GET("/condition", h.getCondition)

	g.PUT("/condition", h.setCondition, authMiddleware.Auth())

	g.POST("", h.claimTokens, authMiddleware.Auth())

	g.POST("/verify", h.verify, authMiddleware.Auth())

	g.GET("/claimed/:address", h.getClaimed, middleware.IsValidAddress("address"))
}

func (h *handler) getCondition(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.claim.GetCondition(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) setCondition(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &claim.SetConditionParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.claim.SetCondition(ctx, address, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) claimTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	defer met.BumpTime("time", "func", "claim").End()

	p := &claim.ClaimParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tokenId, err := h.claim.Claim(ctx, address, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("claim.succeeded", 1)

	res := struct {
		TokenId int64 `json:"tokenId"`
	}{tokenId}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) verify(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &claim.ClaimParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.claim.VerifyClaim(ctx, address, *p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getClaimed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))
	claimed, err := h.claim.GetWalletClaimed(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Claimed int64 `json:"claimed"`
	}{claimed}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
