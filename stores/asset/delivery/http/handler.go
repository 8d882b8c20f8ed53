package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/asset"
	"github.com/nftreasury/goapi/middleware"
	authMiddleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	asset asset.UseCase
}

func New(e *echo.Echo, assetUC asset.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{assetUC}

	gs := e.Group("/tokens")

	gs.GET("/owner/:address", h.tokensOf, middleware.IsValidAddress("address"))

	gs.POST("/lazy-mint", h.lazyMint, authMiddleware.Auth())

	gs.POST("/approval-for-all", h.setApprovalForAll, authMiddleware.Auth())

	g := e.Group("/token/:tokenId")

	g.GET("", h.get)

	g.POST("/approve", h.approve, authMiddleware.Auth())

	g.POST("/transfer", h.transfer, authMiddleware.Auth())

	gm := e.Group("/marketplaces")

	gm.GET("/approved", h.approvedMarkets)

	gm.PUT("/approved", h.setApprovedMarket, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	tokenId := domain.TokenId(c.Param("tokenId"))
	res, err := h.asset.GetToken(ctx, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) tokensOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	owner := domain.Address(c.Param("address"))
	res, err := h.asset.TokensOf(ctx, owner)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) lazyMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Amount  int64  `json:"amount" validate:"gt=0"`
		BaseUri string `json:"baseUri" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.asset.LazyMint(ctx, address, p.Amount, p.BaseUri)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Operator domain.Address `json:"operator" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	tokenId := domain.TokenId(c.Param("tokenId"))
	if err := h.asset.Approve(ctx, address, tokenId, p.Operator); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setApprovalForAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Operator domain.Address `json:"operator" validate:"required"`
		Approved bool           `json:"approved"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.asset.SetApprovalForAll(ctx, address, p.Operator, p.Approved); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		From domain.Address `json:"from" validate:"required"`
		To   domain.Address `json:"to" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	tokenId := domain.TokenId(c.Param("tokenId"))
	if err := h.asset.Transfer(ctx, address, p.From, p.To, tokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) approvedMarkets(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.QueryParam("address")
	if address == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "address required")
	}

	res, err := h.asset.IsApprovedMarketplace(ctx, domain.Address(address))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) setApprovedMarket(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Market   domain.Address `json:"market" validate:"required"`
		Approved bool           `json:"approved"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.asset.SetApprovedMarketplace(ctx, address, p.Market, p.Approved); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
