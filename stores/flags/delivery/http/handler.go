package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/marketplace"
	authMiddleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	flags marketplace.FlagsUseCase
}

func New(e *echo.Echo, flagsUC marketplace.FlagsUseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{flagsUC}

	g := e.Group("/marketplace/flags")

	g.GET("", h.get)

	g.PUT("/outside-listing", h.setOutsideListing, authMiddleware.Auth())

	g.PUT("/auction", h.setAuction, authMiddleware.Auth())

	g.PUT("/platform-fee", h.setPlatformFee, authMiddleware.Auth())

	g.PUT("/list-price-increase", h.setListPriceIncrease, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.flags.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) setOutsideListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Allowed bool `json:"allowed"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.flags.SetOutsideListingAllowed(ctx, address, p.Allowed); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Enabled bool `json:"enabled"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.flags.SetAuctionEnabled(ctx, address, p.Enabled); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setPlatformFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Bps       int64          `json:"bps"`
		Recipient domain.Address `json:"recipient"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.flags.SetPlatformFee(ctx, address, p.Bps, p.Recipient); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setListPriceIncrease(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Bps int64 `json:"bps"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.flags.SetListPriceBpsIncrease(ctx, address, p.Bps); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
