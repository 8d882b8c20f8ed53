package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/base/metrics"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/listing"
	authMiddleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	listing listing.UseCase
}

func New(
	e *echo.Echo,
	listingUC listing.UseCase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("listing")

	h := &handler{listingUC}

	gs := e.Group("/listings")

	gs.GET("", h.getAll)

	gs.POST("", h.create, authMiddleware.Auth())

	g := e.Group("/listing/:listingId")

	g.GET("", h.get)

	g.POST("/buy", h.buy, authMiddleware.Auth())

	g.POST("/cancel", h.cancel, authMiddleware.Auth())
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Status     *listing.Status `query:"status"`
		TokenOwner *domain.Address `query:"tokenOwner"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptionsFunc{}
	if p.Status != nil {
		opts = append(opts, listing.WithStatus(*p.Status))
	}
	if p.TokenOwner != nil {
		opts = append(opts, listing.WithTokenOwner(*p.TokenOwner))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listingId")
	}

	res, err := h.listing.GetListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	defer met.BumpTime("time", "func", "create").End()

	p := &listing.CreateListingParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.CreateListing(ctx, address, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("listing.created", 1)
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	defer met.BumpTime("time", "func", "buy").End()

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listingId")
	}

	p := &listing.BuyParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.ListingId = id

	res, err := h.listing.Buy(ctx, address, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("listing.bought", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listingId")
	}

	if err := h.listing.CancelListing(ctx, address, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func parseListingId(c echo.Context) (listing.ListingId, error) {
	id, err := strconv.ParseInt(c.Param("listingId"), 10, 64)
	if err != nil {
		return 0, err
	}
	return listing.ListingId(id), nil
}
