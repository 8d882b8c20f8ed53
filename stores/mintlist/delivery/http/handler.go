package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/base/metrics"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/mintlist"
	authMiddleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	mintlist mintlist.UseCase
}

func New(e *echo.Echo, mintlistUC mintlist.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("mintlist")

	h := &handler{mintlistUC}

	e.POST("/claim-and-list", h.claimAndList, authMiddleware.Auth())
}

func (h *handler) claimAndList(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	defer met.BumpTime("time", "func", "claimAndList").End()

	p := &mintlist.ClaimAndListParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.mintlist.ClaimAndList(ctx, address, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("mintlist.succeeded", 1)
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
