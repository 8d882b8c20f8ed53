package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/delivery"
	"github.com/nftreasury/goapi/domain"
	"github.com/nftreasury/goapi/domain/payment"
	authMiddleware "github.com/nftreasury/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	records payment.RecordRepo
}

func New(e *echo.Echo, records payment.RecordRepo, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{records}

	g := e.Group("/payments")

	g.GET("", h.getMine, authMiddleware.Auth())

	g.GET("/:paymentId", h.get, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.records.FindOne(ctx, c.Param("paymentId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getMine(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	res, err := h.records.FindAllByPayer(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
