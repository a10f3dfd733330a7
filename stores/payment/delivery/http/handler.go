package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/delivery"
	"github.com/x-xyz/nftmint/domain"
)

type handler struct {
	paymentUseCase domain.PaymentUseCase
}

func New(e *echo.Echo, paymentUseCase domain.PaymentUseCase) {
	h := &handler{paymentUseCase}

	e.GET("/api/payments/:txHash", h.verify)
}

// verify
//
//	@Summary		Verify a payment
//	@Description	Checks the transaction paid the merchant at least the price. 202 while it is not mined.
//	@Tags			payments
//	@Produce		json
//	@Param			txHash	path		string	true	"transaction hash"
//	@Success		200		{object}	delivery.JsonResponse{data=domain.Payment}
//	@Success		202		{object}	delivery.JsonResponse{data=domain.Payment}
//	@Failure		400		{object}	delivery.JsonResponse{data=string}
//	@Failure		404		{object}	delivery.JsonResponse{data=string}
//	@Failure		500		{object}	delivery.JsonResponse{data=string}
//	@Router			/api/payments/{txHash} [get]
func (h *handler) verify(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, err := h.paymentUseCase.Verify(ctx, domain.TxHash(c.Param("txHash")))
	if errors.Is(err, domain.ErrTxPending) {
		return delivery.MakeJsonResp(c, http.StatusAccepted, p)
	} else if err != nil {
		status := delivery.StatusOf(err)
		if status >= http.StatusInternalServerError {
			ctx.WithField("err", err).Error("paymentUseCase.Verify failed")
			return delivery.MakeJsonResp(c, status, domain.ErrInternalServerError)
		}
		return delivery.MakeJsonResp(c, status, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}
