package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/delivery"
	"github.com/x-xyz/nftmint/domain"
	authMiddleware "github.com/x-xyz/nftmint/stores/auth/delivery/http/middleware"
)

type handler struct {
	mintUseCase domain.MintUseCase
	contract    *domain.ContractInfo
}

func New(e *echo.Echo, mintUseCase domain.MintUseCase, contract *domain.ContractInfo, auth *authMiddleware.AuthMiddleware) {
	h := &handler{mintUseCase, contract}

	g := e.Group("/api")
	g.GET("/contract", h.getContract)
	g.POST("/mint", h.mint, auth.Auth(), auth.IsMinter())
}

// getContract
//
//	@Summary		Minting contract
//	@Tags			mint
//	@Produce		json
//	@Success		200	{object}	delivery.JsonResponse{data=domain.ContractInfo}
//	@Router			/api/contract [get]
func (h *handler) getContract(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.contract)
}

// mint
//
//	@Summary		Mint a token
//	@Description	Sends safeMint(to, tokenURI) signed by the server key and waits for the receipt. `to` may be an ENS name. 202 means the receipt did not arrive in time, the transaction may still succeed.
//	@Tags			mint
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		domain.MintRequest	true	"params"
//	@Success		200		{object}	delivery.JsonResponse{data=domain.MintResult}
//	@Success		202		{object}	delivery.JsonResponse{data=domain.MintResult}
//	@Failure		400		{object}	delivery.JsonResponse{data=string}
//	@Failure		401
//	@Failure		500		{object}	delivery.JsonResponse{data=string}
//	@Failure		503		{object}	delivery.JsonResponse{data=string}
//	@Router			/api/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &domain.MintRequest{}
	if err := c.Bind(req); err != nil {
		ctx.WithField("err", err).Info("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if req.To == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrMissingWallet)
	}
	if err := c.Validate(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.mintUseCase.Mint(ctx, req)
	if errors.Is(err, domain.ErrTxPending) {
		return delivery.MakeJsonResp(c, http.StatusAccepted, res)
	} else if err != nil {
		status := delivery.StatusOf(err)
		switch {
		case status == http.StatusServiceUnavailable:
			return delivery.MakeJsonResp(c, status, domain.ErrMinterDisabled)
		case status >= http.StatusInternalServerError:
			ctx.WithField("err", err).Error("mintUseCase.Mint failed")
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, domain.ErrMintFailed)
		}
		return delivery.MakeJsonResp(c, status, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
