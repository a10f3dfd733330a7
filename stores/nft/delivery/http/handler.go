package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/delivery"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/middleware"
	"github.com/x-xyz/nftmint/service/cache"
)

type handler struct {
	nftUseCase domain.NftUseCase
}

type nextIdResponse struct {
	TokenId domain.TokenId `json:"tokenId"`
}

type balanceResponse struct {
	Address domain.Address `json:"address"`
	Balance uint64         `json:"balance"`
}

// New registers the token routes, listCache is optional
func New(e *echo.Echo, nftUseCase domain.NftUseCase, listCache cache.Service) {
	h := &handler{nftUseCase}

	listMiddlewares := []echo.MiddlewareFunc{}
	if listCache != nil {
		listMiddlewares = append(listMiddlewares, middleware.CacheHttp(listCache))
	}

	g := e.Group("/api")
	g.GET("/nfts", h.getAll, listMiddlewares...)
	g.GET("/nfts/next-id", h.nextId)
	g.GET("/nfts/:tokenId", h.getOne)
	g.GET("/accounts/:address/balance", h.balanceOf, middleware.IsValidAddress("address"))
}

// getAll
//
//	@Summary		List minted tokens
//	@Description	Enumerates the contract with the configured strategy, ascending by token id. Records whose metadata cannot be fetched have no metadata.
//	@Tags			nfts
//	@Produce		json
//	@Success		200	{object}	delivery.JsonResponse{data=[]domain.NftData}
//	@Failure		500	{object}	delivery.JsonResponse{data=string}
//	@Router			/api/nfts [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.nftUseCase.GetAll(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("nftUseCase.GetAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, domain.ErrInternalServerError)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// nextId
//
//	@Summary		Next token id
//	@Description	First token id whose ownerOf fails
//	@Tags			nfts
//	@Produce		json
//	@Success		200	{object}	delivery.JsonResponse{data=nextIdResponse}
//	@Failure		500	{object}	delivery.JsonResponse{data=string}
//	@Router			/api/nfts/next-id [get]
func (h *handler) nextId(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.nftUseCase.NextTokenId(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("nftUseCase.NextTokenId failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, domain.ErrInternalServerError)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nextIdResponse{id})
}

// getOne
//
//	@Summary		Get a token
//	@Tags			nfts
//	@Produce		json
//	@Param			tokenId	path		string	true	"decimal token id"
//	@Success		200		{object}	delivery.JsonResponse{data=domain.NftData}
//	@Failure		400		{object}	delivery.JsonResponse{data=string}
//	@Failure		404		{object}	delivery.JsonResponse{data=string}
//	@Router			/api/nfts/{tokenId} [get]
func (h *handler) getOne(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.nftUseCase.GetOne(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		status := delivery.StatusOf(err)
		if status >= http.StatusInternalServerError {
			ctx.WithField("err", err).Error("nftUseCase.GetOne failed")
			return delivery.MakeJsonResp(c, status, domain.ErrInternalServerError)
		}
		return delivery.MakeJsonResp(c, status, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// balanceOf
//
//	@Summary		Token balance of an account
//	@Tags			nfts
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Success		200		{object}	delivery.JsonResponse{data=balanceResponse}
//	@Failure		400		{object}	delivery.JsonResponse{data=string}
//	@Failure		500		{object}	delivery.JsonResponse{data=string}
//	@Router			/api/accounts/{address}/balance [get]
func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	addr := domain.Address(c.Param("address"))
	balance, err := h.nftUseCase.BalanceOf(ctx, addr)
	if err != nil {
		ctx.WithField("err", err).Error("nftUseCase.BalanceOf failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, domain.ErrInternalServerError)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, balanceResponse{addr, balance})
}
