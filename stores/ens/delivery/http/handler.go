package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/delivery"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/ens"
)

type resolveResponse struct {
	Name    string         `json:"name"`
	Address domain.Address `json:"address"`
}

type handler struct {
	ens ens.Resolver
}

func New(e *echo.Echo, resolver ens.Resolver) {
	h := &handler{resolver}

	g := e.Group("/api/ens")
	g.GET("/:name", h.resolve)
}

// resolve
//
//	@Summary		Resolve an ENS name
//	@Description	Lets a client preview the address a mint to this name would go to
//	@Tags			ens
//	@Produce		json
//	@Param			name	path		string	true	"ens name, e.g. vitalik.eth"
//	@Success		200		{object}	delivery.JsonResponse{data=resolveResponse}
//	@Failure		400		{object}	delivery.JsonResponse
//	@Failure		404		{object}	delivery.JsonResponse
//	@Failure		500		{object}	delivery.JsonResponse
//	@Router			/api/ens/{name} [get]
func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name := c.Param("name")
	if !ens.IsName(name) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	address, err := h.ens.Resolve(ctx, name)
	if err != nil {
		status := delivery.StatusOf(err)
		if status >= http.StatusInternalServerError {
			return delivery.MakeJsonResp(c, status, domain.ErrInternalServerError)
		}
		return delivery.MakeJsonResp(c, status, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resolveResponse{Name: name, Address: address})
}
