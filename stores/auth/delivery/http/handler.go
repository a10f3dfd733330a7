package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/delivery"
	"github.com/x-xyz/nftmint/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsg/:address", handler.getSigningMsg)
}

// sign
//
//	@Summary		Get access token
//	@Description	Exchanges a personal_sign signature over the signing message for a JWT
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		domain.SignInRequest	true	"params"
//	@Success		201		{object}	delivery.JsonResponse{data=string}
//	@Failure		400		{object}	delivery.JsonResponse{data=string}
//	@Failure		500		{object}	delivery.JsonResponse{data=string}
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &domain.SignInRequest{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Info("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tkn, err := h.auth.SignIn(ctx, p.Address, p.Signature)
	if err != nil {
		status := delivery.StatusOf(err)
		if status >= http.StatusInternalServerError {
			ctx.WithField("err", err).Error("auth.SignIn failed")
			return delivery.MakeJsonResp(c, status, domain.ErrInternalServerError)
		}
		return delivery.MakeJsonResp(c, status, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
}

// getSigningMsg
//
//	@Summary		Get signing message
//	@Description	Issues a single-use nonce and returns the message the wallet has to personal_sign for /auth/sign
//	@Tags			auth
//	@Produce		json
//	@Param			address	path		string	true	"wallet address"
//	@Success		200		{object}	delivery.JsonResponse{data=object{msg=string}}
//	@Failure		400		{object}	delivery.JsonResponse{data=string}
//	@Failure		500		{object}	delivery.JsonResponse{data=string}
//	@Router			/auth/signingMsg/{address} [get]
func (h *authHandler) getSigningMsg(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	msg, err := h.auth.SigningMessage(ctx, domain.Address(c.Param("address")))
	if err != nil {
		status := delivery.StatusOf(err)
		if status >= http.StatusInternalServerError {
			ctx.WithField("err", err).Error("auth.SigningMessage failed")
			return delivery.MakeJsonResp(c, status, domain.ErrInternalServerError)
		}
		return delivery.MakeJsonResp(c, status, err)
	}
	res := struct {
		Msg string `json:"msg"`
	}{
		Msg: msg,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
