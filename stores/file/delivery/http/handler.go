package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/delivery"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/file"
)

type handler struct {
	fileUseCase file.Usecase
}

func New(e *echo.Echo, fileUseCase file.Usecase) {
	h := &handler{fileUseCase}

	g := e.Group("/api")
	g.POST("/files", h.upload)
	g.POST("/metadata", h.uploadMetadata)
}

// upload
//
//	@Summary		Pin a file to IPFS
//	@Description	Forwards the multipart field `file` unmodified to the pinning provider and returns its gateway url
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"file to pin"
//	@Success		200		{string}	string	"https://<gateway>/ipfs/<cid>"
//	@Failure		400		{object}	delivery.ErrorResponse
//	@Failure		500		{object}	delivery.ErrorResponse
//	@Router			/api/files [post]
func (h *handler) upload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fh, err := c.FormFile("file")
	if err != nil {
		return delivery.MakeErrorResp(c, domain.ErrNoFile)
	}

	f, err := fh.Open()
	if err != nil {
		ctx.WithField("err", err).Error("FileHeader.Open failed")
		return delivery.MakeErrorResp(c, err)
	}
	defer f.Close()

	res, err := h.fileUseCase.Upload(ctx, f, fh.Filename)
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}
	return c.JSON(http.StatusOK, res.Url)
}

// uploadMetadata
//
//	@Summary		Pin token metadata
//	@Description	Validates {name, description, image} and pins it as JSON, returns the gateway url to use as tokenURI
//	@Tags			files
//	@Accept			json
//	@Produce		json
//	@Param			metadata	body		domain.NftMetadata	true	"metadata"
//	@Success		200			{string}	string				"https://<gateway>/ipfs/<cid>"
//	@Failure		400			{object}	delivery.ErrorResponse
//	@Failure		500			{object}	delivery.ErrorResponse
//	@Router			/api/metadata [post]
func (h *handler) uploadMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	md := domain.NftMetadata{}
	if err := c.Bind(&md); err != nil {
		return delivery.MakeErrorResp(c, domain.ErrInvalidMetadata)
	}
	if err := c.Validate(&md); err != nil {
		ctx.WithField("err", err).Info("invalid metadata")
		return delivery.MakeErrorResp(c, domain.ErrInvalidMetadata)
	}

	res, err := h.fileUseCase.UploadMetadata(ctx, &md)
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}
	return c.JSON(http.StatusOK, res.Url)
}
