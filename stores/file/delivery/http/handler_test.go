package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/base/validator"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/domain/file"
	"github.com/x-xyz/nftmint/domain/file/mocks"
	"github.com/x-xyz/nftmint/middleware"
	"github.com/x-xyz/nftmint/service/pinning"
)

type handlerSuite struct {
	suite.Suite
	e  *echo.Echo
	fu *mocks.Usecase
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.fu = mocks.NewUsecase(s.T())
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.fu)
}

func (s *handlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func multipartReq(field, filename, content string) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if field != "" {
		part, _ := w.CreateFormFile(field, filename)
		part.Write([]byte(content))
	} else {
		w.WriteField("other", "x")
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func (s *handlerSuite) TestUpload() {
	body := &bytes.Buffer{}
	s.fu.On("Upload", mock.Anything, mock.Anything, "mushroom.png").Run(func(args mock.Arguments) {
		_, _ = io.Copy(body, args.Get(1).(io.Reader))
	}).Return(&file.UploadResult{
		Cid: "QmCid",
		Url: "https://demo.mypinata.cloud/ipfs/QmCid",
	}, nil).Once()

	rec := s.do(multipartReq("file", "mushroom.png", "image-bytes"))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`"https://demo.mypinata.cloud/ipfs/QmCid"`, rec.Body.String())
	s.Equal("image-bytes", body.String())
}

func (s *handlerSuite) TestUploadMissingFile() {
	rec := s.do(multipartReq("", "", ""))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"No file received"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/files", strings.NewReader(""))
	rec = s.do(req)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"No file received"}`, rec.Body.String())

	s.fu.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestUploadProviderError() {
	s.fu.On("Upload", mock.Anything, mock.Anything, "a.png").Return(nil, pinning.ErrRequestFailed).Once()

	rec := s.do(multipartReq("file", "a.png", "x"))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"Internal Server Error"}`, rec.Body.String())
}

func (s *handlerSuite) TestUploadMetadata() {
	md := &domain.NftMetadata{Name: "Mushroom", Description: "demo", Image: "ipfs://QmImg"}
	s.fu.On("UploadMetadata", mock.Anything, md).Return(&file.UploadResult{
		Cid: "QmMeta",
		Url: "https://gw/ipfs/QmMeta",
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/metadata",
		strings.NewReader(`{"name":"Mushroom","description":"demo","image":"ipfs://QmImg"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := s.do(req)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`"https://gw/ipfs/QmMeta"`, rec.Body.String())
}

func (s *handlerSuite) TestUploadMetadataInvalid() {
	for _, body := range []string{`{"description":"no name"}`, `{"name":"a","image":"not a uri"}`, `{`} {
		req := httptest.NewRequest(http.MethodPost, "/api/metadata", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := s.do(req)
		s.Equal(http.StatusBadRequest, rec.Code, body)
		s.JSONEq(`{"error":"Invalid metadata"}`, rec.Body.String())
	}
}
