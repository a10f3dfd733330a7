package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct{}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>
func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri")
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(parts) < 2 || len(parts[1]) == 0 {
		return nil, xerrors.Errorf("no data part provided")
	}

	if strings.HasSuffix(parts[0], ";base64") {
		data, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			// some minters drop the padding
			return base64.RawStdEncoding.DecodeString(strings.TrimRight(parts[1], "="))
		}
		return data, nil
	}

	data, err := url.PathUnescape(parts[1])
	if err != nil {
		return []byte(parts[1]), nil
	}
	return []byte(data), nil
}
