package pinning

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
)

const (
	DefaultPinataEndpoint = "https://api.pinata.cloud"

	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

var met = metrics.New("pinning")

type PinataCfg struct {
	Endpoint string
	// Jwt takes precedence over the key pair
	Jwt        string
	ApiKey     string
	ApiSecret  string
	HttpClient *http.Client
	// Timeout applies unless HttpClient carries its own
	Timeout time.Duration
}

type pinataImpl struct {
	endpoint  string
	jwt       string
	apiKey    string
	apiSecret string
	client    *http.Client
}

func NewPinata(cfg PinataCfg) Service {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultPinataEndpoint
	}
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.HttpClient != nil {
		c := *cfg.HttpClient
		if c.Timeout == 0 {
			c.Timeout = cfg.Timeout
		}
		client = &c
	}
	return &pinataImpl{
		endpoint:  endpoint,
		jwt:       cfg.Jwt,
		apiKey:    cfg.ApiKey,
		apiSecret: cfg.ApiSecret,
		client:    client,
	}
}

type pinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type pinJsonBody struct {
	Metadata *PinMetadata   `json:"pinataMetadata,omitempty"`
	Options  *pinataOptions `json:"pinataOptions,omitempty"`
	Content  interface{}    `json:"pinataContent"`
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, filename string, optFns ...Options) (string, error) {
	defer met.BumpTime("pinata.latency", "func", "pin").End()
	opts := GetPinOptions(optFns...)

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", filename); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}

	if opts.Metadata != nil {
		if raw, err := json.Marshal(opts.Metadata); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		} else if err := w.WriteField("pinataMetadata", string(raw)); err != nil {
			c.WithField("err", err).Error("w.WriteField failed")
			return "", err
		}
	}

	if opts.CidVersion != nil {
		raw, _ := json.Marshal(pinataOptions{CidVersion: *opts.CidVersion})
		if err := w.WriteField("pinataOptions", string(raw)); err != nil {
			c.WithField("err", err).Error("w.WriteField failed")
			return "", err
		}
	}

	if err := w.Close(); err != nil {
		c.WithField("err", err).Error("w.Close failed")
		return "", err
	}

	return im.do(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	defer met.BumpTime("pinata.latency", "func", "pinJson").End()
	opts := GetPinOptions(optFns...)

	body := pinJsonBody{
		Metadata: opts.Metadata,
		Content:  value,
	}
	if opts.CidVersion != nil {
		body.Options = &pinataOptions{CidVersion: *opts.CidVersion}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.do(c, pinJsonPath, "application/json", bytes.NewReader(raw))
}

func (im *pinataImpl) do(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(c, http.MethodPost, im.endpoint+path, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	if im.jwt != "" {
		req.Header.Set("Authorization", "Bearer "+im.jwt)
	} else {
		req.Header.Set("pinata_api_key", im.apiKey)
		req.Header.Set("pinata_secret_api_key", im.apiSecret)
	}

	resp, err := im.client.Do(req)
	if err != nil {
		met.BumpSum("pinata.err", 1, "path", path)
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		met.BumpSum("pinata.err", 1, "path", path)
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.WithFields(log.Fields{
			"status":    resp.StatusCode,
			"errorBody": string(errorBody),
		}).Error("pinata request failed")
		return "", ErrRequestFailed
	}

	p := &pinResponse{}
	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}
	if p.IpfsHash == "" {
		return "", ErrEmptyCid
	}

	return p.IpfsHash, nil
}
