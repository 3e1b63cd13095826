package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-data-market/internal/config"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/go-resty/resty/v2"
)

// defaultPinningTimeout bounds every outbound pinning call when no timeout
// is configured.
const defaultPinningTimeout = 30 * time.Second

// pinningClient is a Pinata-style implementation of [PinningClient]: files
// are pinned through the authenticated API and fetched back through the
// public gateway.
type pinningClient struct {
	client     *resty.Client
	apiURL     string
	gatewayURL string
	jwt        string
	logger     *logger.Logger
}

// pinResponse is the upload result returned by the pinning API.
type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// NewPinningClient constructs a [PinningClient] from the pinning
// configuration. The configured timeout applies uniformly to uploads and
// gateway fetches.
func NewPinningClient(cfg config.Pinning, log *logger.Logger) PinningClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPinningTimeout
	}

	cli := resty.New().SetTimeout(timeout)

	return &pinningClient{
		client:     cli,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		gatewayURL: strings.TrimRight(cfg.GatewayURL, "/"),
		jwt:        cfg.JWT,
		logger:     log,
	}
}

// PinFile implements [PinningClient]. It uploads data as a multipart file
// to the pinning API and returns the assigned content identifier.
func (p *pinningClient) PinFile(ctx context.Context, filename string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.jwt).
		SetFileReader("file", filename, bytes.NewReader(data)).
		Post(p.apiURL + "/pinning/pinFileToIPFS")
	if err != nil {
		log.Err(err).Str("func", "*pinningClient.PinFile").Msg("pin request failed")
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if !resp.IsSuccess() {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("func", "*pinningClient.PinFile").
			Msg("pin request rejected by upstream")
		return "", fmt.Errorf("%w: http %d", ErrStorageUpstream, resp.StatusCode())
	}

	var pinned pinResponse
	if err = json.Unmarshal(resp.Body(), &pinned); err != nil {
		return "", fmt.Errorf("decode pin response: %w", err)
	}
	if pinned.IpfsHash == "" {
		return "", fmt.Errorf("%w: empty content identifier in response", ErrStorageUpstream)
	}

	return pinned.IpfsHash, nil
}

// FetchFile implements [PinningClient]. It retrieves pinned bytes through
// the public gateway. No decryption happens here; the ciphertext is passed
// through as-is.
func (p *pinningClient) FetchFile(ctx context.Context, cid string) ([]byte, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		Get(p.gatewayURL + "/ipfs/" + cid)
	if err != nil {
		log.Err(err).Str("func", "*pinningClient.FetchFile").Str("cid", cid).Msg("gateway fetch failed")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if !resp.IsSuccess() {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("cid", cid).
			Str("func", "*pinningClient.FetchFile").
			Msg("gateway fetch rejected by upstream")
		return nil, fmt.Errorf("%w: http %d", ErrStorageUpstream, resp.StatusCode())
	}

	return resp.Body(), nil
}
