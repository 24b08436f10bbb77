// Package sentinel implements the imagery provider against the Sentinel
// Hub OAuth2 and Process APIs.
package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"cropsat/config"
	"cropsat/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/oauth2/clientcredentials"
)

// trueColorEvalscript renders the visual bands of a Sentinel-2 L2A scene.
const trueColorEvalscript = `//VERSION=3
function setup() {
  return {
    input: ["B02", "B03", "B04"],
    output: { bands: 3 }
  };
}
function evaluatePixel(sample) {
  return [sample.B04, sample.B03, sample.B02];
}`

// Client talks to Sentinel Hub. Token acquisition goes through the
// OAuth2 client-credentials flow; the token source caches and refreshes
// under the hood, so GetToken is cheap on the happy path.
type Client struct {
	cfg        *config.SentinelConfig
	logger     *slog.Logger
	httpClient *http.Client
	creds      *clientcredentials.Config
}

// NewClient creates a Sentinel Hub client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.ImageryProvider {
	sentinelCfg := cfg.Sentinel

	return &Client{
		cfg:    sentinelCfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: sentinelCfg.Timeout,
		},
		creds: &clientcredentials.Config{
			ClientID:     sentinelCfg.ClientID,
			ClientSecret: sentinelCfg.ClientSecret,
			TokenURL:     sentinelCfg.TokenURL,
		},
	}
}

// GetToken acquires an access token via the client-credentials grant.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return "", errors.Wrapf(service.ErrImageryAuth, "client credentials grant: %v", err)
	}

	return token.AccessToken, nil
}

// processRequest is the Sentinel Hub Process API request body.
type processRequest struct {
	Input struct {
		Bounds struct {
			BBox [4]float64 `json:"bbox"`
		} `json:"bounds"`
		Data []processData `json:"data"`
	} `json:"input"`
	Output struct {
		Width     int               `json:"width"`
		Height    int               `json:"height"`
		Responses []processResponse `json:"responses"`
	} `json:"output"`
	Evalscript string `json:"evalscript"`
}

type processData struct {
	Type       string `json:"type"`
	DataFilter struct {
		TimeRange struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"timeRange"`
		MaxCloudCoverage int `json:"maxCloudCoverage"`
	} `json:"dataFilter"`
	Processing struct {
		Upsampling string `json:"upsampling"`
	} `json:"processing"`
}

type processResponse struct {
	Identifier string `json:"identifier"`
	Format     struct {
		Type string `json:"type"`
	} `json:"format"`
}

// FetchImage requests a rendered scene for the given region and window.
func (c *Client) FetchImage(ctx context.Context, token string, req service.ImageRequest) ([]byte, error) {
	body, err := json.Marshal(c.buildProcessRequest(req))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ProcessURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "image/tiff")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(service.ErrImageryProvider, "process request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Wrapf(service.ErrImageryProvider, "process API returned %d: %s", resp.StatusCode, string(snippet))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(service.ErrImageryProvider, "reading process response: %v", err)
	}

	c.logger.Debug("[Sentinel] Image fetched",
		slog.Int("bytes", len(data)),
	)

	return data, nil
}

// buildProcessRequest maps an ImageRequest onto the Process API shape.
// Sentinel Hub wants the bbox as [minLng, minLat, maxLng, maxLat].
func (c *Client) buildProcessRequest(req service.ImageRequest) *processRequest {
	bound := req.BBox.Bound()

	var data processData
	data.Type = "sentinel-2-l2a"
	data.DataFilter.TimeRange.From = req.From.UTC().Format(time.RFC3339)
	data.DataFilter.TimeRange.To = req.To.UTC().Format(time.RFC3339)
	data.DataFilter.MaxCloudCoverage = req.MaxCloudCoverage
	data.Processing.Upsampling = "BILINEAR"

	var response processResponse
	response.Identifier = "default"
	response.Format.Type = "image/tiff"

	out := &processRequest{}
	out.Input.Bounds.BBox = boundToBBox(bound)
	out.Input.Data = []processData{data}
	out.Output.Width = c.cfg.OutputWidth
	out.Output.Height = c.cfg.OutputHeight
	out.Output.Responses = []processResponse{response}
	out.Evalscript = trueColorEvalscript

	return out
}

func boundToBBox(bound orb.Bound) [4]float64 {
	return [4]float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]}
}
