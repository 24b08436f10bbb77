package sentinel

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cropsat/config"
	"cropsat/internal/domain/entity"
	"cropsat/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, tokenURL, processURL string) service.ImageryProvider {
	cfg := &config.Config{
		Sentinel: &config.SentinelConfig{
			TokenURL:         tokenURL,
			ProcessURL:       processURL,
			ClientID:         "client-id",
			ClientSecret:     "client-secret",
			Timeout:          5 * time.Second,
			LookbackDays:     30,
			MaxCloudCoverage: 20,
			OutputWidth:      512,
			OutputHeight:     512,
		},
	}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_GetToken(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	client := testClient(t, tokenServer.URL, "")

	token, err := client.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestClient_GetToken_AuthFailure(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer tokenServer.Close()

	client := testClient(t, tokenServer.URL, "")

	_, err := client.GetToken(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrImageryAuth)
}

func TestClient_FetchImage(t *testing.T) {
	imageBytes := []byte("tiff-payload")

	processServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "image/tiff", r.Header.Get("Accept"))

		var req processRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// bbox order is [minLng, minLat, maxLng, maxLat]
		assert.InDelta(t, 77.49, req.Input.Bounds.BBox[0], 1e-9)
		assert.InDelta(t, 12.87, req.Input.Bounds.BBox[1], 1e-9)
		assert.InDelta(t, 77.69, req.Input.Bounds.BBox[2], 1e-9)
		assert.InDelta(t, 13.07, req.Input.Bounds.BBox[3], 1e-9)

		require.Len(t, req.Input.Data, 1)
		assert.Equal(t, "sentinel-2-l2a", req.Input.Data[0].Type)
		assert.Equal(t, 20, req.Input.Data[0].DataFilter.MaxCloudCoverage)
		assert.Equal(t, "BILINEAR", req.Input.Data[0].Processing.Upsampling)
		assert.Equal(t, 512, req.Output.Width)
		assert.Equal(t, 512, req.Output.Height)
		require.Len(t, req.Output.Responses, 1)
		assert.Equal(t, "image/tiff", req.Output.Responses[0].Format.Type)

		w.Header().Set("Content-Type", "image/tiff")
		_, _ = w.Write(imageBytes)
	}))
	defer processServer.Close()

	client := testClient(t, "", processServer.URL)

	now := time.Now()
	data, err := client.FetchImage(context.Background(), "tok-abc", service.ImageRequest{
		BBox:             entity.BoundingBoxAround(12.97, 77.59),
		From:             now.AddDate(0, 0, -30),
		To:               now,
		MaxCloudCoverage: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, imageBytes, data)
}

func TestClient_FetchImage_ProviderError(t *testing.T) {
	processServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid evalscript"}`))
	}))
	defer processServer.Close()

	client := testClient(t, "", processServer.URL)

	_, err := client.FetchImage(context.Background(), "tok-abc", service.ImageRequest{
		BBox: entity.BoundingBoxAround(12.97, 77.59),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrImageryProvider)
	assert.Contains(t, err.Error(), "400")
}
