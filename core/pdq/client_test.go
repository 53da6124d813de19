package pdq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"inventory-sync/core/pdq"
	"inventory-sync/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, pageSize int, handler http.Handler) *pdq.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return pdq.NewClient(pdq.Config{
		URL:      server.URL,
		Token:    "secret",
		Enabled:  true,
		Timeout:  5,
		PageSize: pageSize,
	}, zap.NewNop())
}

func devicesJSON(devices ...models.SourceDevice) []byte {
	body, _ := json.Marshal(map[string]any{"data": devices})
	return body
}

func TestClient_FetchDevices_WalksPages(t *testing.T) {
	var authHeader string

	client := newTestClient(t, 2, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/api/devices", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("pageSize"))
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		switch page {
		case 1:
			w.Write(devicesJSON(
				models.SourceDevice{Serial: "SN1", Name: "WS-01"},
				models.SourceDevice{Serial: "SN2", Name: "WS-02"},
			))
		default:
			// Short page ends the walk.
			w.Write(devicesJSON(models.SourceDevice{Serial: "SN3", Name: "WS-03"}))
		}
	}))

	devices, err := client.FetchDevices(context.Background())

	require.NoError(t, err)
	require.Len(t, devices, 3)
	assert.Equal(t, "SN1", devices[0].Serial)
	assert.Equal(t, "SN3", devices[2].Serial)
	assert.Equal(t, "Bearer secret", authHeader)
}

func TestClient_FetchDevices_Empty(t *testing.T) {
	client := newTestClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	}))

	devices, err := client.FetchDevices(context.Background())

	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestClient_FetchDevices_ErrorStatus(t *testing.T) {
	client := newTestClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.FetchDevices(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     pdq.Config
		wantErr bool
	}{
		{"Valid", pdq.Config{URL: "http://pdq.local", Token: "t", PageSize: 100}, false},
		{"Missing URL", pdq.Config{Token: "t", PageSize: 100}, true},
		{"Missing token", pdq.Config{URL: "http://pdq.local", PageSize: 100}, true},
		{"Zero page size", pdq.Config{URL: "http://pdq.local", Token: "t"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
