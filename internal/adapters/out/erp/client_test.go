package erp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/adapters/out/erp"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Snapshot_ReturnsLevels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stock", r.URL.Path)

		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "sync", username)
		assert.Equal(t, "secret", password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"sku":"SKU-A","qty":12},{"sku":"SKU-B","qty":0}]`))
	}))
	defer server.Close()

	client, err := erp.NewClient(server.URL, "sync", "secret")
	require.NoError(t, err)

	levels, err := client.Snapshot(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []ports.StockLevel{
		{SKU: "SKU-A", Qty: 12},
		{SKU: "SKU-B", Qty: 0},
	}, levels)
}

func TestClient_Snapshot_NonOKStatus_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := erp.NewClient(server.URL, "", "")
	require.NoError(t, err)

	levels, err := client.Snapshot(t.Context())

	require.Error(t, err)
	assert.Nil(t, levels)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Snapshot_MalformedBody_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client, err := erp.NewClient(server.URL, "", "")
	require.NoError(t, err)

	_, err = client.Snapshot(t.Context())

	require.Error(t, err)
}

func TestNewClient_EmptyBaseURL_ReturnsError(t *testing.T) {
	client, err := erp.NewClient("", "user", "pass")

	require.Error(t, err)
	assert.Nil(t, client)
}
