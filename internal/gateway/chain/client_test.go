package chain_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aidchain/internal/gateway/chain"
)

func TestClientCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/contract/call", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "aidchain", req["contract_id"])
		require.Equal(t, "package_get", req["method"])
		require.Equal(t, "3", req["payload"])

		_ = json.NewEncoder(w).Encode(map[string]string{"result": `{"id":3}`})
	}))
	defer srv.Close()

	client := chain.NewClient(srv.URL, "aidchain", time.Second)
	result, err := client.Call(context.Background(), "package_get", "3")
	require.NoError(t, err)
	require.Equal(t, `{"id":3}`, result)
}

func TestClientCallUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	}))
	defer srv.Close()

	client := chain.NewClient(srv.URL, "aidchain", time.Second)
	_, err := client.Call(context.Background(), "package_get", "99")
	require.ErrorContains(t, err, "not_found")
}

func TestClientCallBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := chain.NewClient(srv.URL, "aidchain", time.Second)
	_, err := client.Call(context.Background(), "registry_stats", "")
	require.ErrorContains(t, err, "500")
}

type funcReader func(ctx context.Context, method string, payload string) (string, error)

func (f funcReader) Call(ctx context.Context, method string, payload string) (string, error) {
	return f(ctx, method, payload)
}

func TestGetManyToleratesFailures(t *testing.T) {
	var calls atomic.Int64
	reader := funcReader(func(_ context.Context, method string, payload string) (string, error) {
		calls.Add(1)
		id, err := strconv.ParseUint(payload, 10, 64)
		require.NoError(t, err)
		if id%3 == 0 {
			return "", context.DeadlineExceeded
		}
		return method + ":" + payload, nil
	})

	ids := []uint64{0, 1, 2, 3, 4, 5, 6}
	results, failed := chain.GetMany(context.Background(), reader, "package_get", ids, 2)

	require.Equal(t, int64(len(ids)), calls.Load())
	require.Equal(t, 3, failed)
	require.Len(t, results, 4)
	require.Equal(t, "package_get:4", results[4])
}
