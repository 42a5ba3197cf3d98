package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(maxAttempts int) *Client {
	// Zero backoff keeps retry tests fast; the loop shape is what matters.
	return NewClient(Config{MaxAttempts: maxAttempts, BackoffSeconds: 0, TimeoutSeconds: 5}, zap.NewNop())
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	body, err := testClient(3).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), body)
}

func TestFetchRetriesGatewayErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("eventually"))
	}))
	defer srv.Close()

	body, err := testClient(5).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("eventually"), body)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchExhaustsAttemptBudget(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(3).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(5).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchRespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{MaxAttempts: 5, BackoffSeconds: 1, TimeoutSeconds: 5}, zap.NewNop())
	_, err := client.Fetch(ctx, srv.URL)
	assert.Error(t, err)
}
