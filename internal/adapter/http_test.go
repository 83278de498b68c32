package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"score":"12.5"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(5 * time.Second)

	var result struct {
		Score string `json:"score"`
	}
	require.NoError(t, client.Get(context.Background(), server.URL, &result))
	assert.Equal(t, "12.5", result.Score)
}

func TestRealHTTPClient_NotFoundIsPermanent(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such wallet"))
	}))
	defer server.Close()

	client := NewHTTPClient(5 * time.Second)

	var result map[string]interface{}
	err := client.Get(context.Background(), server.URL, &result)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Equal(t, int32(1), calls.Load())
}

func TestRealHTTPClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, `{"query":"{ _meta { block { number } } }"}`, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(5 * time.Second)

	resp, err := client.PostJSON(context.Background(), server.URL, []byte(`{"query":"{ _meta { block { number } } }"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"data":{}}`, string(resp))
	assert.Equal(t, int32(2), calls.Load())
}

func TestRealHTTPClient_GivesUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := &RealHTTPClient{client: &http.Client{Timeout: time.Second}, maxElapsedTime: 200 * time.Millisecond}

	_, err := client.PostJSON(context.Background(), server.URL, []byte(`{}`))
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
}
