package backend

import (
	"context"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestRestClient(server *httptest.Server) *restClient {
	return &restClient{
		BaseUrl:    server.URL,
		HTTPClient: server.Client(),
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}
}

func TestRestClient_DoRequest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))
		assert.Equal(t, "/api/rooms", r.URL.Path)
		w.Write([]byte(`[{"id":"r-1"}]`))
	}))
	defer server.Close()

	client := newTestRestClient(server)

	body, err := client.DoRequest(context.Background(), constvars.MethodGet, "/api/rooms", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"r-1"}]`, string(body))
}

func TestRestClient_DoRequest_PropagatesRequestID(t *testing.T) {
	var receivedID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedID = r.Header.Get(constvars.HeaderXRequestID)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestRestClient(server)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-42")
	_, err := client.DoRequest(ctx, constvars.MethodGet, "/api/rooms", nil)
	require.NoError(t, err)
	assert.Equal(t, "req-42", receivedID)
}

func TestRestClient_DoRequest_BackendRejection(t *testing.T) {
	t.Run("message field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"room number already exists"}`))
		}))
		defer server.Close()

		client := newTestRestClient(server)

		_, err := client.DoRequest(context.Background(), constvars.MethodPost, "/api/rooms", []byte(`{}`))
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, "room number already exists", customErr.ClientMessage)
	})

	t.Run("error field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid payload"}`))
		}))
		defer server.Close()

		client := newTestRestClient(server)

		_, err := client.DoRequest(context.Background(), constvars.MethodPost, "/api/rooms", []byte(`{}`))
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "invalid payload", customErr.ClientMessage)
	})
}

func TestRestClient_DoRequest_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestRestClient(server)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.DoRequest(ctx, constvars.MethodGet, "/api/rooms", nil)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
}

func TestRestClient_DoRequest_UnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := &restClient{
		BaseUrl:    server.URL,
		HTTPClient: &http.Client{Timeout: time.Second},
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}

	_, err := client.DoRequest(context.Background(), constvars.MethodGet, "/api/rooms", nil)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}
