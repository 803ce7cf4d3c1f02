package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/contracts"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	restClientInstance contracts.RestClient
	onceRestClient     sync.Once
)

type restClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewRestClient builds the one HTTP seam to the hospital backend. Every
// request carries the caller's context, a hard timeout and passes through an
// outbound rate limiter.
func NewRestClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.RestClient {
	onceRestClient.Do(func() {
		client := &restClient{
			BaseUrl: strings.TrimRight(internalConfig.Backend.BaseUrl, "/"),
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.Backend.TimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(
				rate.Limit(internalConfig.Backend.RateLimitPerSecond),
				internalConfig.Backend.RateBurst,
			),
			Log: logger,
		}
		restClientInstance = client
	})
	return restClientInstance
}

func (c *restClient) DoRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	requestID := utils.RequestIDFromContext(ctx)
	url := c.BaseUrl + path
	c.Log.Info("restClient.DoRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendURLKey, url),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("restClient.DoRequest rate limiter aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.Log.Error("restClient.DoRequest error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		c.Log.Error("restClient.DoRequest error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient.DoRequest error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		backendMessage := extractBackendMessage(responseBody)
		c.Log.Error("restClient.DoRequest backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingBackendURLKey, url),
		)
		return nil, exceptions.ErrBackendRejected(resp.StatusCode, backendMessage, path)
	}

	c.Log.Info("restClient.DoRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return responseBody, nil
}

// extractBackendMessage pulls the error message field the backend uses, which
// is inconsistently either "message" or "error".
func extractBackendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
