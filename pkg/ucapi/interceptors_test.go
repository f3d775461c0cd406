package ucapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := ucapi.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	// Add multiple interceptors
	chain.AddRequestInterceptor(func(ctx context.Context, req *ucapi.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *ucapi.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &ucapi.Request{
		Method: "GET",
		Path:   "/terms",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	chain := ucapi.NewInterceptorChain()
	ctx := context.Background()

	interceptorErr := errors.New("rejected")

	chain.AddRequestInterceptor(func(ctx context.Context, req *ucapi.Request) error {
		return interceptorErr
	})

	var secondRan bool

	chain.AddRequestInterceptor(func(ctx context.Context, req *ucapi.Request) error {
		secondRan = true
		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &ucapi.Request{Method: "GET", Path: "/terms"})
	require.ErrorIs(t, err, interceptorErr)
	assert.False(t, secondRan)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := ucapi.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *ucapi.Request, resp *ucapi.Response) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *ucapi.Request, resp *ucapi.Response) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &ucapi.Request{
		Method: "GET",
		Path:   "/terms",
	}
	resp := &ucapi.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := ucapi.HeaderInterceptor(headers)
	ctx := context.Background()
	req := &ucapi.Request{
		Method: "GET",
		Path:   "/terms",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestAuthenticationInterceptor(t *testing.T) {
	tokenProvider := func(ctx context.Context) (string, error) {
		return "test-token", nil
	}

	interceptor := ucapi.AuthenticationInterceptor(tokenProvider)
	ctx := context.Background()
	req := &ucapi.Request{
		Method: "GET",
		Path:   "/terms",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", req.Headers.Get("Authorization"))
}

func TestAuthenticationInterceptor_ProviderError(t *testing.T) {
	providerErr := errors.New("no credentials")
	interceptor := ucapi.AuthenticationInterceptor(func(ctx context.Context) (string, error) {
		return "", providerErr
	})

	err := interceptor(context.Background(), &ucapi.Request{Method: "GET", Path: "/terms"})
	require.ErrorIs(t, err, providerErr)
}

func TestLoggingInterceptors(t *testing.T) {
	logger := &recordingLogger{}

	reqInterceptor := ucapi.LoggingInterceptor(logger)
	respInterceptor := ucapi.LoggingResponseInterceptor(logger)

	ctx := context.Background()
	req := &ucapi.Request{Method: "GET", Path: "/businessdomains"}
	resp := &ucapi.Response{StatusCode: http.StatusOK}

	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, resp))

	require.Len(t, logger.debugMessages, 2)
	assert.Equal(t, "API Request", logger.debugMessages[0])
	assert.Equal(t, "API Response", logger.debugMessages[1])

	// Errored responses log at error level
	resp.Error = errors.New("boom")
	require.NoError(t, respInterceptor(ctx, req, resp))
	require.Len(t, logger.errorMessages, 1)
	assert.Equal(t, "API Response Error", logger.errorMessages[0])
}

func TestMetricsInterceptors(t *testing.T) {
	collector := ucapi.NewMetricsCollector()

	reqInterceptor := ucapi.MetricsRequestInterceptor(collector)
	respInterceptor := ucapi.MetricsResponseInterceptor(collector)

	ctx := context.Background()

	for n := 0; n < 3; n++ {
		req := &ucapi.Request{Method: "GET", Path: "/terms"}
		require.NoError(t, reqInterceptor(ctx, req))
		require.NoError(t, respInterceptor(ctx, req, &ucapi.Response{StatusCode: http.StatusOK}))
	}

	failed := &ucapi.Request{Method: "GET", Path: "/terms"}
	require.NoError(t, reqInterceptor(ctx, failed))
	require.NoError(t, respInterceptor(ctx, failed, &ucapi.Response{StatusCode: http.StatusInternalServerError}))

	metrics := collector.GetMetrics("GET /terms")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(4), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())

	assert.Nil(t, collector.GetMetrics("GET /unknown"))
}

func TestMetricsCollector_OnChange(t *testing.T) {
	collector := ucapi.NewMetricsCollector()

	var notified []string

	collector.SetOnChange(func(endpoint string, metrics *ucapi.Metrics) {
		notified = append(notified, endpoint)
	})

	respInterceptor := ucapi.MetricsResponseInterceptor(collector)
	req := &ucapi.Request{Method: "DELETE", Path: "/terms/abc"}

	require.NoError(t, respInterceptor(context.Background(), req, &ucapi.Response{StatusCode: http.StatusNoContent}))

	assert.Equal(t, []string{"DELETE /terms/abc"}, notified)
}

type recordingLogger struct {
	debugMessages []string
	errorMessages []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debugMessages = append(l.debugMessages, msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errorMessages = append(l.errorMessages, msg)
}

func TestRateLimitInterceptor_AllowsWithinBudget(t *testing.T) {
	t.Parallel()

	interceptor := ucapi.RateLimitInterceptor(100)
	req := &ucapi.Request{Method: "GET", Path: "/terms"}

	for n := 0; n < 5; n++ {
		require.NoError(t, interceptor(context.Background(), req))
	}
}

func TestRateLimitInterceptor_ContextCancelled(t *testing.T) {
	t.Parallel()

	interceptor := ucapi.RateLimitInterceptor(1)
	req := &ucapi.Request{Method: "GET", Path: "/terms"}

	require.NoError(t, interceptor(context.Background(), req))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := interceptor(ctx, req)
	require.ErrorIs(t, err, context.Canceled)
}
