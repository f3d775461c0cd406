// Package http implements the resilient HTTP layer underneath the resource
// clients: authentication headers, retry with exponential backoff, and a
// per-host circuit breaker.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// TokenManager provides access tokens for requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client used by all resource clients. Retries happen
// inside Do; every attempt passes through the circuit breaker.
type Client struct {
	baseURL      string
	tokenManager TokenManager
	retryClient  *retryablehttp.Client
	policy       *ucapi.RetryPolicy
	breaker      *ucapi.CircuitBreakerConfig
	interceptors *ucapi.InterceptorChain
	logger       ucapi.Logger
	userAgent    string
	timeout      time.Duration
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and breaker state logging.
func WithLogger(logger ucapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header for all requests.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryPolicy replaces the default retry policy.
func WithRetryPolicy(policy *ucapi.RetryPolicy) Option {
	return func(c *Client) {
		c.policy = policy
	}
}

// WithRetryConfig sets retry parameters with jitter disabled, keeping the
// default retryable status codes.
func WithRetryConfig(maxAttempts int, baseDelay, maxDelay time.Duration) Option {
	return func(c *Client) {
		policy := ucapi.DefaultRetryPolicy()
		policy.MaxAttempts = maxAttempts
		policy.BaseDelay = baseDelay
		policy.MaxDelay = maxDelay
		policy.Jitter = false
		c.policy = policy
	}
}

// WithCircuitBreaker replaces the default circuit breaker configuration.
func WithCircuitBreaker(config *ucapi.CircuitBreakerConfig) Option {
	return func(c *Client) {
		c.breaker = config
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithInterceptors attaches an interceptor chain to the client.
func WithInterceptors(chain *ucapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for the given API endpoint.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		policy:       ucapi.DefaultRetryPolicy(),
		breaker:      ucapi.DefaultCircuitBreakerConfig(),
		timeout:      constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	var transport http.RoundTripper = http.DefaultTransport
	if !client.breaker.Disabled {
		transport = &breakerTransport{
			base:  transport,
			group: newBreakerGroup(client.breaker, client.logger),
		}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Timeout:   client.timeout,
		Transport: transport,
	}
	retryClient.Logger = nil
	retryClient.RetryMax = max(client.policy.MaxAttempts-1, 0)
	retryClient.Backoff = policyBackoff(client.policy)
	retryClient.CheckRetry = policyCheckRetry(client.policy)
	retryClient.ErrorHandler = exhaustedErrorHandler()

	client.retryClient = retryClient

	return client
}

// Do executes a request and returns the response. Responses with an error
// status are returned together with a parsed *ucapi.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	interceptReq, err := c.runRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	fullURL := c.buildURL(req)

	httpReq, err := c.buildRequest(ctx, req, fullURL, interceptReq)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return c.handleRequestError(req, fullURL, httpResp, err)
	}

	response, err := c.readResponse(httpResp)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": response.StatusCode,
		})
	}

	var respErr error
	if response.StatusCode >= http.StatusBadRequest {
		respErr = ucapi.ParseErrorResponse(response.StatusCode, response.Body)
	}

	err = c.runResponseInterceptors(ctx, req, interceptReq, response, respErr)
	if err != nil {
		return response, err
	}

	return response, respErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// DeleteWithQuery performs a DELETE request with query parameters.
func (c *Client) DeleteWithQuery(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}

func (c *Client) buildURL(req *Request) string {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return fullURL
}

func (c *Client) buildRequest(ctx context.Context, req *Request, fullURL string, interceptReq *ucapi.Request) (*retryablehttp.Request, error) {
	var body []byte

	if req.Body != nil {
		marshaled, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = marshaled
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ucapi.ErrAuthenticationFailed, err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if interceptReq != nil {
		for key, values := range interceptReq.Headers {
			for _, value := range values {
				httpReq.Header.Set(key, value)
			}
		}
	}

	return httpReq, nil
}

func (c *Client) handleRequestError(req *Request, fullURL string, httpResp *http.Response, err error) (*Response, error) {
	var exhausted *ucapi.RetryExhaustedError

	switch {
	case errors.Is(err, ucapi.ErrCircuitOpen):
		return nil, err
	case errors.As(err, &exhausted):
		exhausted.Method = req.Method
		exhausted.URL = fullURL

		if httpResp != nil {
			response, readErr := c.readResponse(httpResp)
			if readErr != nil {
				return nil, exhausted
			}

			if exhausted.Err == nil {
				exhausted.Err = ucapi.ParseErrorResponse(response.StatusCode, response.Body)
			}

			return response, exhausted
		}

		return nil, exhausted
	case isTimeoutError(err):
		return nil, fmt.Errorf("%w: %w", ucapi.ErrRequestTimeout, err)
	default:
		return nil, fmt.Errorf("request failed: %w", err)
	}
}

func (c *Client) readResponse(httpResp *http.Response) (*Response, error) {
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) runRequestInterceptors(ctx context.Context, req *Request) (*ucapi.Request, error) {
	if c.interceptors == nil {
		return nil, nil
	}

	interceptReq := &ucapi.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: http.Header{},
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
	if err != nil {
		return nil, err
	}

	return interceptReq, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *Request, interceptReq *ucapi.Request, resp *Response, respErr error) error {
	if c.interceptors == nil {
		return nil
	}

	// Reuse the request the request interceptors saw so metadata they
	// attached (timings, cache entries) is visible on the response side.
	if interceptReq == nil {
		interceptReq = &ucapi.Request{
			Method: req.Method,
			Path:   req.Path,
		}
	}

	interceptResp := &ucapi.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      respErr,
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
