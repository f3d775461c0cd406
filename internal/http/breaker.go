package http

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/sony/gobreaker/v2"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// errBreakerStatus marks a response whose status code counts as a failure for
// the circuit breaker. It never escapes the transport; the response is still
// handed to the retry layer.
var errBreakerStatus = errors.New("upstream returned failure status")

// breakerGroup keeps one circuit breaker per upstream host.
type breakerGroup struct {
	config   *ucapi.CircuitBreakerConfig
	logger   ucapi.Logger
	mutex    sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*http.Response]
}

func newBreakerGroup(config *ucapi.CircuitBreakerConfig, logger ucapi.Logger) *breakerGroup {
	return &breakerGroup{
		config:   config,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker[*http.Response]),
	}
}

func (g *breakerGroup) get(host string) *gobreaker.CircuitBreaker[*http.Response] {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	cb, ok := g.breakers[host]
	if ok {
		return cb
	}

	threshold := g.config.FailureThreshold

	settings := gobreaker.Settings{
		Name: host,
		// A single trial request probes the upstream while half-open.
		MaxRequests: 1,
		Timeout:     g.config.OpenDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}

	if g.logger != nil {
		logger := g.logger
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", map[string]interface{}{
				"host": name,
				"from": from.String(),
				"to":   to.String(),
			})
		}
	}

	cb = gobreaker.NewCircuitBreaker[*http.Response](settings)
	g.breakers[host] = cb

	return cb
}

// breakerTransport routes every attempt through the host's circuit breaker so
// each attempt outcome feeds the failure counter. Responses outside the 2xx
// range count as failures but still flow back to the retry layer unchanged.
type breakerTransport struct {
	base  http.RoundTripper
	group *breakerGroup
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cb := t.group.get(req.URL.Host)

	resp, err := cb.Execute(func() (*http.Response, error) {
		resp, rtErr := t.base.RoundTrip(req)
		if rtErr != nil {
			return nil, rtErr
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, errBreakerStatus
		}

		return resp, nil
	})

	switch {
	case err == nil:
		return resp, nil
	case errors.Is(err, errBreakerStatus):
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %s", ucapi.ErrCircuitOpen, req.URL.Host)
	default:
		return nil, err
	}
}
