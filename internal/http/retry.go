package http

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/unifiedcatalog-io/ucapi/pkg/ucapi"
)

// policyBackoff adapts a RetryPolicy to the retry loop's backoff callback.
// attemptNum is zero-based, counting completed attempts.
func policyBackoff(policy *ucapi.RetryPolicy) retryablehttp.Backoff {
	return func(minWait, maxWait time.Duration, attemptNum int, resp *http.Response) time.Duration {
		delay := policy.Delay(attemptNum + 1)
		if policy.Jitter {
			delay = time.Duration(float64(delay) * rand.Float64())
		}

		return delay
	}
}

// policyCheckRetry classifies attempt outcomes. Transport errors and
// retryable status codes are retried; an open circuit, context cancellation,
// and other status codes are not.
func policyCheckRetry(policy *ucapi.RetryPolicy) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if err != nil {
			if errors.Is(err, ucapi.ErrCircuitOpen) {
				return false, err
			}

			return true, nil
		}

		if resp != nil && policy.Retryable(resp.StatusCode) {
			return true, nil
		}

		return false, nil
	}
}

// exhaustedErrorHandler wraps terminal retry failures. Circuit-open and
// context errors pass through unchanged so callers can match them directly.
func exhaustedErrorHandler() retryablehttp.ErrorHandler {
	return func(resp *http.Response, err error, numTries int) (*http.Response, error) {
		if errors.Is(err, ucapi.ErrCircuitOpen) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return resp, err
		}

		return resp, &ucapi.RetryExhaustedError{
			Attempts: numTries,
			Err:      err,
		}
	}
}
