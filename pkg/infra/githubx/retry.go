package githubx

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/aider-tools/aider-automation/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultMaxRetries     = 3
	defaultAttemptTimeout = 30 * time.Second

	rateLimitResetHeader = "X-RateLimit-Reset"
	minRateLimitWait     = 60 * time.Second
	maxRateLimitWait     = 300 * time.Second
)

// retryTransport retries rate-limited (429) and transport-level failures.
// Any other HTTP status, including 4xx/5xx, is returned to the caller as-is:
// the retry policy covers infrastructure trouble, not application errors.
//
// Guarantees: at most maxRetries+1 attempts; a rate-limit wait is bounded to
// [60s, 300s]; transport retries back off exponentially from 1s.
type retryTransport struct {
	next       http.RoundTripper
	maxRetries int
	timeout    time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

func newRetryTransport(next http.RoundTripper, maxRetries int) *retryTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &retryTransport{
		next:       next,
		maxRetries: maxRetries,
		timeout:    defaultAttemptTimeout,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

func (x *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= x.maxRetries; attempt++ {
		if err := req.Context().Err(); err != nil {
			return nil, err
		}

		attemptReq, cancel, err := x.cloneRequest(req)
		if err != nil {
			return nil, err
		}

		resp, err := x.next.RoundTrip(attemptReq)
		if err != nil {
			cancel()
			lastErr = err
			if attempt < x.maxRetries {
				backoff := time.Duration(1<<attempt) * time.Second
				logging.From(req.Context()).Warn("github request failed, retrying",
					"attempt", attempt+1,
					"backoff", backoff.String(),
					"error", err,
				)
				x.sleep(backoff)
				continue
			}
			break
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := x.rateLimitWait(resp)
			safe.Close(resp.Body)
			cancel()

			if attempt < x.maxRetries {
				logging.From(req.Context()).Warn("github rate limited, waiting",
					"wait", wait.String(),
					"attempt", attempt+1,
				)
				x.sleep(wait)
				continue
			}

			return nil, goerr.Wrap(types.ErrRateLimited, "github api rate limit exceeded",
				goerr.V("wait_seconds", int(wait.Seconds())),
			)
		}

		// Tie the attempt's cancel to body consumption.
		resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
		return resp, nil
	}

	return nil, goerr.Wrap(lastErr, "github api request failed",
		goerr.V("retries", x.maxRetries),
	)
}

// rateLimitWait computes how long to sleep after a 429: until the reset
// epoch, but at least 60 seconds and at most 300.
func (x *retryTransport) rateLimitWait(resp *http.Response) time.Duration {
	var resetEpoch int64
	if v := resp.Header.Get(rateLimitResetHeader); v != "" {
		resetEpoch, _ = strconv.ParseInt(v, 10, 64)
	}

	wait := time.Duration(resetEpoch-x.now().Unix()) * time.Second
	if wait < minRateLimitWait {
		wait = minRateLimitWait
	}
	if wait > maxRateLimitWait {
		wait = maxRateLimitWait
	}
	return wait
}

// cloneRequest prepares a fresh request for one attempt with its own 30s
// timeout, rewinding the body via GetBody when present.
func (x *retryTransport) cloneRequest(req *http.Request) (*http.Request, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(req.Context(), x.timeout)
	clone := req.Clone(ctx)

	if req.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			cancel()
			return nil, nil, goerr.Wrap(err, "failed to rewind request body")
		}
		clone.Body = body
	}

	return clone, cancel, nil
}

type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (x *cancelBody) Close() error {
	defer x.cancel()
	return x.ReadCloser.Close()
}
