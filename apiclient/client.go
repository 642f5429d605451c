package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/logger"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/resilience"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/telemetry"
)

// Request describes an outbound API request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL.
	Path string
	// Headers are request-specific headers (override client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or
	// any value that will be JSON-encoded.
	Body any
}

// Payload is the raw outcome of a successful exchange.
type Payload struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// Caller executes API requests. Client implements it directly; Retrier
// wraps any Caller with retry behavior.
type Caller interface {
	Call(ctx context.Context, req Request) result.Result[Payload]
}

// Client is a Caller backed by net/http. Every outcome, including
// transport errors and non-2xx responses, is reported through the
// returned Result; Call never panics and never returns a bare error.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	metrics    *telemetry.ClientMetrics
	limiter    *resilience.Limiter
	breaker    *resilience.Breaker
}

// Option configures a Client.
type Option func(*Client)

// WithLogger overrides the client logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithMetrics attaches call metrics.
func WithMetrics(m *telemetry.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates an API client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		log:        logger.WithComponent("apiclient"),
	}
	if cfg.RateLimit != nil {
		c.limiter = resilience.NewLimiter(*cfg.RateLimit)
	}
	if cfg.Breaker != nil {
		c.breaker = resilience.NewBreaker(*cfg.Breaker)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// Call executes a single request and maps the outcome onto a Result.
func (c *Client) Call(ctx context.Context, req Request) result.Result[Payload] {
	ctx, span := telemetry.StartSpan(ctx, "api.call", trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.path", req.Path),
	))
	defer span.End()
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.fail(ctx, req, 0, start, contextFailure(err, err))
		}
	}
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			f := result.NewFailure(result.KindGeneral, "circuit breaker is open").WithCause(err)
			return c.fail(ctx, req, 0, start, f)
		}
	}

	httpReq, failure := c.buildRequest(ctx, req)
	if failure != nil {
		return c.fail(ctx, req, 0, start, failure)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.recordBreaker(false)
		return c.fail(ctx, req, 0, start, classifyTransport(ctx, err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordBreaker(false)
		return c.fail(ctx, req, resp.StatusCode, start, result.Network("read response body", err))
	}

	// A delivered response below 500 counts as healthy for the breaker,
	// even when it maps to a failure for the caller.
	c.recordBreaker(resp.StatusCode < 500)

	if failure := classifyStatus(resp.StatusCode, resp.Header, req.Path); failure != nil {
		return c.fail(ctx, req, resp.StatusCode, start, failure)
	}

	c.metrics.Record(ctx, req.Method, req.Path, resp.StatusCode, time.Since(start))
	c.log.Debug("api call completed", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	return result.Ok(Payload{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	})
}

// fail records the failed outcome and wraps it in a Result.
func (c *Client) fail(ctx context.Context, req Request, status int, start time.Time, f *result.Failure) result.Result[Payload] {
	telemetry.SetSpanError(ctx, f)
	c.metrics.Record(ctx, req.Method, req.Path, status, time.Since(start))
	c.log.Debug("api call failed", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldStatus, status,
		logger.FieldError, f.Error(),
	))
	return result.Fail[Payload](f)
}

func (c *Client) recordBreaker(healthy bool) {
	if c.breaker != nil {
		c.breaker.Record(healthy)
	}
}

// buildRequest constructs an *http.Request. Returns a Failure instead
// of an error so Call stays result-shaped end to end.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, *result.Failure) {
	url := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = joinURL(c.config.BaseURL, req.Path)
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, result.Validation(fmt.Sprintf("encode body: %v", err)).WithCause(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, result.Validation(fmt.Sprintf("create request: %v", err)).WithCause(err)
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if httpReq.Header.Get("X-Request-Id") == "" {
		httpReq.Header.Set("X-Request-Id", uuid.NewString())
	}

	return httpReq, nil
}

// joinURL joins a base URL and a path with exactly one slash between
// them, regardless of trailing or leading slashes on either side.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// classifyTransport maps a transport-level error onto a Failure,
// distinguishing deadline expiry from caller cancellation.
func classifyTransport(ctx context.Context, err error) *result.Failure {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return contextFailure(ctxErr, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return result.Timeout("request timed out", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return result.Timeout("request timed out", err)
	}
	return result.Network(fmt.Sprintf("connection failed: %v", err), err)
}

// contextFailure maps a context error onto a Failure. Deadline expiry
// is retryable; caller cancellation is not.
func contextFailure(ctxErr, cause error) *result.Failure {
	if cause == nil {
		cause = ctxErr
	}
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		return result.Timeout("request timed out", cause)
	}
	return result.NewFailure(result.KindTimeout, "request canceled").WithCause(cause)
}

// classifyStatus maps a response status onto a Failure. Returns nil
// for 2xx.
func classifyStatus(status int, header http.Header, path string) *result.Failure {
	if status >= 200 && status < 300 {
		return nil
	}

	switch status {
	case http.StatusNotFound:
		return result.NotFound(fmt.Sprintf("resource not found: %s", path)).WithStatus(status)
	case http.StatusUnauthorized, http.StatusForbidden:
		return result.Unauthorized(httpStatusMessage(status)).WithStatus(status)
	case http.StatusConflict:
		return result.Conflict(httpStatusMessage(status)).WithStatus(status)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return result.Validation(httpStatusMessage(status)).WithStatus(status)
	case http.StatusTooManyRequests:
		f := result.NewFailure(result.KindGeneral, "rate limited (HTTP 429)").WithStatus(status)
		f.Retryable = true
		return withRetryAfter(f, header)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		f := result.General(httpStatusMessage(status)).WithStatus(status)
		f.Retryable = true
		return withRetryAfter(f, header)
	default:
		return result.General(httpStatusMessage(status)).WithStatus(status)
	}
}

func httpStatusMessage(status int) string {
	return fmt.Sprintf("HTTP %d %s", status, http.StatusText(status))
}

func withRetryAfter(f *result.Failure, header http.Header) *result.Failure {
	if d := parseRetryAfter(header.Get("Retry-After")); d > 0 {
		return f.WithRetryAfter(d)
	}
	return f
}

// parseRetryAfter reads a Retry-After header in either delta-seconds
// or HTTP-date form.
func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs > 0 {
			return time.Duration(secs) * time.Second
		}
		return 0
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
