// Package gateway calls the model proxy endpoint with bounded retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrTimeout marks an attempt that ran past its deadline.
	ErrTimeout = errors.New("gateway: attempt timed out")
	// ErrInvalidResponse marks a 2xx reply without a usable result.
	ErrInvalidResponse = errors.New("gateway: response has no result")
)

// GatewayError describes a failed call. Status is zero when no HTTP status applies.
type GatewayError struct {
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	msg := "gateway error"
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: %d", msg, e.Status)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// CredentialSource supplies the bearer token. It is consulted on every call.
type CredentialSource interface {
	APIKey() (string, bool, error)
}

type Config struct {
	URL            string
	Attempts       int
	AttemptTimeout time.Duration
	Backoff        time.Duration
}

func DefaultConfig(url string) Config {
	return Config{
		URL:            url,
		Attempts:       3,
		AttemptTimeout: 30 * time.Second,
		Backoff:        time.Second,
	}
}

type proxyRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey,omitempty"`
}

type proxyResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

type Client struct {
	cfg         Config
	credentials CredentialSource
	httpClient  *http.Client
	logger      *zap.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithSleep replaces the backoff wait, mainly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(cl *Client) { cl.sleep = sleep }
}

func New(cfg Config, credentials CredentialSource, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	c := &Client{
		cfg:         cfg,
		credentials: credentials,
		httpClient:  &http.Client{},
		logger:      logger,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CallAI sends prompt to the proxy and returns its result text. Attempts are
// separated by a linear backoff of Backoff*attempt. A 401 is returned at once.
func (c *Client) CallAI(ctx context.Context, prompt string) (string, error) {
	apiKey := c.apiKey()

	var lastErr error
	for attempt := 1; attempt <= c.cfg.Attempts; attempt++ {
		result, err := c.attempt(ctx, prompt, apiKey)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("call ai: %w", ctx.Err())
		}
		lastErr = err

		var gwErr *GatewayError
		if errors.As(err, &gwErr) && gwErr.Status == http.StatusUnauthorized {
			c.logger.Warn("credential rejected by proxy", zap.Error(err))
			return "", err
		}

		if errors.Is(err, ErrTimeout) {
			c.logger.Warn("ai request timed out", zap.Int("attempt", attempt), zap.Duration("timeout", c.cfg.AttemptTimeout))
		} else {
			c.logger.Warn("ai request failed", zap.Int("attempt", attempt), zap.Error(err))
		}

		if attempt < c.cfg.Attempts {
			if err := c.sleep(ctx, time.Duration(attempt)*c.cfg.Backoff); err != nil {
				return "", fmt.Errorf("call ai: %w", err)
			}
		}
	}

	return "", &GatewayError{Message: "failed after all retries", Err: lastErr}
}

func (c *Client) apiKey() string {
	if c.credentials == nil {
		return ""
	}
	key, ok, err := c.credentials.APIKey()
	if err != nil {
		c.logger.Warn("failed to read credential", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return key
}

func (c *Client) attempt(ctx context.Context, prompt, apiKey string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
	defer cancel()

	body, err := json.Marshal(proxyRequest{Prompt: prompt, APIKey: apiKey})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.classify(ctx, attemptCtx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.classify(ctx, attemptCtx, err)
	}

	var payload proxyResponse
	decodeErr := json.Unmarshal(data, &payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && payload.Error != "" {
			msg = payload.Error
		}
		return "", &GatewayError{Status: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)
	}
	if payload.Result == "" {
		return "", ErrInvalidResponse
	}
	return payload.Result, nil
}

// classify maps an attempt deadline to ErrTimeout; parent cancellation is left as is.
func (c *Client) classify(parent, attemptCtx context.Context, err error) error {
	if parent.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return fmt.Errorf("send request: %w", err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
