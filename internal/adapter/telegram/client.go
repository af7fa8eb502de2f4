package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"lifedash/internal/core/ports"
	"lifedash/pkg/retry"
)

const (
	defaultAPIURL = "https://api.telegram.org"
	maxAttempts   = 3

	breakerFailures    = 5
	breakerOpenTimeout = 30 * time.Second
)

var (
	ErrNotConfigured = errors.New("telegram bot token is not configured")
	// ErrRejected wraps 4xx and ok:false answers. They do not trip the breaker.
	ErrRejected = errors.New("telegram rejected the request")
	// ErrUnavailable is returned without calling the API while the breaker is open.
	ErrUnavailable = errors.New("telegram is temporarily unavailable")
)

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Client talks to the Telegram Bot API.
type Client struct {
	apiURL    string
	token     string
	http      *http.Client
	baseDelay time.Duration
	breaker   *gobreaker.CircuitBreaker[struct{}]
}

var _ ports.TelegramSender = (*Client)(nil)

func NewClient(apiURL, token string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		apiURL:    strings.TrimRight(apiURL, "/"),
		token:     token,
		http:      &http.Client{Timeout: 15 * time.Second},
		baseDelay: 500 * time.Millisecond,
		breaker:   newBreaker(),
	}
}

func newBreaker() *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "telegram",
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrRejected) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.L().Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

// SendMessage posts an HTML formatted message to chatID. 5xx responses and
// transport errors are retried; 4xx responses are not. Repeated exhausted
// retries open the breaker and later sends fail fast with ErrUnavailable.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return fmt.Errorf("marshal telegram message: %w", err)
	}

	_, err = c.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, retry.Do(ctx, retry.Config{
			MaxAttempts: maxAttempts,
			BaseDelay:   c.baseDelay,
			OnRetry: func(attempt int, err error) {
				zap.L().Warn("telegram send failed, retrying", zap.Int("attempt", attempt), zap.Error(err))
			},
		}, func() error {
			return c.post(ctx, "sendMessage", body)
		})
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func (c *Client) post(ctx context.Context, method string, body []byte) error {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(fmt.Errorf("build telegram %s request: %w", method, redact(err, c.token)))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// The request URL carries the bot token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var parsed apiResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("telegram %s returned status %d", method, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest || !parsed.OK {
		return retry.Permanent(fmt.Errorf("%w: %s status %d: %s", ErrRejected, method, resp.StatusCode, parsed.Description))
	}
	return nil
}

// redact hides the bot token in errors that echo the request URL.
func redact(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "<redacted>"))
}
