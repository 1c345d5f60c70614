package board

import (
	"context"
	"encoding/xml"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"board_syncer/internal/domain"
)

// Config holds board client configuration.
type Config struct {
	Name           string
	BaseURL        string
	BatchSize      int
	Timeout        time.Duration
	UserAgent      string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	JitterPercent  int
}

// Client fetches posts from a board backend over HTTP.
type Client struct {
	httpClient     *http.Client
	name           string
	baseURL        string
	batchSize      int
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	jitterPercent  int
	logger         *slog.Logger
}

// New creates a new board client.
func New(cfg Config, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	initialBackoff := cfg.InitialBackoff
	if initialBackoff <= 0 {
		initialBackoff = 100 * time.Millisecond
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		name:           cfg.Name,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		batchSize:      cfg.BatchSize,
		userAgent:      cfg.UserAgent,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		jitterPercent:  cfg.JitterPercent,
		logger:         logger.With("board", cfg.Name),
	}
}

// ID returns the board name.
func (c *Client) ID() string {
	return c.name
}

// FetchLatest fetches the most recent batch of posts.
func (c *Client) FetchLatest(ctx context.Context) ([]domain.Post, error) {
	return c.fetch(ctx, "/backend/last/"+strconv.Itoa(c.batchSize))
}

// FetchSince fetches the posts the board holds from marker onwards.
func (c *Client) FetchSince(ctx context.Context, marker domain.PostID) ([]domain.Post, error) {
	return c.fetch(ctx, "/backend/since/"+marker.String())
}

func (c *Client) fetch(ctx context.Context, path string) ([]domain.Post, error) {
	url := c.baseURL + path

	var backend *Backend
	attempt := 0
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempt++
		resp, err := c.doRequest(ctx, url)
		if err == nil {
			backend = resp
			return nil
		}
		if !retryable(err) {
			return err
		}

		c.logger.Warn("request failed",
			"url", url,
			"attempt", attempt,
			"error", err,
		)
		return retry.RetryableError(err)
	})
	if err != nil {
		var te *domain.TransportError
		if errors.As(err, &te) {
			return nil, err
		}
		// context cancellation while waiting between attempts
		return nil, &domain.TransportError{Message: "fetch " + path, Err: err}
	}

	posts := c.transform(backend)
	c.logger.Debug("fetched posts", "url", url, "count", len(posts), "attempts", attempt)
	return posts, nil
}

func (c *Client) backoff() retry.Backoff {
	b := retry.NewExponential(c.initialBackoff)
	b = retry.WithMaxRetries(uint64(c.maxAttempts-1), b)
	if c.maxBackoff > 0 {
		b = retry.WithCappedDuration(c.maxBackoff, b)
	}
	if c.jitterPercent > 0 {
		b = retry.WithJitterPercent(uint64(c.jitterPercent), b)
	}
	return b
}

func (c *Client) doRequest(ctx context.Context, url string) (*Backend, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.TransportError{Message: "create request", Err: err}
	}

	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Message: "execute request", Err: err}
	}
	defer resp.Body.Close()

	payload, err := readBody(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, &domain.TransportError{
			Message: "read response",
			Status:  resp.StatusCode,
			Payload: payload,
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.TransportError{
			Message: "unexpected status",
			Status:  resp.StatusCode,
			Payload: payload,
			Err:     errors.New(resp.Status),
		}
	}

	var backend Backend
	if err := xml.Unmarshal(payload, &backend); err != nil {
		return nil, &domain.TransportError{
			Message: "decode response",
			Status:  resp.StatusCode,
			Payload: payload,
			Err:     err,
		}
	}

	return &backend, nil
}

func retryable(err error) bool {
	var te *domain.TransportError
	if !errors.As(err, &te) {
		return false
	}
	switch {
	case te.Status == 0:
		return te.Message == "execute request"
	case te.Status == http.StatusTooManyRequests:
		return true
	case te.Status >= 500 && te.Message == "unexpected status":
		return true
	default:
		return false
	}
}

func (c *Client) transform(backend *Backend) []domain.Post {
	posts := make([]domain.Post, 0, len(backend.Posts))

	for _, p := range backend.Posts {
		id, err := domain.ParsePostID(p.ID)
		if err != nil {
			c.logger.Warn("skipping post with invalid id",
				"id", p.ID,
				"error", err,
			)
			continue
		}

		posts = append(posts, domain.Post{
			ID:        id,
			Time:      p.Time,
			Login:     strings.TrimSpace(p.Login),
			UserAgent: p.Info,
			Message:   p.Message,
		})
	}

	return posts
}
