package phoneapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ikkim/phonebook-backend/pkg/logger"
)

// Client talks to the phone directory HTTP API
type Client struct {
	config     Config
	httpClient *resty.Client
}

// NewClient creates a new client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(config.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		config:     config,
		httpClient: httpClient,
	}, nil
}

// GetConfig returns the client configuration
func (c *Client) GetConfig() Config {
	return c.config
}

// SearchPhones looks a number up; the server creates it on a miss when it looks like a phone number.
func (c *Client) SearchPhones(ctx context.Context, query string) ([]Phone, error) {
	var phones []Phone
	req := c.request(ctx).
		SetQueryParam("q", query).
		SetResult(&phones)
	if err := c.do(req, "GET", "/api/phones"); err != nil {
		return nil, err
	}
	if phones == nil {
		phones = []Phone{}
	}
	return phones, nil
}

// GetPhoneDetails fetches a phone with its reviews and average rating.
func (c *Client) GetPhoneDetails(ctx context.Context, id uint) (*PhoneDetail, error) {
	var detail PhoneDetail
	req := c.request(ctx).SetResult(&detail)
	if err := c.do(req, "GET", phonePath(id)); err != nil {
		return nil, err
	}
	return &detail, nil
}

// AddPhone creates a phone entry.
func (c *Client) AddPhone(ctx context.Context, in AddPhoneRequest) (*Phone, error) {
	var phone Phone
	req := c.request(ctx).SetBody(in).SetResult(&phone)
	if err := c.do(req, "POST", "/api/phones"); err != nil {
		return nil, err
	}
	return &phone, nil
}

// AddReview attaches a review to the phone with the given id.
func (c *Client) AddReview(ctx context.Context, phoneID uint, in AddReviewRequest) (*Review, error) {
	var review Review
	req := c.request(ctx).SetBody(in).SetResult(&review)
	if err := c.do(req, "POST", phonePath(phoneID)+"/reviews"); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListReviews returns a phone's reviews, newest first.
func (c *Client) ListReviews(ctx context.Context, phoneID uint) ([]Review, error) {
	var reviews []Review
	req := c.request(ctx).SetResult(&reviews)
	if err := c.do(req, "GET", phonePath(phoneID)+"/reviews"); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}

// CheckServerHealth calls the health endpoint.
func (c *Client) CheckServerHealth(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	req := c.request(ctx).SetResult(&status)
	if err := c.do(req, "GET", "/api/health"); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.httpClient.R().
		SetContext(ctx).
		SetError(&ErrorResponse{})
}

// do executes req and turns transport failures and non-2xx answers into errors.
func (c *Client) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		logger.Warn("Phone API request failed", map[string]interface{}{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return fmt.Errorf("%w: %w", ErrNetworkError, err)
	}

	logger.Debug("Phone API request completed", map[string]interface{}{
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode(),
		"latency_ms":  resp.Time().Milliseconds(),
	})

	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*ErrorResponse); ok && body != nil {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
	}
	return apiErr
}

func phonePath(id uint) string {
	return "/api/phones/" + strconv.FormatUint(uint64(id), 10)
}
